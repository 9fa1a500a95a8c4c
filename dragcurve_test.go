package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDragCurveRejectsEmpty(t *testing.T) {
	_, err := NewDragCurve(nil)
	require.Error(t, err)
}

func TestNewDragCurveRejectsNonIncreasingMach(t *testing.T) {
	_, err := NewDragCurve([]DragPoint{{Mach: 0, Cd: 0.5}, {Mach: 0.5, Cd: 0.4}, {Mach: 0.5, Cd: 0.3}})
	require.Error(t, err)
}

func TestNewDragCurveSortsDefensively(t *testing.T) {
	curve, err := NewDragCurve([]DragPoint{{Mach: 1.0, Cd: 0.3}, {Mach: 0.0, Cd: 0.5}, {Mach: 0.5, Cd: 0.4}})
	require.NoError(t, err)
	cur := NewDragCurveCursor()
	cd, extrapolated := curve.At(0.25, cur)
	assert.False(t, extrapolated)
	assert.InDelta(t, 0.45, cd, 1e-9)
}

func TestDragCurveInterpolatesLinearly(t *testing.T) {
	curve, err := NewDragCurve([]DragPoint{{Mach: 0, Cd: 1.0}, {Mach: 1, Cd: 2.0}, {Mach: 2, Cd: 4.0}})
	require.NoError(t, err)
	cur := NewDragCurveCursor()

	cd, extrapolated := curve.At(0.5, cur)
	assert.False(t, extrapolated)
	assert.InDelta(t, 1.5, cd, 1e-9)

	cd, extrapolated = curve.At(1.5, cur)
	assert.False(t, extrapolated)
	assert.InDelta(t, 3.0, cd, 1e-9)
}

func TestDragCurveClampsPastBounds(t *testing.T) {
	curve, err := NewDragCurve([]DragPoint{{Mach: 0.5, Cd: 1.0}, {Mach: 1.5, Cd: 2.0}})
	require.NoError(t, err)
	cur := NewDragCurveCursor()

	cd, extrapolated := curve.At(0.0, cur)
	assert.True(t, extrapolated)
	assert.Equal(t, 1.0, cd)

	cd, extrapolated = curve.At(5.0, cur)
	assert.True(t, extrapolated)
	assert.Equal(t, 2.0, cd)
}

// A cursor walked monotonically down through Mach values, as a real
// solve does, must read back identically to one with no cached state.
func TestDragCurveCursorCacheAgreesWithFreshCursor(t *testing.T) {
	curve, err := NewDragCurve(sampleFormula(g2Formula))
	require.NoError(t, err)

	walking := NewDragCurveCursor()
	machs := []float64{3.0, 2.5, 2.0, 1.5, 1.2, 1.0, 0.8, 0.5, 0.2}
	for _, m := range machs {
		fresh := NewDragCurveCursor()
		want, _ := curve.At(m, fresh)
		got, _ := curve.At(m, walking)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestDragCurveBounds(t *testing.T) {
	curve, err := NewDragCurve([]DragPoint{{Mach: 0, Cd: 0.2}, {Mach: 1, Cd: 0.9}, {Mach: 2, Cd: 0.4}})
	require.NoError(t, err)
	min, max := curve.Bounds()
	assert.Equal(t, 0.2, min)
	assert.Equal(t, 0.9, max)
}
