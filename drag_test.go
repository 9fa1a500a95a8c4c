package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBallisticCoefficientRejectsNonPositive(t *testing.T) {
	_, err := NewBallisticCoefficient(0, DragTableG1)
	require.Error(t, err)
	_, err = NewBallisticCoefficient(-0.5, DragTableG1)
	require.Error(t, err)
}

func TestNewBallisticCoefficientRejectsUnknownTable(t *testing.T) {
	_, err := NewBallisticCoefficient(0.5, 255)
	require.Error(t, err)
}

func TestBuiltinTablesAllConstruct(t *testing.T) {
	tables := []byte{DragTableG1, DragTableG2, DragTableG5, DragTableG6, DragTableG7, DragTableG8, DragTableGI, DragTableGS}
	for _, table := range tables {
		bc, err := NewBallisticCoefficient(0.475, table)
		require.NoError(t, err)
		assert.NotNil(t, bc.Curve())
		min, max := bc.Curve().Bounds()
		assert.Greater(t, max, min)
	}
}

func TestNewBallisticCoefficientWithCurveRequiresCurve(t *testing.T) {
	_, err := NewBallisticCoefficientWithCurve(0.5, 0, nil)
	require.Error(t, err)
}

// A custom drag curve must behave exactly like a built-in one for
// lookup purposes.
func TestCustomDragCurveIsUsableAsABallisticCoefficient(t *testing.T) {
	curve, err := NewDragCurve([]DragPoint{{Mach: 0, Cd: 0.3}, {Mach: 1, Cd: 0.5}, {Mach: 2, Cd: 0.2}})
	require.NoError(t, err)
	bc, err := NewBallisticCoefficientWithCurve(0.4, 0, curve)
	require.NoError(t, err)

	cur := NewDragCurveCursor()
	cd, extrapolated := bc.Curve().At(0.5, cur)
	assert.False(t, extrapolated)
	assert.InDelta(t, 0.4, cd, 1e-9)
}
