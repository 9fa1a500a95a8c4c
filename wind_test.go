package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gballistics/engine/bmath/unit"
)

func TestNoWindAlwaysReturnsZeroVelocity(t *testing.T) {
	w := NoWind()
	cur := NewWindCursor()
	seg := w.At(unit.MustCreateDistance(5000, unit.DistanceFoot), cur)
	assert.InDelta(t, 0, seg.Velocity.In(unit.VelocityFPS), 1e-9)
}

func TestConstantWindAppliesAtEveryRange(t *testing.T) {
	w := ConstantWind(unit.MustCreateVelocity(10, unit.VelocityMPH), unit.MustCreateAngular(1.57, unit.AngularRadian))
	cur := NewWindCursor()
	near := w.At(unit.MustCreateDistance(10, unit.DistanceFoot), cur)
	far := w.At(unit.MustCreateDistance(5000, unit.DistanceFoot), cur)
	assert.InDelta(t, near.Velocity.In(unit.VelocityMPH), far.Velocity.In(unit.VelocityMPH), 1e-9)
}

func TestNewWindFieldSortsAndForcesLastBoundToInfinity(t *testing.T) {
	w, err := NewWindField(
		WindSegment{UntilRange: unit.MustCreateDistance(500, unit.DistanceFoot), Velocity: unit.MustCreateVelocity(5, unit.VelocityMPH)},
		WindSegment{UntilRange: unit.MustCreateDistance(200, unit.DistanceFoot), Velocity: unit.MustCreateVelocity(2, unit.VelocityMPH)},
	)
	require.NoError(t, err)

	cur := NewWindCursor()
	seg := w.At(unit.MustCreateDistance(100, unit.DistanceFoot), cur)
	assert.InDelta(t, 2, seg.Velocity.In(unit.VelocityMPH), 1e-9)

	seg = w.At(unit.MustCreateDistance(300, unit.DistanceFoot), cur)
	assert.InDelta(t, 5, seg.Velocity.In(unit.VelocityMPH), 1e-9)

	seg = w.At(unit.MustCreateDistance(1e9, unit.DistanceFoot), cur)
	assert.InDelta(t, 5, seg.Velocity.In(unit.VelocityMPH), 1e-9)
}

func TestNewWindFieldRejectsDuplicateBounds(t *testing.T) {
	_, err := NewWindField(
		WindSegment{UntilRange: unit.MustCreateDistance(500, unit.DistanceFoot)},
		WindSegment{UntilRange: unit.MustCreateDistance(500, unit.DistanceFoot)},
	)
	require.Error(t, err)
}

// A cursor walked monotonically down-range, as a real solve does, must
// read back identically to one with no cached state.
func TestWindCursorCacheAgreesWithFreshCursor(t *testing.T) {
	w, err := NewWindField(
		WindSegment{UntilRange: unit.MustCreateDistance(300, unit.DistanceFoot), Velocity: unit.MustCreateVelocity(2, unit.VelocityMPH)},
		WindSegment{UntilRange: unit.MustCreateDistance(800, unit.DistanceFoot), Velocity: unit.MustCreateVelocity(6, unit.VelocityMPH)},
		WindSegment{UntilRange: unit.MustCreateDistance(1e7, unit.DistanceFoot), Velocity: unit.MustCreateVelocity(9, unit.VelocityMPH)},
	)
	require.NoError(t, err)

	walking := NewWindCursor()
	for _, r := range []float64{10, 150, 299, 301, 500, 799, 801, 5000} {
		fresh := NewWindCursor()
		want := w.At(unit.MustCreateDistance(r, unit.DistanceFoot), fresh)
		got := w.At(unit.MustCreateDistance(r, unit.DistanceFoot), walking)
		assert.Equal(t, want.Velocity, got.Velocity)
	}
}
