package ballistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gballistics/engine/bmath/unit"
)

// A shot zeroed at 200 yards must actually cross the sight line near
// 200 yards when re-solved at the found elevation.
func TestZeroSolverConvergesToAZeroCrossing(t *testing.T) {
	engine, err := EngineByName("rk4_engine")
	require.NoError(t, err)

	solver := NewZeroSolver(engine, DefaultConfig())
	shot := testShot(t)
	zeroRange := unit.MustCreateDistance(200, unit.DistanceYard)

	elevation, err := solver.Solve(shot, zeroRange)
	require.NoError(t, err)

	zeroed := shot.WithElevation(elevation)
	traj, err := engine.Solve(zeroed, DefaultConfig(), unit.MustCreateDistance(210, unit.DistanceYard), unit.MustCreateDistance(10, unit.DistanceYard))
	require.NoError(t, err)

	sample, ok := traj.AtRange(zeroRange)
	require.True(t, ok)
	assert.Less(t, math.Abs(sample.Height.In(unit.DistanceFoot)), 0.01)
}

// A downhill/uphill look angle must still converge; the zero is found
// relative to the sight line, not the horizontal.
func TestZeroSolverConvergesWithLookAngle(t *testing.T) {
	engine, err := EngineByName("rk4_engine")
	require.NoError(t, err)

	solver := NewZeroSolver(engine, DefaultConfig())
	shot := testShot(t).WithLookAngle(unit.MustCreateAngular(0.3, unit.AngularRadian))
	zeroRange := unit.MustCreateDistance(100, unit.DistanceYard)

	elevation, err := solver.Solve(shot, zeroRange)
	require.NoError(t, err)

	zeroed := shot.WithElevation(elevation)
	traj, err := engine.Solve(zeroed, DefaultConfig(), unit.MustCreateDistance(110, unit.DistanceYard), unit.MustCreateDistance(10, unit.DistanceYard))
	require.NoError(t, err)

	sample, ok := traj.AtRange(zeroRange)
	require.True(t, ok)
	assert.Less(t, math.Abs(sample.Height.In(unit.DistanceFoot)), 0.01)
}
