package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gballistics/engine/bmath/unit"
)

func solvedTrajectory(t *testing.T) *Trajectory {
	t.Helper()
	engine, err := EngineByName("rk4_engine")
	require.NoError(t, err)
	shot := testShot(t).WithElevation(unit.MustCreateAngular(0.02, unit.AngularRadian))
	traj, err := engine.Solve(shot, DefaultConfig(), unit.MustCreateDistance(1000, unit.DistanceFoot), unit.MustCreateDistance(50, unit.DistanceFoot))
	require.NoError(t, err)
	return traj
}

func TestTrajectoryAtRangeInterpolatesBetweenSamples(t *testing.T) {
	traj := solvedTrajectory(t)
	rangeSamples := traj.FlaggedIndices(FlagRange)
	require.GreaterOrEqual(t, len(rangeSamples), 2)

	a := traj.Samples[rangeSamples[0]]
	b := traj.Samples[rangeSamples[1]]
	midRange := unit.MustCreateDistance((a.Range.In(unit.DistanceFoot)+b.Range.In(unit.DistanceFoot))/2, unit.DistanceFoot)

	sample, ok := traj.AtRange(midRange)
	require.True(t, ok)
	assert.Greater(t, sample.Time, a.Time)
	assert.Less(t, sample.Time, b.Time)
}

func TestTrajectoryAtRangeOutOfBoundsFails(t *testing.T) {
	traj := solvedTrajectory(t)
	_, ok := traj.AtRange(unit.MustCreateDistance(1e7, unit.DistanceFoot))
	assert.False(t, ok)
}

func TestTrajectoryAtTimeReturnsTheExactSampleAtItsTime(t *testing.T) {
	traj := solvedTrajectory(t)
	exact := traj.Samples[len(traj.Samples)/2]

	byTime, ok := traj.AtTime(exact.Time)
	require.True(t, ok)
	assert.InDelta(t, exact.Range.In(unit.DistanceFoot), byTime.Range.In(unit.DistanceFoot), 1e-6)
}

func TestSummarizeReportsTimeOfFlightAndApex(t *testing.T) {
	traj := solvedTrajectory(t)
	summary := traj.Summarize()

	last := traj.Samples[len(traj.Samples)-1]
	assert.Equal(t, last.Time, summary.TimeOfFlight)
	assert.Greater(t, summary.Apex.In(unit.DistanceFoot), -100.0)
}

func TestDangerSpaceBracketsTheTarget(t *testing.T) {
	traj := solvedTrajectory(t)
	targetRange := unit.MustCreateDistance(500, unit.DistanceFoot)
	space, err := traj.DangerSpace(targetRange, unit.MustCreateDistance(10, unit.DistanceInch))
	require.NoError(t, err)
	assert.LessOrEqual(t, space.Near.In(unit.DistanceFoot), targetRange.In(unit.DistanceFoot))
	assert.GreaterOrEqual(t, space.Far.In(unit.DistanceFoot), targetRange.In(unit.DistanceFoot)-1.0)
}

func TestDangerSpaceFailsOutsideSolvedTrajectory(t *testing.T) {
	traj := solvedTrajectory(t)
	_, err := traj.DangerSpace(unit.MustCreateDistance(1e7, unit.DistanceFoot), unit.MustCreateDistance(10, unit.DistanceInch))
	require.Error(t, err)
}

func TestClickAdjustmentConvertsAngleToClicks(t *testing.T) {
	weapon := NewWeapon(unit.MustCreateDistance(1.5, unit.DistanceInch)).WithClickValue(unit.MustCreateAngular(0.25, unit.AngularMOA))
	sample := TrajectorySample{
		DropAngle:    unit.MustCreateAngular(1.0, unit.AngularMOA),
		WindageAngle: unit.MustCreateAngular(0.5, unit.AngularMOA),
	}
	drop, windage := sample.ClickAdjustment(weapon)
	assert.InDelta(t, 4.0, drop, 1e-6)
	assert.InDelta(t, 2.0, windage, 1e-6)
}
