package ballistics

import (
	"sort"

	"github.com/google/uuid"

	"github.com/gballistics/engine/bmath/unit"
)

// Trajectory is the ordered result of one Engine.Solve call: every
// sample an event or a regular range step produced, tagged with a
// solve identifier so callers can correlate logged solves with the
// trajectory they produced.
type Trajectory struct {
	ID      uuid.UUID
	Samples []TrajectorySample
}

// FlaggedIndices returns the indices of every sample carrying at least
// one of the given flag bits.
func (t *Trajectory) FlaggedIndices(flag SampleFlag) []int {
	var idx []int
	for i, s := range t.Samples {
		if s.Flags&flag != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// AtRange returns the sample at the given down-range distance,
// linearly interpolating between the two bracketing samples when rng
// does not land exactly on one. ok is false if rng falls outside the
// trajectory's sampled range.
func (t *Trajectory) AtRange(rng unit.Distance) (sample TrajectorySample, ok bool) {
	r := rng.In(unit.DistanceFoot)
	n := len(t.Samples)
	if n == 0 {
		return TrajectorySample{}, false
	}
	if r < t.Samples[0].Range.In(unit.DistanceFoot) || r > t.Samples[n-1].Range.In(unit.DistanceFoot) {
		return TrajectorySample{}, false
	}
	i := sort.Search(n, func(k int) bool { return t.Samples[k].Range.In(unit.DistanceFoot) >= r })
	if i < n && t.Samples[i].Range.In(unit.DistanceFoot) == r {
		return t.Samples[i], true
	}
	if i == 0 || i >= n {
		return TrajectorySample{}, false
	}
	lo, hi := t.Samples[i-1], t.Samples[i]
	loR, hiR := lo.Range.In(unit.DistanceFoot), hi.Range.In(unit.DistanceFoot)
	frac := (r - loR) / (hiR - loR)
	return interpolateSample(lo, hi, frac), true
}

// AtTime returns the sample at the given time since shot, interpolated
// the same way AtRange is.
func (t *Trajectory) AtTime(seconds float64) (sample TrajectorySample, ok bool) {
	n := len(t.Samples)
	if n == 0 || seconds < t.Samples[0].Time || seconds > t.Samples[n-1].Time {
		return TrajectorySample{}, false
	}
	i := sort.Search(n, func(k int) bool { return t.Samples[k].Time >= seconds })
	if i < n && t.Samples[i].Time == seconds {
		return t.Samples[i], true
	}
	if i == 0 || i >= n {
		return TrajectorySample{}, false
	}
	lo, hi := t.Samples[i-1], t.Samples[i]
	frac := (seconds - lo.Time) / (hi.Time - lo.Time)
	return interpolateSample(lo, hi, frac), true
}

func interpolateSample(lo, hi TrajectorySample, frac float64) TrajectorySample {
	lerp := func(a, b float64) float64 { return a + frac*(b-a) }
	return TrajectorySample{
		Time:          lerp(lo.Time, hi.Time),
		Range:         unit.MustCreateDistance(lerp(lo.Range.In(unit.DistanceFoot), hi.Range.In(unit.DistanceFoot)), unit.DistanceFoot),
		SlantDistance: unit.MustCreateDistance(lerp(lo.SlantDistance.In(unit.DistanceFoot), hi.SlantDistance.In(unit.DistanceFoot)), unit.DistanceFoot),
		Height:        unit.MustCreateDistance(lerp(lo.Height.In(unit.DistanceFoot), hi.Height.In(unit.DistanceFoot)), unit.DistanceFoot),
		Windage:       unit.MustCreateDistance(lerp(lo.Windage.In(unit.DistanceFoot), hi.Windage.In(unit.DistanceFoot)), unit.DistanceFoot),
		Speed:         unit.MustCreateVelocity(lerp(lo.Speed.In(unit.VelocityFPS), hi.Speed.In(unit.VelocityFPS)), unit.VelocityFPS),
		Mach:          lerp(lo.Mach, hi.Mach),
		Energy:        unit.MustCreateEnergy(lerp(lo.Energy.In(unit.EnergyFootPound), hi.Energy.In(unit.EnergyFootPound)), unit.EnergyFootPound),
		DropAngle:     unit.MustCreateAngular(lerp(lo.DropAngle.In(unit.AngularRadian), hi.DropAngle.In(unit.AngularRadian)), unit.AngularRadian),
		WindageAngle:  unit.MustCreateAngular(lerp(lo.WindageAngle.In(unit.AngularRadian), hi.WindageAngle.In(unit.AngularRadian)), unit.AngularRadian),
		LookDistance:  unit.MustCreateDistance(lerp(lo.LookDistance.In(unit.DistanceFoot), hi.LookDistance.In(unit.DistanceFoot)), unit.DistanceFoot),
		DensityRatio:  lerp(lo.DensityRatio, hi.DensityRatio),
		Drag:          lerp(lo.Drag, hi.Drag),
		OptimalGameWeight: unit.MustCreateWeight(
			lerp(lo.OptimalGameWeight.In(unit.WeightPound), hi.OptimalGameWeight.In(unit.WeightPound)), unit.WeightPound,
		),
	}
}

// Summary is a compact description of a solved trajectory's headline
// figures, the numbers a shooter actually reads off a ballistic card.
type Summary struct {
	TimeOfFlight     float64
	MaxRange         unit.Distance
	Apex             unit.Distance
	ApexRange        unit.Distance
	TerminalVelocity unit.Velocity
	ZeroUpRanges     []unit.Distance
	ZeroDownRanges   []unit.Distance
}

// Summarize extracts the headline figures from a solved trajectory.
func (t *Trajectory) Summarize() Summary {
	var sum Summary
	n := len(t.Samples)
	if n == 0 {
		return sum
	}
	last := t.Samples[n-1]
	sum.TimeOfFlight = last.Time
	sum.MaxRange = last.Range
	sum.TerminalVelocity = last.Speed

	for _, i := range t.FlaggedIndices(FlagApex) {
		if t.Samples[i].Height.In(unit.DistanceFoot) > sum.Apex.In(unit.DistanceFoot) {
			sum.Apex = t.Samples[i].Height
			sum.ApexRange = t.Samples[i].Range
		}
	}
	for _, i := range t.FlaggedIndices(FlagZeroUp) {
		sum.ZeroUpRanges = append(sum.ZeroUpRanges, t.Samples[i].Range)
	}
	for _, i := range t.FlaggedIndices(FlagZeroDown) {
		sum.ZeroDownRanges = append(sum.ZeroDownRanges, t.Samples[i].Range)
	}
	return sum
}

// DangerSpace is the down-range interval, centered on a target at
// targetRange, over which the trajectory's height stays within
// +/-targetHeight/2 of its own height at targetRange — the span over which a shot
// aimed at the target's center still hits it.
type DangerSpace struct {
	Near unit.Distance
	Far  unit.Distance
}

// DangerSpace computes the near/far bounds within which a target of
// targetHeight centered at targetRange is hit, by walking the
// trajectory's samples and finding where Height first enters and last
// leaves the +/-targetHeight/2 band around the trajectory's height at
// targetRange.
func (t *Trajectory) DangerSpace(targetRange unit.Distance, targetHeight unit.Distance) (DangerSpace, error) {
	center, ok := t.AtRange(targetRange)
	if !ok {
		return DangerSpace{}, &RangeError{Reason: "target range outside solved trajectory", Requested: targetRange.In(unit.DistanceFoot)}
	}
	halfHeight := targetHeight.In(unit.DistanceFoot) / 2
	centerHeight := center.Height.In(unit.DistanceFoot)
	low, high := centerHeight-halfHeight, centerHeight+halfHeight

	n := len(t.Samples)
	near, far := t.Samples[0].Range, t.Samples[n-1].Range
	foundNear, foundFar := false, false
	for i := 0; i < n; i++ {
		h := t.Samples[i].Height.In(unit.DistanceFoot)
		if h >= low && h <= high {
			if !foundNear {
				near = t.Samples[i].Range
				foundNear = true
			}
			far = t.Samples[i].Range
			foundFar = true
		}
	}
	if !foundNear || !foundFar {
		return DangerSpace{}, &RangeError{Reason: "target band never entered", Requested: targetRange.In(unit.DistanceFoot)}
	}
	return DangerSpace{Near: near, Far: far}, nil
}
