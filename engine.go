package ballistics

import (
	stderrors "errors"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gballistics/engine/bmath/unit"
	"github.com/gballistics/engine/bmath/vector"
)

// Engine is a named integration method: Euler, RK4 or velocity Verlet,
// all sharing the same derivative function so they only differ in how
// they advance (position, velocity) one step.
type Engine struct {
	name string
	step stepFunc
}

var engineRegistry = map[string]*Engine{
	"euler_engine":  {name: "euler_engine", step: eulerStep},
	"rk4_engine":    {name: "rk4_engine", step: rk4Step},
	"verlet_engine": {name: "verlet_engine", step: verletStep},
}

// EngineByName looks up a registered integration engine by name.
func EngineByName(name string) (*Engine, error) {
	e, ok := engineRegistry[name]
	if !ok {
		return nil, &UnknownEngineError{Name: name}
	}
	return e, nil
}

// Name returns the engine's registry name.
func (e *Engine) Name() string { return e.name }

// calculationStep mirrors the source's getCalculationStep: it halves
// the requested sampling step for sub-step accuracy and, if that still
// exceeds maxStep, divides it by a power of ten so that it lands one
// decade below maxStep's order of magnitude (e.g. 25 ft -> 0.25 ft for
// a 1 ft maxStep) rather than clamping outright, so very coarse
// requested steps still get a
// sane number of integration sub-steps per sample. The result is a
// down-range DISTANCE in feet, not a time: the source advances a fixed
// distance per sub-step and derives the corresponding time from the
// current velocity, rather than fixing a time step up front.
func calculationStep(stepFt, maxStepFt float64) float64 {
	step := stepFt / 2
	if step > maxStepFt && step > 0 && maxStepFt > 0 {
		stepOrder := int(math.Floor(math.Log10(step)))
		maxOrder := int(math.Floor(math.Log10(maxStepFt)))
		step = step / math.Pow(10, float64(stepOrder-maxOrder+1))
	}
	return step
}

// subStepDuration converts the fixed down-range distance sub-step into
// a time step given the current velocity, following the source's
// deltaTime = calculationStep / velocityVector.X. Direct-fire small
// arms shots keep velocity.X positive for the whole flight, but a
// steep lobbed shot can let X velocity sag toward zero near the apex;
// falling back to the full velocity magnitude keeps dt finite there.
func subStepDuration(calcStepFt float64, vel vector.Vector) float64 {
	if vel.X > 1e-6 {
		return calcStepFt / vel.X
	}
	speed := vel.Magnitude()
	if speed < 1e-6 {
		return 0
	}
	return calcStepFt / speed
}

// landedEvent is a monitored condition (a zero crossing, apex, Mach
// transition, or a requested range boundary) located precisely within
// one coarse sub-step, along with the state/derivative at that exact
// instant.
type landedEvent struct {
	t     float64
	state state
	deriv derivative
	flag  SampleFlag
}

// locateCrossing narrows the sub-step [s, s+dt] to the instant where
// scalarAt crosses zero: the bracket is halved up to maxStepHalvings
// times, then a linear interpolation on the final bracket estimates
// the crossing time, and the state is recomputed at that exact time
// with one additional stepper call from s.
func (e *Engine) locateCrossing(s state, shot Shot, g, dt float64, cur solveCursors, scalarAt func(state) float64) (state, float64) {
	lo, hi := 0.0, dt
	scalarLo := scalarAt(s)
	hiState, _ := e.step(s, shot, g, hi, cur)
	scalarHi := scalarAt(hiState)

	for i := 0; i < maxStepHalvings; i++ {
		mid := (lo + hi) / 2
		midState, _ := e.step(s, shot, g, mid, cur)
		scalarMid := scalarAt(midState)
		if sign(scalarLo) == sign(scalarMid) {
			lo, scalarLo = mid, scalarMid
		} else {
			hi, scalarHi = mid, scalarMid
		}
	}

	tEvent := hi
	if scalarHi != scalarLo {
		tEvent = lo - (hi-lo)*scalarLo/(scalarHi-scalarLo)
	}
	if tEvent < lo {
		tEvent = lo
	} else if tEvent > hi {
		tEvent = hi
	}

	landed, _ := e.step(s, shot, g, tEvent, cur)
	return landed, tEvent
}

// Solve integrates shot from the muzzle out to maxRange, sampling
// every step of down-range distance plus whenever a monitored event
// (a zero crossing, apex, Mach transition, or the maxRange boundary)
// occurs between two regular samples. Every monitored event is landed
// on its exact crossing time rather than reported at the coarse
// sub-step state that first detected it. cfg controls termination
// thresholds, iteration caps and cooperative cancellation.
func (e *Engine) Solve(shot Shot, cfg Config, maxRange, step unit.Distance) (*Trajectory, error) {
	if err := shot.Validate(); err != nil {
		return nil, err
	}

	const maxCoarseStepFt = 1.0
	stepFt := step.In(unit.DistanceFoot)
	calcStepFt := calculationStep(stepFt, maxCoarseStepFt*cfg.StepMultiplier)
	if calcStepFt <= 0 {
		calcStepFt = 0.5
	}

	projectile := shot.Ammunition().Bullet()
	weapon := shot.Weapon()
	atm := shot.Atmosphere()

	bulletWeightGrains := projectile.Weight().In(unit.WeightGrain)

	var stabilityCoefficient float64
	var twistCoefficient float64
	spinDrift := shot.HasSpinDrift()
	if spinDrift {
		stabilityCoefficient = millerStabilityCoefficient(projectile, weapon, shot.Ammunition().MuzzleVelocity(), atm)
		if weapon.TwistDirection() == TwistLeft {
			twistCoefficient = 1
		} else {
			twistCoefficient = -1
		}
	}

	effVelocity := shot.Ammunition().EffectiveMuzzleVelocity(atm).In(unit.VelocityFPS)
	elevation := shot.Elevation().In(unit.AngularRadian)

	cur := newSolveCursors()
	s := state{
		pos: vector.Create(0, -weapon.SightHeight().In(unit.DistanceFoot), 0),
		vel: vector.Create(math.Cos(elevation), math.Sin(elevation), 0).MultiplyByConst(effVelocity),
		t:   0,
	}

	maxRangeFt := maxRange.In(unit.DistanceFoot)
	minVelocity := cfg.MinimumVelocity.In(unit.VelocityFPS)
	maxDrop := cfg.MaximumDrop.In(unit.DistanceFoot)
	minAltitude := cfg.MinimumAltitude.In(unit.DistanceFoot)

	samples := make([]TrajectorySample, 0, int(maxRangeFt/stepFt)+4)
	nextRangeFt := 0.0

	rangeScalar := func(target float64) func(state) float64 {
		return func(st state) float64 { return st.pos.X - target }
	}
	heightScalar := func(st state) float64 { return st.pos.Y }
	apexScalar := func(st state) float64 { return st.vel.Y }
	machScalar := func(st state) float64 { return derive(st, shot, cfg.GravityConstant, cur).mach - 1 }

	buildSample := func(ev landedEvent) TrajectorySample {
		windage := ev.state.pos.Z
		if spinDrift {
			windage += (1.25 * (stabilityCoefficient + 1.2) * math.Pow(ev.t, 1.83) * twistCoefficient) / 12.0
		}
		speed := ev.state.vel.Magnitude()
		return TrajectorySample{
			Time:          ev.t,
			Range:         unit.MustCreateDistance(ev.state.pos.X, unit.DistanceFoot),
			SlantDistance: unit.MustCreateDistance(ev.state.pos.X/math.Cos(elevation+shot.LookAngle().In(unit.AngularRadian)), unit.DistanceFoot),
			Height:        unit.MustCreateDistance(ev.state.pos.Y, unit.DistanceFoot),
			Windage:       unit.MustCreateDistance(windage, unit.DistanceFoot),
			Velocity:      ev.state.vel,
			Speed:         unit.MustCreateVelocity(speed, unit.VelocityFPS),
			Mach:          ev.deriv.mach,
			Energy:        unit.MustCreateEnergy(kineticEnergy(bulletWeightGrains, speed), unit.EnergyFootPound),
			DropAngle:     unit.MustCreateAngular(getCorrection(ev.state.pos.X, ev.state.pos.Y), unit.AngularRadian),
			WindageAngle:  unit.MustCreateAngular(getCorrection(ev.state.pos.X, windage), unit.AngularRadian),
			LookDistance:  unit.MustCreateDistance(ev.state.pos.X, unit.DistanceFoot),
			DensityRatio:  ev.deriv.densityRatio,
			Drag:          ev.deriv.accel.Magnitude(),
			Flags:         ev.flag,
			OptimalGameWeight: unit.MustCreateWeight(
				optimalGameWeight(bulletWeightGrains, speed), unit.WeightPound,
			),
		}
	}

	for s.pos.X <= maxRangeFt {
		if len(samples) >= cfg.MaxSamples {
			return nil, terminate(cfg, "sample cap exceeded", s.pos.X, maxRangeFt)
		}
		if s.vel.Magnitude() < minVelocity {
			return nil, terminate(cfg, "velocity below minimum", s.pos.X, maxRangeFt)
		}
		if s.pos.Y < maxDrop {
			return nil, terminate(cfg, "drop exceeded maximum", s.pos.X, maxRangeFt)
		}
		if s.pos.Y < minAltitude {
			return nil, terminate(cfg, "altitude below minimum", s.pos.X, maxRangeFt)
		}

		dt := subStepDuration(calcStepFt, s.vel)
		if dt <= 0 {
			return nil, terminate(cfg, "forward velocity collapsed", s.pos.X, maxRangeFt)
		}

		next, d := e.step(s, shot, cfg.GravityConstant, dt, cur)
		dNext := derive(next, shot, cfg.GravityConstant, cur)

		if (d.extrapolated || dNext.extrapolated) && cfg.ExtrapolationPolicy == ExtrapolationWarn && !cur.drag.warnedOnce {
			cfg.logger().Warn("drag curve extrapolated past its tabulated range",
				zap.Float64("mach", dNext.mach), zap.Float64("range_ft", next.pos.X))
			cur.drag.warnedOnce = true
		}

		var events []landedEvent
		maxLanded := false

		for nextRangeFt <= maxRangeFt+1e-6 && next.pos.X >= nextRangeFt {
			target := nextRangeFt
			flag := FlagRange
			if target >= maxRangeFt-1e-6 {
				flag |= FlagMax
				maxLanded = true
			}
			landedState, tEvent := e.locateCrossing(s, shot, cfg.GravityConstant, dt, cur, rangeScalar(target))
			events = append(events, landedEvent{t: s.t + tEvent, state: landedState, deriv: derive(landedState, shot, cfg.GravityConstant, cur), flag: flag})
			nextRangeFt += stepFt
		}
		if !maxLanded && next.pos.X >= maxRangeFt {
			landedState, tEvent := e.locateCrossing(s, shot, cfg.GravityConstant, dt, cur, rangeScalar(maxRangeFt))
			events = append(events, landedEvent{t: s.t + tEvent, state: landedState, deriv: derive(landedState, shot, cfg.GravityConstant, cur), flag: FlagMax})
		}

		if s.pos.Y < 0 && next.pos.Y >= 0 {
			landedState, tEvent := e.locateCrossing(s, shot, cfg.GravityConstant, dt, cur, heightScalar)
			events = append(events, landedEvent{t: s.t + tEvent, state: landedState, deriv: derive(landedState, shot, cfg.GravityConstant, cur), flag: FlagZeroUp})
		} else if s.pos.Y > 0 && next.pos.Y <= 0 {
			landedState, tEvent := e.locateCrossing(s, shot, cfg.GravityConstant, dt, cur, heightScalar)
			events = append(events, landedEvent{t: s.t + tEvent, state: landedState, deriv: derive(landedState, shot, cfg.GravityConstant, cur), flag: FlagZeroDown})
		}

		if s.vel.Y > 0 && next.vel.Y <= 0 {
			landedState, tEvent := e.locateCrossing(s, shot, cfg.GravityConstant, dt, cur, apexScalar)
			events = append(events, landedEvent{t: s.t + tEvent, state: landedState, deriv: derive(landedState, shot, cfg.GravityConstant, cur), flag: FlagApex})
		}

		if (d.mach-1)*(dNext.mach-1) < 0 {
			landedState, tEvent := e.locateCrossing(s, shot, cfg.GravityConstant, dt, cur, machScalar)
			events = append(events, landedEvent{t: s.t + tEvent, state: landedState, deriv: derive(landedState, shot, cfg.GravityConstant, cur), flag: FlagMach})
		}

		if len(events) > 0 {
			sort.Slice(events, func(i, j int) bool { return events[i].t < events[j].t })
			merged := make([]landedEvent, 0, len(events))
			merged = append(merged, events[0])
			for _, ev := range events[1:] {
				last := &merged[len(merged)-1]
				if math.Abs(ev.t-last.t) < 1e-9 {
					last.flag |= ev.flag
				} else {
					merged = append(merged, ev)
				}
			}
			for _, ev := range merged {
				samples = append(samples, buildSample(ev))
				if cfg.ShouldContinue != nil && !cfg.ShouldContinue(samples[len(samples)-1]) {
					return &Trajectory{ID: uuid.New(), Samples: samples}, &Cancelled{Partial: &Trajectory{ID: uuid.New(), Samples: samples}}
				}
			}
		}

		s = next
	}

	if len(samples) == 0 {
		return nil, terminate(cfg, "no samples produced", 0, maxRangeFt)
	}
	return &Trajectory{ID: uuid.New(), Samples: samples}, nil
}

// terminate logs a solve's early-termination reason at debug level
// and builds the RangeError callers see.
func terminate(cfg Config, reason string, reached, requested float64) error {
	cfg.logger().Debug("trajectory solve terminated early",
		zap.String("reason", reason), zap.Float64("reached_ft", reached), zap.Float64("requested_ft", requested))
	return &RangeError{Reason: reason, ReachedRange: reached, Requested: requested}
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// wrapRangeErr annotates a RangeError surfacing from Solve with the
// elevation that produced it, for the zero solver's bracket search.
func wrapRangeErr(err error, elevation float64) error {
	var re *RangeError
	if stderrors.As(err, &re) {
		return errors.Wrapf(err, "at elevation %f rad", elevation)
	}
	return err
}
