package ballistics

import (
	"go.uber.org/zap"

	"github.com/gballistics/engine/bmath/unit"
)

// ExtrapolationPolicy decides whether Engine.Solve reports a drag
// lookup outside the curve's tabulated Mach range. DragCurve.At itself
// always clamps to the boundary Cd, whichever policy is set.
type ExtrapolationPolicy byte

const (
	// ExtrapolationClamp silently returns the boundary Cd. Default.
	ExtrapolationClamp ExtrapolationPolicy = iota
	// ExtrapolationWarn clamps the same way but logs a Warn once per solve.
	ExtrapolationWarn
)

// Config bundles every tunable knob the integrator and zero solver
// consult. It is a plain value: no package-level mutable state exists
// anywhere in this module, so two solves run from two Configs never
// interfere with each other even when run concurrently.
type Config struct {
	// StepMultiplier scales the largest down-range distance sub-step
	// Solve advances per integration step (1 ft at 1.0). The sub-step is
	// a distance, not a time, and is the same for every engine; there is
	// no per-engine default time step.
	StepMultiplier float64

	// MinimumVelocity: the integrator halts once speed drops below this.
	MinimumVelocity unit.Velocity

	// MaximumDrop: the integrator halts once height drops below this
	// (expressed as a negative drop, e.g. -15000 ft).
	MaximumDrop unit.Distance

	// MinimumAltitude: the integrator halts below this altitude above
	// the muzzle.
	MinimumAltitude unit.Distance

	// MaxIterations bounds the zero solver's secant/bisection loop.
	MaxIterations int

	// ZeroFindingAccuracy is the zero solver's residual-height tolerance.
	ZeroFindingAccuracy unit.Distance

	// GravityConstant is the signed vertical gravitational acceleration
	// used to build the body-frame gravity vector.
	GravityConstant float64 // ft/s^2, signed (negative = downward)

	// MaxSamples hard-caps the sample count a single solve may emit.
	MaxSamples int

	// ExtrapolationPolicy decides whether Solve logs a Warn (once per
	// solve) when a drag lookup falls past the curve's tabulated Mach
	// range; the lookup clamps either way.
	ExtrapolationPolicy ExtrapolationPolicy

	// ShouldContinue is consulted once per emitted sample; returning
	// false aborts the solve with a *Cancelled outcome carrying the
	// partial trajectory. A nil func never cancels.
	ShouldContinue func(sample TrajectorySample) bool

	// Logger receives step-shrink, extrapolation and termination
	// diagnostics. Defaults to a no-op logger so the engine is silent
	// unless a caller opts in.
	Logger *zap.Logger
}

// DefaultConfig returns the knob values named in the external-interface
// table: a 1.0 step multiplier, 50 fps minimum velocity, -15000 ft
// maximum drop, -1500 ft minimum altitude, 20 zero-solver iterations,
// 0.000005 ft zero accuracy, 32.17405 fps² gravity, a 1e6 sample cap,
// silent Cd-extrapolation clamping and a no-op logger.
func DefaultConfig() Config {
	return Config{
		StepMultiplier:      1.0,
		MinimumVelocity:     unit.MustCreateVelocity(50, unit.VelocityFPS),
		MaximumDrop:         unit.MustCreateDistance(-15000, unit.DistanceFoot),
		MinimumAltitude:     unit.MustCreateDistance(-1500, unit.DistanceFoot),
		MaxIterations:       20,
		ZeroFindingAccuracy: unit.MustCreateDistance(0.000005, unit.DistanceFoot),
		GravityConstant:     -32.17405,
		MaxSamples:          1000000,
		ExtrapolationPolicy: ExtrapolationClamp,
		Logger:              zap.NewNop(),
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
