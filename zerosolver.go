package ballistics

import (
	stderrors "errors"
	"math"

	"github.com/gballistics/engine/bmath/unit"
)

// ZeroSolver finds the barrel elevation that zeros a shot at a given
// range, using the given engine as its trajectory oracle.
type ZeroSolver struct {
	engine *Engine
	config Config
}

// NewZeroSolver builds a solver that brackets and refines elevation
// with the given engine and config (iteration cap, accuracy, gravity
// constant and cancellation are all taken from config).
func NewZeroSolver(engine *Engine, config Config) ZeroSolver {
	return ZeroSolver{engine: engine, config: config}
}

// Solve returns the barrel elevation angle that zeros shot at
// zeroRange: the height of the trajectory at zeroRange is within
// config.ZeroFindingAccuracy of the sight line. shot's own elevation
// is ignored; only its look angle, wind, atmosphere, weapon and
// ammunition matter. Elevations are measured from the sight line, so
// it starts bracketing at elevation 0 (the sight line itself, i.e. the
// look angle measured from the horizontal) and expands geometrically until it
// finds a sign change in height-at-zero-range, then refines with the
// secant method, falling back to bisection whenever a secant step
// would leave the bracket.
func (z ZeroSolver) Solve(shot Shot, zeroRange unit.Distance) (unit.Angular, error) {
	sampleStep := unit.MustCreateDistance(zeroRange.In(unit.DistanceFoot)/10, unit.DistanceFoot)
	heightAt := func(elevation float64) (float64, error) {
		trial := shot.WithElevation(unit.MustCreateAngular(elevation, unit.AngularRadian))
		traj, err := z.engine.Solve(trial, z.config, zeroRange, sampleStep)
		if err != nil {
			return 0, wrapRangeErr(err, elevation)
		}
		sample, ok := traj.AtRange(zeroRange)
		if !ok {
			return 0, &RangeError{Reason: "trajectory did not reach zero range", Requested: zeroRange.In(unit.DistanceFoot)}
		}
		return sample.Height.In(unit.DistanceFoot), nil
	}

	lo := 0.0
	hi := lo + 0.030 // ~30 mrad, matching the initial search span

	fLo, err := heightAt(lo)
	if err != nil {
		var re *RangeError
		if !stderrors.As(err, &re) {
			return unit.Angular{}, err
		}
		fLo = math.Inf(-1)
	}

	const maxBracketExpansions = 12
	maxHigh := math.Pi / 3 // 60 degrees
	fHi, err := heightAt(hi)
	expansions := 0
	for (err != nil || sign(fLo)*sign(fHi) > 0) && hi < maxHigh && expansions < maxBracketExpansions {
		hi += hi - lo
		fHi, err = heightAt(hi)
		expansions++
	}
	if err != nil || sign(fLo)*sign(fHi) > 0 {
		return unit.Angular{}, &ZeroFindingError{LastElevation: hi, Residual: fHi, Iterations: expansions, Message: "could not bracket a zero crossing"}
	}

	accuracy := z.config.ZeroFindingAccuracy.In(unit.DistanceFoot)
	const angleTolerance = 1e-6

	for i := 0; i < z.config.MaxIterations; i++ {
		var mid float64
		// Secant step; fall back to bisection if it would leave [lo, hi].
		if fHi != fLo {
			mid = hi - fHi*(hi-lo)/(fHi-fLo)
		}
		if mid <= lo || mid >= hi || fHi == fLo {
			mid = (lo + hi) / 2
		}

		fMid, err := heightAt(mid)
		if err != nil {
			return unit.Angular{}, err
		}

		if math.Abs(fMid) <= 0.5*accuracy || (hi-lo) < angleTolerance {
			return unit.MustCreateAngular(mid, unit.AngularRadian), nil
		}

		if sign(fMid) == sign(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi, fHi = mid, fMid
		}
	}

	return unit.Angular{}, &ZeroFindingError{
		LastElevation: (lo + hi) / 2,
		Residual:      fHi,
		Iterations:    z.config.MaxIterations,
		Message:       "exceeded iteration cap without converging",
	}
}
