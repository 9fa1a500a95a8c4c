package ballistics

import "fmt"

// DimensionError is returned when a unit-quantity operation crosses
// incompatible physical dimensions, or a value falls outside its
// physical domain (e.g. a non-positive temperature).
type DimensionError struct {
	Op      string
	Message string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension error in %s: %s", e.Op, e.Message)
}

// SolverInputError marks a structurally invalid Shot: negative muzzle
// velocity, an empty drag curve, zero projectile mass, and the like.
type SolverInputError struct {
	Field   string
	Message string
}

func (e *SolverInputError) Error() string {
	return fmt.Sprintf("invalid shot input (%s): %s", e.Field, e.Message)
}

// RangeError reports that a trajectory could not reach a requested
// range before the integrator terminated.
type RangeError struct {
	Reason       string
	ReachedRange float64
	Requested    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("trajectory did not reach range %.3f ft (reached %.3f ft): %s",
		e.Requested, e.ReachedRange, e.Reason)
}

// InstabilityError marks a numerical breakdown: a non-finite state or
// a step that collapsed below the minimum allowed size.
type InstabilityError struct {
	Message string
	Time    float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("integrator instability at t=%.6fs: %s", e.Time, e.Message)
}

// ZeroFindingError reports that the zero solver failed to converge,
// carrying the last attempted elevation and residual.
type ZeroFindingError struct {
	LastElevation float64
	Residual      float64
	Iterations    int
	Message       string
}

func (e *ZeroFindingError) Error() string {
	return fmt.Sprintf("zero solver did not converge after %d iterations (elevation=%.8f rad, residual=%.6f): %s",
		e.Iterations, e.LastElevation, e.Residual, e.Message)
}

// UnknownEngineError reports an engine-registry lookup miss.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine %q", e.Name)
}

// Cancelled reports a cooperative stop requested through
// Config.ShouldContinue; it carries the partial trajectory produced
// before the stop.
type Cancelled struct {
	Partial *Trajectory
}

func (e *Cancelled) Error() string {
	n := 0
	if e.Partial != nil {
		n = len(e.Partial.Samples)
	}
	return fmt.Sprintf("solve cancelled after %d samples", n)
}
