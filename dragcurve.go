package ballistics

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DragPoint is one (Mach, Cd) sample of a drag curve.
type DragPoint struct {
	Mach float64
	Cd   float64
}

// DragCurve is an immutable, strictly increasing (by Mach) sequence of
// drag-coefficient samples. It is safe to share a single *DragCurve
// across concurrent solves: lookup state that changes during a solve
// lives in a separate DragCurveCursor, never on the curve itself.
type DragCurve struct {
	points []DragPoint
}

// NewDragCurve validates and wraps an ordered sequence of (Mach, Cd)
// pairs. The sequence must be non-empty with no negative Mach value;
// the first point need not be at Mach 0. Points are sorted by Mach on
// construction, so out-of-order input is accepted; duplicate Mach
// values, detected with a relative tolerance, are rejected.
func NewDragCurve(points []DragPoint) (*DragCurve, error) {
	if len(points) == 0 {
		return nil, &SolverInputError{Field: "DragCurve", Message: "drag curve has no points"}
	}
	sorted := make([]DragPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Mach < sorted[j].Mach })

	if sorted[0].Mach < 0 {
		return nil, &SolverInputError{Field: "DragCurve", Message: "Mach values must be >= 0"}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Mach <= sorted[i-1].Mach || floats.EqualWithinRel(sorted[i].Mach, sorted[i-1].Mach, 1e-9) {
			return nil, &SolverInputError{Field: "DragCurve", Message: "Mach values must be strictly increasing"}
		}
	}
	return &DragCurve{points: sorted}, nil
}

// Bounds returns the minimum and maximum Cd values on the curve, used
// to check the "Cd queries stay within curve bounds" invariant.
func (c *DragCurve) Bounds() (min, max float64) {
	min, max = c.points[0].Cd, c.points[0].Cd
	for _, p := range c.points {
		if p.Cd < min {
			min = p.Cd
		}
		if p.Cd > max {
			max = p.Cd
		}
	}
	return min, max
}

// DragCurveCursor holds the per-solve mutable lookup state (the cached
// bracket index) that must never be stored on the shared DragCurve.
// Create one per solve and reuse it across the solve's Mach queries,
// which during a shot descend close to monotonically.
type DragCurveCursor struct {
	lastIndex  int
	warnedOnce bool
}

// NewDragCurveCursor returns a fresh cursor for one solve.
func NewDragCurveCursor() *DragCurveCursor {
	return &DragCurveCursor{}
}

// At returns the drag coefficient at the given Mach number, exploiting
// the cursor's cached bracket when the new Mach falls in the same or
// an adjacent bracket (the common case as velocity descends through a
// shot). Below the first or above the last sample, the curve is
// extrapolated as the boundary value; extrapolated reports whether
// that happened.
func (c *DragCurve) At(mach float64, cursor *DragCurveCursor) (cd float64, extrapolated bool) {
	n := len(c.points)
	if mach <= c.points[0].Mach {
		return c.points[0].Cd, mach < c.points[0].Mach
	}
	if mach >= c.points[n-1].Mach {
		return c.points[n-1].Cd, mach > c.points[n-1].Mach
	}

	i := cursor.lastIndex
	if i < 0 || i >= n-1 || !c.inBracket(i, mach) {
		if i-1 >= 0 && c.inBracket(i-1, mach) {
			i = i - 1
		} else if i+1 < n-1 && c.inBracket(i+1, mach) {
			i = i + 1
		} else {
			i = c.bracketSearch(mach)
		}
	}
	cursor.lastIndex = i

	lo, hi := c.points[i], c.points[i+1]
	t := (mach - lo.Mach) / (hi.Mach - lo.Mach)
	return lo.Cd + t*(hi.Cd-lo.Cd), false
}

func (c *DragCurve) inBracket(i int, mach float64) bool {
	return mach >= c.points[i].Mach && mach <= c.points[i+1].Mach
}

func (c *DragCurve) bracketSearch(mach float64) int {
	lo, hi := 0, len(c.points)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.points[mid].Mach <= mach {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
