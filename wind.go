package ballistics

import (
	"math"
	"sort"

	"github.com/gballistics/engine/bmath/unit"
)

// WindSegment describes a constant wind blowing out to UntilRange
// down-range of the muzzle. Direction follows clock convention: 0
// degrees blows from directly behind the shooter (a tailwind), 90
// degrees from the left, 180 into the shooter's face.
type WindSegment struct {
	UntilRange unit.Distance
	Velocity   unit.Velocity
	Direction  unit.Angular
}

// WindField is an ordered, immutable list of wind segments by
// increasing down-range upper bound; the last segment's upper bound is
// always +Inf.
type WindField struct {
	segments []WindSegment
}

// NoWind returns a field with no wind for the entire shot.
func NoWind() *WindField {
	return &WindField{segments: []WindSegment{{
		UntilRange: unit.MustCreateDistance(math.Inf(1), unit.DistanceFoot),
		Velocity:   unit.MustCreateVelocity(0, unit.VelocityFPS),
		Direction:  unit.MustCreateAngular(0, unit.AngularRadian),
	}}}
}

// ConstantWind returns a field with one wind for the entire shot.
func ConstantWind(velocity unit.Velocity, direction unit.Angular) *WindField {
	return &WindField{segments: []WindSegment{{
		UntilRange: unit.MustCreateDistance(math.Inf(1), unit.DistanceFoot),
		Velocity:   velocity,
		Direction:  direction,
	}}}
}

// NewWindField builds a field from segments ordered nearest-muzzle
// first. The last segment's UntilRange is forced to +Inf regardless of
// what was supplied, since a shot must always have a defined wind past
// the final named boundary.
func NewWindField(segments ...WindSegment) (*WindField, error) {
	if len(segments) == 0 {
		return NoWind(), nil
	}
	sorted := make([]WindSegment, len(segments))
	copy(sorted, segments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UntilRange.In(unit.DistanceFoot) < sorted[j].UntilRange.In(unit.DistanceFoot)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].UntilRange.In(unit.DistanceFoot) <= sorted[i-1].UntilRange.In(unit.DistanceFoot) {
			return nil, &SolverInputError{Field: "WindField", Message: "segment upper bounds must be strictly increasing"}
		}
	}
	sorted[len(sorted)-1].UntilRange = unit.MustCreateDistance(math.Inf(1), unit.DistanceFoot)
	return &WindField{segments: sorted}, nil
}

// WindCursor caches the last segment index found, so repeated lookups
// at monotonically increasing range (the common case during a shot)
// are amortized O(1). Lives per-solve, never on the shared WindField.
type WindCursor struct {
	lastIndex int
}

// NewWindCursor returns a fresh cursor for one solve.
func NewWindCursor() *WindCursor { return &WindCursor{} }

// At returns the segment whose upper bound first exceeds rng.
func (w *WindField) At(rng unit.Distance, cursor *WindCursor) WindSegment {
	r := rng.In(unit.DistanceFoot)
	n := len(w.segments)

	i := cursor.lastIndex
	if i < 0 || i >= n || w.segments[i].UntilRange.In(unit.DistanceFoot) <= r ||
		(i > 0 && w.segments[i-1].UntilRange.In(unit.DistanceFoot) > r) {
		i = sort.Search(n, func(k int) bool {
			return w.segments[k].UntilRange.In(unit.DistanceFoot) > r
		})
		if i >= n {
			i = n - 1
		}
	}
	cursor.lastIndex = i
	return w.segments[i]
}
