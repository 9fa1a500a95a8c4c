package ballistics

import (
	"github.com/gballistics/engine/bmath/unit"
	"github.com/gballistics/engine/bmath/vector"
)

// SampleFlag is a bitmask of the events that caused a sample to be
// emitted. A regularly-spaced sample carries RANGE; a sample emitted
// because several monitors crossed at once carries all of their bits.
type SampleFlag uint16

const (
	FlagNone   SampleFlag = 0
	FlagZeroUp SampleFlag = 1 << (iota - 1)
	FlagZeroDown
	FlagMach
	FlagApex
	FlagRange
	FlagMRT // minimum-time-to-target
	FlagMax
)

// Has reports whether f includes every bit in other.
func (f SampleFlag) Has(other SampleFlag) bool { return f&other == other }

// TrajectorySample is one point of a solved trajectory.
type TrajectorySample struct {
	Time float64 // seconds since shot

	Range         unit.Distance // down-range distance
	SlantDistance unit.Distance // distance along the line of sight
	Height        unit.Distance // height above the sight line (signed)
	Windage       unit.Distance

	Velocity vector.Vector // body-frame velocity, fps
	Speed    unit.Velocity // |Velocity|
	Mach     float64       // Speed / local speed of sound

	Energy unit.Energy

	DropAngle    unit.Angular // angular correction to null Height at Range
	WindageAngle unit.Angular // angular correction to null Windage at Range

	LookDistance unit.Distance // distance along the sight line to this sample's down-range position
	DensityRatio float64
	Drag         float64 // deceleration magnitude at this sample, fps^2

	Flags SampleFlag

	// OptimalGameWeight is a derived, supplemented field: the source's
	// energy-based heuristic for the heaviest game animal a kill shot is
	// probable against with the projectile's current energy.
	OptimalGameWeight unit.Weight
}

// ClickAdjustment converts DropAngle/WindageAngle into clicks of the
// weapon's sight. The results are fractional; no rounding is applied.
func (s TrajectorySample) ClickAdjustment(weapon Weapon) (dropClicks, windageClicks float64) {
	click := weapon.ClickValue().In(unit.AngularRadian)
	if click == 0 {
		return 0, 0
	}
	return s.DropAngle.In(unit.AngularRadian) / click, s.WindageAngle.In(unit.AngularRadian) / click
}
