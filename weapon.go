package ballistics

import "github.com/gballistics/engine/bmath/unit"

// Rifling twist direction.
const (
	TwistRight byte = 1
	TwistLeft  byte = 2
)

// Weapon describes the rifle/sight combination: sight height above the
// bore, rifling twist (if known), the cached zero elevation (the pitch
// of the sight line relative to the bore, resolved by a prior zero
// solve or set directly), and the supplemented click-value used to
// convert drop/windage angles to scope clicks.
type Weapon struct {
	sightHeight unit.Distance

	hasTwist       bool
	twistDirection byte
	twist          unit.Distance // rifling rate, e.g. 10in for a 1:10 twist

	hasZeroElevation bool
	zeroElevation    unit.Angular

	clickValue unit.Angular
}

// NewWeapon describes a weapon with no rifling-twist information; a
// Shot built from it never reports spin drift.
func NewWeapon(sightHeight unit.Distance) Weapon {
	return Weapon{sightHeight: sightHeight}
}

// NewWeaponWithTwist additionally records rifling twist, enabling
// spin-drift computation when the projectile also has a known length.
func NewWeaponWithTwist(sightHeight unit.Distance, direction byte, twist unit.Distance) Weapon {
	return Weapon{
		sightHeight:    sightHeight,
		hasTwist:       true,
		twistDirection: direction,
		twist:          twist,
	}
}

func (w Weapon) SightHeight() unit.Distance { return w.sightHeight }
func (w Weapon) HasTwist() bool             { return w.hasTwist }
func (w Weapon) TwistDirection() byte       { return w.twistDirection }
func (w Weapon) Twist() unit.Distance       { return w.twist }
func (w Weapon) ClickValue() unit.Angular   { return w.clickValue }

// WithClickValue returns a copy of the weapon carrying the given
// angular-per-click sight adjustment value.
func (w Weapon) WithClickValue(click unit.Angular) Weapon {
	w.clickValue = click
	return w
}

// ZeroElevation returns the sight-line pitch the zero solver converged
// on for this weapon, and whether one has been recorded yet.
func (w Weapon) ZeroElevation() (unit.Angular, bool) {
	return w.zeroElevation, w.hasZeroElevation
}

// WithZeroElevation returns a copy of the weapon with its cached zero
// elevation set, as produced by ZeroSolver.Solve.
func (w Weapon) WithZeroElevation(elevation unit.Angular) Weapon {
	w.zeroElevation = elevation
	w.hasZeroElevation = true
	return w
}
