package ballistics

import (
	"math"

	"github.com/gballistics/engine/bmath/unit"
)

// Shot bundles everything one trajectory solve needs: weapon,
// ammunition, atmosphere, wind field, the barrel elevation to fire at,
// and the aiming geometry (look angle, cant, target azimuth, latitude
// for Coriolis). It is a single owning aggregate — no field holds a
// back-reference to anything else, so samples built from a Shot never
// store a pointer into it.
type Shot struct {
	weapon     Weapon
	ammunition Ammunition
	atmosphere Atmosphere
	wind       *WindField
	elevation  unit.Angular

	lookAngle unit.Angular
	cantAngle unit.Angular
	azimuth   unit.Angular

	hasLatitude bool
	latitude    unit.Angular
}

// NewShot builds a level shot (zero look angle, cant and azimuth, no
// Coriolis) fired at the given barrel elevation with no wind.
func NewShot(weapon Weapon, ammunition Ammunition, atmosphere Atmosphere, elevation unit.Angular) (Shot, error) {
	s := Shot{
		weapon:     weapon,
		ammunition: ammunition,
		atmosphere: atmosphere,
		wind:       NoWind(),
		elevation:  elevation,
	}
	return s, s.Validate()
}

// Validate checks the Shot invariants named in §3: muzzle velocity
// greater than zero (already enforced at Ammunition construction) and
// look angle strictly inside (-pi/2, pi/2).
func (s Shot) Validate() error {
	if s.ammunition.MuzzleVelocity().In(unit.VelocityFPS) <= 0 {
		return &SolverInputError{Field: "Shot.MuzzleVelocity", Message: "must be greater than zero"}
	}
	la := s.lookAngle.In(unit.AngularRadian)
	if la <= -math.Pi/2 || la >= math.Pi/2 {
		return &SolverInputError{Field: "Shot.LookAngle", Message: "must be strictly between -90 and 90 degrees"}
	}
	if s.wind == nil {
		return &SolverInputError{Field: "Shot.Wind", Message: "wind field is required (use NoWind() for none)"}
	}
	if s.ammunition.Bullet().BallisticCoefficient().Curve() == nil {
		return &SolverInputError{Field: "Shot.DragCurve", Message: "projectile has no drag curve"}
	}
	return nil
}

// WithWind returns a copy of the shot using the given wind field.
func (s Shot) WithWind(w *WindField) Shot {
	s.wind = w
	return s
}

// WithLookAngle returns a copy of the shot aimed at a target that is
// not on the same level as the shooter; positive means the target is
// higher.
func (s Shot) WithLookAngle(angle unit.Angular) Shot {
	s.lookAngle = angle
	return s
}

// WithCantAngle returns a copy of the shot with the weapon canted
// (rotated about the bore axis) by the given angle.
func (s Shot) WithCantAngle(angle unit.Angular) Shot {
	s.cantAngle = angle
	return s
}

// WithAzimuth returns a copy of the shot fired along the given
// compass bearing, used for wind geometry and Coriolis deflection.
func (s Shot) WithAzimuth(azimuth unit.Angular) Shot {
	s.azimuth = azimuth
	return s
}

// WithLatitude returns a copy of the shot fired at the given latitude,
// enabling Coriolis deflection. Without it, Coriolis is omitted.
func (s Shot) WithLatitude(latitude unit.Angular) Shot {
	s.hasLatitude = true
	s.latitude = latitude
	return s
}

// WithElevation returns a copy of the shot fired at the given barrel
// elevation; this is what the zero solver varies between iterations.
func (s Shot) WithElevation(elevation unit.Angular) Shot {
	s.elevation = elevation
	return s
}

func (s Shot) Weapon() Weapon           { return s.weapon }
func (s Shot) Ammunition() Ammunition   { return s.ammunition }
func (s Shot) Atmosphere() Atmosphere   { return s.atmosphere }
func (s Shot) Wind() *WindField         { return s.wind }
func (s Shot) Elevation() unit.Angular  { return s.elevation }
func (s Shot) LookAngle() unit.Angular  { return s.lookAngle }
func (s Shot) CantAngle() unit.Angular  { return s.cantAngle }
func (s Shot) Azimuth() unit.Angular    { return s.azimuth }
func (s Shot) Latitude() (unit.Angular, bool) {
	return s.latitude, s.hasLatitude
}

// HasSpinDrift reports whether both the weapon's rifling twist and the
// projectile's length are known, the precondition for computing a
// Miller stability coefficient and spin-drift windage correction.
func (s Shot) HasSpinDrift() bool {
	return s.weapon.HasTwist() && s.ammunition.Bullet().HasLength()
}
