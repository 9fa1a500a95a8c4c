package ballistics

import (
	"math"

	"github.com/gballistics/engine/bmath/unit"
)

// standardSectionalDensity is the sectional density, in lb/in^2, that
// every built-in drag table's Cd curve is itself calibrated against;
// it is the "standard sectional density" of §3's form-factor formula.
const standardSectionalDensity = 1.0

// retardationConstant is the empirical constant relating density
// ratio, scaled Cd and speed to a drag deceleration in fps^2,
// carried over from the source's fixed 2.08551e-04 figure.
const retardationConstant = 2.08551e-04

// Projectile describes the bullet: its mass, diameter, ballistic
// coefficient/drag curve, and optional spin-stability dimensions.
type Projectile struct {
	ballisticCoefficient BallisticCoefficient
	weight               unit.Weight
	diameter             unit.Distance
	hasLength            bool
	length               unit.Distance
}

// NewProjectile describes a projectile without spin-drift dimensions;
// a Shot built from it never reports spin drift even if the weapon has
// rifling twist information.
func NewProjectile(bc BallisticCoefficient, diameter unit.Distance, weight unit.Weight) (Projectile, error) {
	if weight.In(unit.WeightGrain) <= 0 {
		return Projectile{}, &SolverInputError{Field: "Projectile.Weight", Message: "must be greater than zero"}
	}
	if diameter.In(unit.DistanceInch) <= 0 {
		return Projectile{}, &SolverInputError{Field: "Projectile.Diameter", Message: "must be greater than zero"}
	}
	return Projectile{ballisticCoefficient: bc, diameter: diameter, weight: weight}, nil
}

// NewProjectileWithLength additionally records the bullet's overall
// length, enabling spin-drift computation when combined with a
// Weapon's rifling twist.
func NewProjectileWithLength(bc BallisticCoefficient, diameter, length unit.Distance, weight unit.Weight) (Projectile, error) {
	p, err := NewProjectile(bc, diameter, weight)
	if err != nil {
		return Projectile{}, err
	}
	p.hasLength = true
	p.length = length
	return p, nil
}

func (p Projectile) BallisticCoefficient() BallisticCoefficient { return p.ballisticCoefficient }
func (p Projectile) Weight() unit.Weight                        { return p.weight }
func (p Projectile) Diameter() unit.Distance                    { return p.diameter }
func (p Projectile) Length() unit.Distance                      { return p.length }
func (p Projectile) HasLength() bool                            { return p.hasLength }

// sectionalDensity is the projectile's actual mass per cross-sectional
// area, lb/in^2.
func (p Projectile) sectionalDensity() float64 {
	d := p.diameter.In(unit.DistanceInch)
	return p.weight.In(unit.WeightPound) / (d * d)
}

// formFactor is the §3 form factor: BC scaled by the ratio of the
// standard reference projectile's sectional density to this
// projectile's actual one.
func (p Projectile) formFactor() float64 {
	return p.ballisticCoefficient.Value() * standardSectionalDensity / p.sectionalDensity()
}

// CdAt returns the projectile's actual drag coefficient at the given
// Mach number: the drag curve's tabulated value scaled by form factor.
// cursor must be a DragCurveCursor private to the current solve.
func (p Projectile) CdAt(mach float64, cursor *DragCurveCursor) (cd float64, extrapolated bool) {
	raw, extrapolated := p.ballisticCoefficient.Curve().At(mach, cursor)
	return raw * p.formFactor(), extrapolated
}

// DragDeceleration returns the magnitude of drag deceleration (fps^2)
// given the local air-density ratio, relative airspeed (fps) and Mach.
func (p Projectile) DragDeceleration(densityRatio, speed, mach float64, cursor *DragCurveCursor) (decel float64, extrapolated bool) {
	cd, extrapolated := p.CdAt(mach, cursor)
	return densityRatio * cd * speed * retardationConstant, extrapolated
}

// Ammunition couples a Projectile to the muzzle velocity it leaves the
// barrel at.
type Ammunition struct {
	projectile     Projectile
	muzzleVelocity unit.Velocity
}

// NewAmmunition bundles a projectile with its muzzle velocity.
func NewAmmunition(bullet Projectile, muzzleVelocity unit.Velocity) (Ammunition, error) {
	if muzzleVelocity.In(unit.VelocityFPS) <= 0 {
		return Ammunition{}, &SolverInputError{Field: "Ammunition.MuzzleVelocity", Message: "must be greater than zero"}
	}
	return Ammunition{projectile: bullet, muzzleVelocity: muzzleVelocity}, nil
}

func (a Ammunition) Bullet() Projectile           { return a.projectile }
func (a Ammunition) MuzzleVelocity() unit.Velocity { return a.muzzleVelocity }

// EffectiveMuzzleVelocity adjusts the nominal muzzle velocity for
// powder-temperature sensitivity, given the shot's atmosphere and a
// baseline powder temperature of 15.56 degC (60 degF), matching the
// reference temperature reloading manuals use for published charge
// data.
func (a Ammunition) EffectiveMuzzleVelocity(atm Atmosphere) unit.Velocity {
	sensitivity := atm.PowderSensitivity()
	if sensitivity == 0 {
		return a.muzzleVelocity
	}
	baselineC := 15.56
	deltaC := atm.Temperature().In(unit.TemperatureCelsius) - baselineC
	factor := 1.0 + (sensitivity/100.0)*(deltaC/15.56)
	return unit.MustCreateVelocity(a.muzzleVelocity.In(unit.VelocityFPS)*factor, unit.VelocityFPS)
}

// millerStabilityCoefficient computes the Miller twist-rate stability
// coefficient from the projectile's physical dimensions, the weapon's
// rifling twist, the muzzle velocity and the firing atmosphere. Both
// the projectile's length and the weapon's twist must be known or the
// result is meaningless; callers check HasSpinDrift first.
func millerStabilityCoefficient(p Projectile, w Weapon, muzzleVelocity unit.Velocity, atm Atmosphere) float64 {
	weight := p.weight.In(unit.WeightGrain)
	diameter := p.diameter.In(unit.DistanceInch)
	twist := w.twist.In(unit.DistanceInch) / diameter
	length := p.length.In(unit.DistanceInch) / diameter

	sd := 30 * weight / (math.Pow(twist, 2) * math.Pow(diameter, 3) * length * (1 + math.Pow(length, 2)))
	fv := math.Pow(muzzleVelocity.In(unit.VelocityFPS)/2800, 1.0/3.0)

	ft := atm.Temperature().In(unit.TemperatureFahrenheit)
	pt := atm.Pressure().In(unit.PressureInHg)
	ftp := ((ft + 460) / (59 + 460)) * (29.92 / pt)

	return sd * fv * ftp
}

// optimalGameWeight is the source's energy-based "quarry sizing"
// heuristic: an empirical estimate, in pounds, of the largest game
// animal a kill shot is probable against with the given bullet weight
// (grains) and velocity (fps) at the sample point.
func optimalGameWeight(bulletWeightGrains, velocityFPS float64) float64 {
	return math.Pow(bulletWeightGrains, 2) * math.Pow(velocityFPS, 3) * 1.5e-12
}

// kineticEnergy returns the kinetic energy, in foot-pounds, of a
// bulletWeightGrains-grain bullet moving at velocityFPS fps.
func kineticEnergy(bulletWeightGrains, velocityFPS float64) float64 {
	return bulletWeightGrains * math.Pow(velocityFPS, 2) / 450400
}
