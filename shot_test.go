package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gballistics/engine/bmath/unit"
)

func testAmmunition(t *testing.T) Ammunition {
	t.Helper()
	bc, err := NewBallisticCoefficient(0.475, DragTableG1)
	require.NoError(t, err)
	proj, err := NewProjectile(bc, unit.MustCreateDistance(0.308, unit.DistanceInch), unit.MustCreateWeight(168, unit.WeightGrain))
	require.NoError(t, err)
	ammo, err := NewAmmunition(proj, unit.MustCreateVelocity(2650, unit.VelocityFPS))
	require.NoError(t, err)
	return ammo
}

func TestNewShotBuildsALevelShotWithNoWind(t *testing.T) {
	weapon := NewWeapon(unit.MustCreateDistance(1.5, unit.DistanceInch))
	shot, err := NewShot(weapon, testAmmunition(t), DefaultAtmosphere(), unit.MustCreateAngular(0, unit.AngularRadian))
	require.NoError(t, err)
	require.NoError(t, shot.Validate())
	assert.False(t, shot.HasSpinDrift())
	_, hasLatitude := shot.Latitude()
	assert.False(t, hasLatitude)
}

func TestShotValidateRejectsExtremeLookAngle(t *testing.T) {
	weapon := NewWeapon(unit.MustCreateDistance(1.5, unit.DistanceInch))
	shot, err := NewShot(weapon, testAmmunition(t), DefaultAtmosphere(), unit.MustCreateAngular(0, unit.AngularRadian))
	require.NoError(t, err)

	shot = shot.WithLookAngle(unit.MustCreateAngular(1.6, unit.AngularRadian))
	require.Error(t, shot.Validate())
}

func TestNewAmmunitionRejectsZeroMuzzleVelocity(t *testing.T) {
	_, err := NewAmmunition(Projectile{}, unit.MustCreateVelocity(0, unit.VelocityFPS))
	require.Error(t, err)
}

func TestHasSpinDriftRequiresBothTwistAndLength(t *testing.T) {
	bc, err := NewBallisticCoefficient(0.475, DragTableG1)
	require.NoError(t, err)

	projNoLength, err := NewProjectile(bc, unit.MustCreateDistance(0.308, unit.DistanceInch), unit.MustCreateWeight(168, unit.WeightGrain))
	require.NoError(t, err)
	ammoNoLength, err := NewAmmunition(projNoLength, unit.MustCreateVelocity(2650, unit.VelocityFPS))
	require.NoError(t, err)

	twistWeapon := NewWeaponWithTwist(unit.MustCreateDistance(1.5, unit.DistanceInch), TwistRight, unit.MustCreateDistance(10, unit.DistanceInch))
	shot, err := NewShot(twistWeapon, ammoNoLength, DefaultAtmosphere(), unit.MustCreateAngular(0, unit.AngularRadian))
	require.NoError(t, err)
	assert.False(t, shot.HasSpinDrift())

	projWithLength, err := NewProjectileWithLength(bc,
		unit.MustCreateDistance(0.308, unit.DistanceInch),
		unit.MustCreateDistance(1.2, unit.DistanceInch),
		unit.MustCreateWeight(168, unit.WeightGrain))
	require.NoError(t, err)
	ammoWithLength, err := NewAmmunition(projWithLength, unit.MustCreateVelocity(2650, unit.VelocityFPS))
	require.NoError(t, err)
	shot, err = NewShot(twistWeapon, ammoWithLength, DefaultAtmosphere(), unit.MustCreateAngular(0, unit.AngularRadian))
	require.NoError(t, err)
	assert.True(t, shot.HasSpinDrift())
}

func TestWithLatitudeEnablesCoriolis(t *testing.T) {
	weapon := NewWeapon(unit.MustCreateDistance(1.5, unit.DistanceInch))
	shot, err := NewShot(weapon, testAmmunition(t), DefaultAtmosphere(), unit.MustCreateAngular(0, unit.AngularRadian))
	require.NoError(t, err)

	shot = shot.WithLatitude(unit.MustCreateAngular(45, unit.AngularRadian))
	lat, ok := shot.Latitude()
	assert.True(t, ok)
	assert.InDelta(t, 45, lat.In(unit.AngularRadian), 1e-9)
}
