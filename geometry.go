package ballistics

import (
	"math"

	"github.com/gballistics/engine/bmath/vector"
)

// earthRotationRate is Earth's angular velocity, rad/s, used by the
// Coriolis deflection term.
const earthRotationRate = 7.2921159e-5

// bodyFrameRotation composes the fixed rotation order resolved for the
// cant/look-angle ambiguity: cant first (roll about the bore axis),
// then look angle (pitch about the resulting lateral axis), then
// azimuth (yaw about the vertical). It is used identically for the
// gravity vector and for converting wind direction into the body
// frame, so the two are never built with disagreeing conventions.
func bodyFrameRotation(cant, look, azimuth float64) func(vector.Vector) vector.Vector {
	cantCos, cantSin := math.Cos(cant), math.Sin(cant)
	lookCos, lookSin := math.Cos(look), math.Sin(look)
	azCos, azSin := math.Cos(azimuth), math.Sin(azimuth)

	return func(v vector.Vector) vector.Vector {
		// Cant: roll about X.
		x1, y1, z1 := v.X, v.Y*cantCos-v.Z*cantSin, v.Y*cantSin+v.Z*cantCos
		// Look angle: pitch about Z.
		x2, y2, z2 := x1*lookCos+y1*lookSin, -x1*lookSin+y1*lookCos, z1
		// Azimuth: yaw about Y.
		x3, z3 := x2*azCos+z2*azSin, -x2*azSin+z2*azCos
		return vector.Create(x3, y2, z3)
	}
}

// gravityVector returns Earth gravity (magnitude g, straight down in
// world terms) expressed in the body frame attached to the sight line
// at cant/look/azimuth.
func gravityVector(g, cant, look, azimuth float64) vector.Vector {
	rotate := bodyFrameRotation(cant, look, azimuth)
	return rotate(vector.Create(0, g, 0))
}

// windToVector converts a wind segment's (speed, direction-from) pair
// into a body-frame velocity vector, using the same rotation as
// gravityVector so the two geometries never disagree.
func windToVector(speed, direction, cant, look, azimuth float64) vector.Vector {
	rangeComponent := speed * math.Cos(direction)
	crossComponent := speed * math.Sin(direction)
	rotate := bodyFrameRotation(cant, look, azimuth)
	return rotate(vector.Create(rangeComponent, 0, crossComponent))
}

// coriolisAcceleration returns the apparent Coriolis acceleration
// (fps^2) on a projectile moving at velocity v (fps, body frame),
// given the shot's latitude and azimuth (radians). The formula is the
// standard small-arms approximation: Earth's angular velocity is
// resolved into the body frame from latitude and azimuth, and the
// acceleration is -2*Omega x v.
func coriolisAcceleration(latitude, azimuth float64, v vector.Vector) vector.Vector {
	omega := earthRotationRate
	omegaX := omega * math.Cos(latitude) * math.Cos(azimuth)
	omegaY := omega * math.Sin(latitude)
	omegaZ := -omega * math.Cos(latitude) * math.Sin(azimuth)

	crossX := omegaY*v.Z - omegaZ*v.Y
	crossY := omegaZ*v.X - omegaX*v.Z
	crossZ := omegaX*v.Y - omegaY*v.X

	return vector.Create(-2*crossX, -2*crossY, -2*crossZ)
}

// getCorrection converts a linear offset (drop or windage, ft) at the
// given down-range distance (ft) into the angular correction needed to
// null it out, matching the source's small-angle-free arctangent form.
func getCorrection(distance, offset float64) float64 {
	if distance == 0 {
		return 0
	}
	return math.Atan(offset / distance)
}
