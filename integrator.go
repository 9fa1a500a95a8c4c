package ballistics

import (
	"github.com/gballistics/engine/bmath/unit"
	"github.com/gballistics/engine/bmath/vector"
)

// solveCursors bundles the per-solve mutable lookup state that must
// never live on a shared DragCurve/WindField: one cursor of each kind,
// created fresh at the start of every Solve call.
type solveCursors struct {
	drag *DragCurveCursor
	wind *WindCursor
}

func newSolveCursors() solveCursors {
	return solveCursors{drag: NewDragCurveCursor(), wind: NewWindCursor()}
}

// state is the integrator's working point: position in the body frame
// (X down-range, Y drop, Z windage, all feet) and velocity (fps), at
// time t seconds since the shot.
type state struct {
	pos vector.Vector
	vel vector.Vector
	t   float64
}

// derivative evaluates the acceleration (fps^2, body frame) acting on
// the projectile at the given state, along with the Mach number and
// density ratio used to get there (samples need both) and whether the
// Cd lookup fell outside the drag curve's tabulated range.
type derivative struct {
	accel        vector.Vector
	mach         float64
	densityRatio float64
	extrapolated bool
}

// derive computes the derivative at s for the given shot. g is signed
// (negative) consistent with the source's gravity-constant convention.
func derive(s state, shot Shot, g float64, cur solveCursors) derivative {
	atm := shot.Atmosphere()
	altitudeOffset := unit.MustCreateDistance(s.pos.Y, unit.DistanceFoot)

	windSeg := shot.Wind().At(unit.MustCreateDistance(s.pos.X, unit.DistanceFoot), cur.wind)
	windVec := windToVector(
		windSeg.Velocity.In(unit.VelocityFPS),
		windSeg.Direction.In(unit.AngularRadian),
		shot.CantAngle().In(unit.AngularRadian),
		shot.LookAngle().In(unit.AngularRadian),
		shot.Azimuth().In(unit.AngularRadian),
	)

	relative := s.vel.Subtract(windVec)
	speed := relative.Magnitude()

	soundSpeed := atm.SpeedOfSoundAt(altitudeOffset).In(unit.VelocityFPS)
	mach := speed / soundSpeed
	densityRatio := atm.DensityRatioAt(altitudeOffset)

	projectile := shot.Ammunition().Bullet()
	decel, extrapolated := projectile.DragDeceleration(densityRatio, speed, mach, cur.drag)

	var dragAccel vector.Vector
	if speed > 1e-9 {
		dragAccel = relative.Normalize().MultiplyByConst(-decel)
	}

	gravity := gravityVector(g, shot.CantAngle().In(unit.AngularRadian), shot.LookAngle().In(unit.AngularRadian), shot.Azimuth().In(unit.AngularRadian))

	accel := dragAccel.Add(gravity)
	if lat, ok := shot.Latitude(); ok {
		accel = accel.Add(coriolisAcceleration(lat.In(unit.AngularRadian), shot.Azimuth().In(unit.AngularRadian), s.vel))
	}

	return derivative{accel: accel, mach: mach, densityRatio: densityRatio, extrapolated: extrapolated}
}

// stepFunc advances a state by dt seconds given the per-shot constants
// needed to evaluate derivatives along the way.
type stepFunc func(s state, shot Shot, g, dt float64, cur solveCursors) (state, derivative)

func eulerStep(s state, shot Shot, g, dt float64, cur solveCursors) (state, derivative) {
	d := derive(s, shot, g, cur)
	next := state{
		pos: s.pos.Add(s.vel.MultiplyByConst(dt)),
		vel: s.vel.Add(d.accel.MultiplyByConst(dt)),
		t:   s.t + dt,
	}
	return next, d
}

// rk4Step is the classical 4th-order Runge-Kutta integrator applied to
// the coupled first-order system (pos' = vel, vel' = accel(pos, vel)).
func rk4Step(s state, shot Shot, g, dt float64, cur solveCursors) (state, derivative) {
	d1 := derive(s, shot, g, cur)
	k1p, k1v := s.vel, d1.accel

	s2 := state{pos: s.pos.Add(k1p.MultiplyByConst(dt / 2)), vel: s.vel.Add(k1v.MultiplyByConst(dt / 2)), t: s.t + dt/2}
	d2 := derive(s2, shot, g, cur)
	k2p, k2v := s2.vel, d2.accel

	s3 := state{pos: s.pos.Add(k2p.MultiplyByConst(dt / 2)), vel: s.vel.Add(k2v.MultiplyByConst(dt / 2)), t: s.t + dt/2}
	d3 := derive(s3, shot, g, cur)
	k3p, k3v := s3.vel, d3.accel

	s4 := state{pos: s.pos.Add(k3p.MultiplyByConst(dt)), vel: s.vel.Add(k3v.MultiplyByConst(dt)), t: s.t + dt}
	d4 := derive(s4, shot, g, cur)
	k4p, k4v := s4.vel, d4.accel

	sumP := k1p.Add(k2p.MultiplyByConst(2)).Add(k3p.MultiplyByConst(2)).Add(k4p).MultiplyByConst(dt / 6)
	sumV := k1v.Add(k2v.MultiplyByConst(2)).Add(k3v.MultiplyByConst(2)).Add(k4v).MultiplyByConst(dt / 6)

	next := state{pos: s.pos.Add(sumP), vel: s.vel.Add(sumV), t: s.t + dt}
	return next, d1
}

// verletStep is velocity Verlet: position advances on the current
// acceleration, velocity is corrected with the average of the
// acceleration before and after the position update.
func verletStep(s state, shot Shot, g, dt float64, cur solveCursors) (state, derivative) {
	d0 := derive(s, shot, g, cur)
	newPos := s.pos.Add(s.vel.MultiplyByConst(dt)).Add(d0.accel.MultiplyByConst(0.5 * dt * dt))
	predicted := state{pos: newPos, vel: s.vel.Add(d0.accel.MultiplyByConst(dt)), t: s.t + dt}
	d1 := derive(predicted, shot, g, cur)
	newVel := s.vel.Add(d0.accel.Add(d1.accel).MultiplyByConst(0.5 * dt))
	return state{pos: newPos, vel: newVel, t: s.t + dt}, d0
}

// maxStepHalvings bounds the bracket-halving Engine.locateCrossing does
// before falling back to linear interpolation to land a sub-step
// exactly on an event crossing (a zero, apex, Mach transition or
// scheduled range boundary).
const maxStepHalvings = 3
