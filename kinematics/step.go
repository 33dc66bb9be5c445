package kinematics

import "math"

// Step advances body by dt seconds against level: jump, integrate, resolve,
// then update the contact state. A dt of zero changes nothing and returns
// the previous contacts; a negative or non-finite dt is rejected.
func Step(body *Body, level Obstacles, in Intent, dt float64) (CollisionResult, error) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return CollisionResult{}, ErrNegativeDelta
	}
	if dt == 0 {
		return body.Contacts, nil
	}

	if in.Jump {
		body.jump()
	}

	prev := body.Box()
	tent := body.integrate(in, dt)
	res := body.resolve(level, prev, tent)
	body.land(res)
	body.Contacts = res

	return res, nil
}
