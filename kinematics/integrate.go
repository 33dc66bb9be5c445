package kinematics

import (
	"github.com/automoto/tilebound/shared/gamemath"
	"github.com/automoto/tilebound/shared/geom"
)

// Intent is the input for one step. Jump is edge-triggered: the caller sets
// it only on the step the button went down.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// integrate advances velocity and position for one step and returns the
// tentative box. The order is fixed: gravity, horizontal intent, ground
// friction, position.
func (b *Body) integrate(in Intent, dt float64) geom.Box {
	p := b.Params

	b.Acceleration = geom.Vector{}
	if !b.Grounded {
		b.Acceleration.Y = p.Gravity
		b.Velocity.Y = gamemath.ClampFall(b.Velocity.Y+p.Gravity, p.MaxFallSpeed)
	}

	// Both directions held cancel out.
	switch {
	case in.MoveLeft && !in.MoveRight:
		b.Velocity.X = -p.MovementSpeed
		b.FacingLeft = true
		b.Moving = true
	case in.MoveRight && !in.MoveLeft:
		b.Velocity.X = p.MovementSpeed
		b.FacingLeft = false
		b.Moving = true
	default:
		b.Moving = false
	}

	if b.Grounded && !b.Moving {
		before := b.Velocity.X
		b.Velocity.X = gamemath.ApplyFriction(before, p.Friction)
		b.Acceleration.X = b.Velocity.X - before
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	return b.Box()
}
