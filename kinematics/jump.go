package kinematics

// jump applies the jump command. A grounded body always jumps and earns one
// air jump; an airborne body spends its air jump if it has one.
func (b *Body) jump() {
	switch {
	case b.Grounded:
		b.Grounded = false
		b.DoubleJumpAvailable = true
	case b.DoubleJumpAvailable:
		b.DoubleJumpAvailable = false
	default:
		return
	}
	b.Velocity.Y = b.Params.JumpSpeed
}

// land updates the contact state from the resolver's bottom flag. Leaving
// the ground without jumping keeps one air jump in hand.
func (b *Body) land(res CollisionResult) {
	if res.Bottom {
		b.Grounded = true
		return
	}
	if b.Grounded {
		b.Grounded = false
		b.DoubleJumpAvailable = true
	}
}
