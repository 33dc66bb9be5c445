package components

import (
	"github.com/automoto/tilebound/kinematics"
	"github.com/yohamta/donburi"
)

// BodyData wraps the kinematic body stepped by the physics system.
type BodyData struct {
	*kinematics.Body
	// Intent is written by the player system and consumed by physics.
	Intent     kinematics.Intent
	LastResult kinematics.CollisionResult
	// Landed is true only on the step the body touched down.
	Landed bool
}

var Body = donburi.NewComponentType[BodyData]()
