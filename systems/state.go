package systems

import (
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/kinematics"
	"github.com/automoto/tilebound/shared/tileset"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives the drawn movement state from each body after
// physics has run.
func UpdateStates(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	components.State.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		state := components.State.Get(e)

		var sides tileset.Sides
		if level.Tiles != nil && !body.Grounded {
			sides = level.Tiles.Touching(body.Box(), cfg.Level.WallProbe)
		}

		state.PreviousState = state.CurrentState
		state.CurrentState = stateFor(body.Body, sides)
		if state.CurrentState != state.PreviousState {
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}
	})
}

// stateFor picks the movement state for a body given the tile sides its box
// is touching.
func stateFor(body *kinematics.Body, sides tileset.Sides) cfg.StateID {
	if body.Grounded {
		if body.Moving {
			return cfg.Running
		}
		return cfg.Idle
	}
	if sides.Left || sides.Right {
		return cfg.WallContact
	}
	if body.Velocity.Y < 0 {
		if !body.DoubleJumpAvailable {
			return cfg.DoubleJump
		}
		return cfg.Jump
	}
	return cfg.Fall
}
