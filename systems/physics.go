package systems

import (
	"log"

	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/kinematics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps every body one tick against the current level.
func UpdatePhysics(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tiles == nil {
		return
	}
	dt := 1 / float64(cfg.C.TPS)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		wasGrounded := body.Grounded

		res, err := kinematics.Step(body.Body, level.Tiles, body.Intent, dt)
		if err != nil {
			log.Printf("Warning: physics step failed: %v", err)
			return
		}
		if res.Embedded {
			log.Printf("Warning: body pushed out of level %q geometry at %v", level.Name, body.Box())
		}

		body.LastResult = res
		body.Landed = !wasGrounded && body.Grounded
		// Jump is edge-triggered; never replay it on the next tick.
		body.Intent.Jump = false

		if body.Landed && e.HasComponent(components.SquashStretch) {
			StartLandingSquash(components.SquashStretch.Get(e))
		}
	})
}
