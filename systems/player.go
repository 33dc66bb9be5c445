package systems

import (
	"log"

	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this frame's input into the player's step intent and
// handles the reset action.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if GetAction(input, cfg.ActionReset).JustPressed {
			if err := factory.RespawnPlayer(playerEntry, level); err != nil {
				log.Printf("Warning: could not respawn player: %v", err)
			}
			return
		}

		body := components.Body.Get(playerEntry)
		body.Intent = IntentFromInput(input)
	})
}
