package factory

import (
	"log"

	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/kinematics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the level's first spawn point.
func CreatePlayer(ecs *ecs.ECS, level *components.LevelData) (*donburi.Entry, error) {
	x, y := level.Data.SpawnPosition(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	body, err := kinematics.NewBody(level.Tiles, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, cfg.Physics.Params())
	if err != nil {
		return nil, err
	}
	warnIfEmbedded(level, body)

	player := archetypes.Player.Spawn(ecs)
	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnY: y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Fall,
		PreviousState: cfg.StateNone,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
	})
	return player, nil
}

// RespawnPlayer puts the player back on the level's spawn point with a
// fresh body. Called on reset and after a level reload.
func RespawnPlayer(player *donburi.Entry, level *components.LevelData) error {
	x, y := level.Data.SpawnPosition(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	body, err := kinematics.NewBody(level.Tiles, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, cfg.Physics.Params())
	if err != nil {
		return err
	}
	warnIfEmbedded(level, body)

	data := components.Player.Get(player)
	data.SpawnX, data.SpawnY = x, y
	data.Resets++

	components.Body.SetValue(player, components.BodyData{Body: body})
	components.SquashStretch.SetValue(player, components.SquashStretchData{ScaleX: 1, ScaleY: 1})
	return nil
}

func warnIfEmbedded(level *components.LevelData, body *kinematics.Body) {
	if region, blocked := level.Tiles.BlockingRegion(body.Box()); blocked {
		log.Printf("Warning: spawn box %v in level %q overlaps tiles at %v", body.Box(), level.Name, region)
	}
}
