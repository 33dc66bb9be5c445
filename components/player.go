package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64
	// Resets counts respawns triggered by the reset action or a level reload.
	Resets int
}

var Player = donburi.NewComponentType[PlayerData]()
