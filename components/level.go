package components

import (
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/tileset"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name  string
	Path  string
	Data  *leveldata.CollisionData
	Tiles *tileset.Set
	// Names lists every level found in the level directory, sorted.
	Names []string
	Index int
}

var Level = donburi.NewComponentType[LevelData]()
