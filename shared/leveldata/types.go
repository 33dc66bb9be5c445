// Package leveldata turns level descriptions (character grids and TMX maps)
// into plain collision data. It has no dependencies on ebitengine, donburi,
// or resolv.
package leveldata

import "errors"

var (
	ErrInvalidTileSize = errors.New("leveldata: tile size must be positive")
	ErrEmptyLevel      = errors.New("leveldata: level has no rows")
)

// CollisionData holds all collision-relevant data parsed from a level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    float64
	MapHeight   float64
	TileSize    float64
	// World coordinates of the map's top-left corner. Grid levels are
	// shifted one tile up and left so the grid's border sits off screen.
	OriginX, OriginY float64
	// Source is the slash path the data was loaded from, relative to the
	// filesystem passed to Load.
	Source string
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
	Kind       string // "dirt", "stone", "solid" for TMX tiles
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// SpawnPosition returns the top-left corner for a w×h body standing in the
// first spawn cell: centred horizontally with its feet on the cell's bottom
// edge. Levels without a spawn marker use the first cell inside the border.
func (d *CollisionData) SpawnPosition(w, h float64) (float64, float64) {
	cellX, cellY := d.OriginX+d.TileSize, d.OriginY+d.TileSize
	if len(d.SpawnPoints) > 0 {
		cellX, cellY = d.SpawnPoints[0].X, d.SpawnPoints[0].Y
	}
	return cellX + (d.TileSize-w)/2, cellY + d.TileSize - h
}
