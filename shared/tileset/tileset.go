// Package tileset owns the static obstacle boxes of a level and answers
// overlap queries against them. Broad phase runs on a resolv.Space; the
// narrow phase is the strict AABB test from geom.
package tileset

import (
	"errors"
	"math"
	"sort"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/solarlune/resolv"
)

const tagSolid = "solid"

var ErrInvalidTileSize = errors.New("tileset: tile size must be positive")

// Tile is one immovable collision box. Index is its position in build order.
type Tile struct {
	geom.Box
	Index int
	Kind  string
}

// Sides reports which edges of a box are in contact with a tile.
type Sides struct {
	Top, Bottom, Left, Right bool
}

func (s Sides) Any() bool { return s.Top || s.Bottom || s.Left || s.Right }

// Set is the read-only tile collection for one level. Query temporarily adds
// a probe object to the underlying space, so a Set must not be queried from
// more than one goroutine at a time.
type Set struct {
	tiles    []Tile
	space    *resolv.Space
	spaceW   float64
	spaceH   float64
	origin   geom.Vector
	bounds   geom.Box
	tileSize float64
}

// New builds a set from solid rects. bounds is the playable area in world
// coordinates; it is grown to cover every tile. cellSize is the broad-phase
// cell edge, normally the tile size.
func New(rects []leveldata.SolidRect, bounds geom.Box, cellSize float64) (*Set, error) {
	if cellSize <= 0 || math.IsNaN(cellSize) {
		return nil, ErrInvalidTileSize
	}

	tiles := make([]Tile, 0, len(rects))
	for i, r := range rects {
		box, err := geom.NewBox(r.X, r.Y, r.W, r.H)
		if err != nil {
			return nil, err
		}
		bounds = bounds.Union(box)
		tiles = append(tiles, Tile{Box: box, Index: i, Kind: r.Kind})
	}

	cell := int(math.Ceil(cellSize))
	width := int(math.Ceil(bounds.W)) + cell
	height := int(math.Ceil(bounds.H)) + cell

	s := &Set{
		tiles:    tiles,
		space:    resolv.NewSpace(width, height, cell, cell),
		spaceW:   float64(width),
		spaceH:   float64(height),
		origin:   geom.Vector{X: bounds.X, Y: bounds.Y},
		bounds:   bounds,
		tileSize: cellSize,
	}

	for i, t := range tiles {
		local := t.Translate(-s.origin.X, -s.origin.Y)
		obj := resolv.NewObject(local.X, local.Y, local.W, local.H, tagSolid)
		obj.Data = i
		s.space.Add(obj)
	}

	return s, nil
}

// FromCollisionData builds a set covering the level's map area.
func FromCollisionData(data *leveldata.CollisionData) (*Set, error) {
	if data.TileSize <= 0 {
		return nil, ErrInvalidTileSize
	}
	bounds := geom.Box{X: data.OriginX, Y: data.OriginY, W: data.MapWidth, H: data.MapHeight}
	return New(data.SolidRects, bounds, data.TileSize)
}

func (s *Set) Len() int          { return len(s.tiles) }
func (s *Set) Bounds() geom.Box  { return s.bounds }
func (s *Set) TileSize() float64 { return s.tileSize }

// Tiles returns a copy of every tile in build order.
func (s *Set) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Query returns every tile strictly overlapping box, in build order. Each
// call returns a fresh slice.
func (s *Set) Query(box geom.Box) []Tile {
	var out []Tile
	for _, i := range s.candidates(box) {
		if geom.Overlaps(box, s.tiles[i].Box) {
			out = append(out, s.tiles[i])
		}
	}
	return out
}

// Overlapping is Query without the tile metadata.
func (s *Set) Overlapping(box geom.Box) []geom.Box {
	tiles := s.Query(box)
	if len(tiles) == 0 {
		return nil
	}
	out := make([]geom.Box, len(tiles))
	for i, t := range tiles {
		out[i] = t.Box
	}
	return out
}

// BlockingRegion summarises every tile overlapping box as one region.
func (s *Set) BlockingRegion(box geom.Box) (geom.Box, bool) {
	return geom.Intersection(box, s.Overlapping(box))
}

// Touching reports the sides of box that lie within tolerance of a tile
// edge while overlapping that tile on the other axis.
func (s *Set) Touching(box geom.Box, tolerance float64) Sides {
	var sides Sides
	probe := geom.Box{
		X: box.X - tolerance,
		Y: box.Y - tolerance,
		W: box.W + 2*tolerance,
		H: box.H + 2*tolerance,
	}
	for _, i := range s.candidates(probe) {
		t := s.tiles[i]
		if box.OverlapsX(t.Box) {
			if d := t.Top() - box.Bottom(); d >= -tolerance && d <= tolerance {
				sides.Bottom = true
			}
			if d := box.Top() - t.Bottom(); d >= -tolerance && d <= tolerance {
				sides.Top = true
			}
		}
		if box.OverlapsY(t.Box) {
			if d := t.Left() - box.Right(); d >= -tolerance && d <= tolerance {
				sides.Right = true
			}
			if d := box.Left() - t.Right(); d >= -tolerance && d <= tolerance {
				sides.Left = true
			}
		}
	}
	return sides
}

// candidates returns the sorted, de-duplicated indices of tiles sharing a
// broad-phase cell with box.
func (s *Set) candidates(box geom.Box) []int {
	if len(s.tiles) == 0 {
		return nil
	}

	local := box.Translate(-s.origin.X, -s.origin.Y)
	x0 := math.Max(local.Left(), 0)
	y0 := math.Max(local.Top(), 0)
	x1 := math.Min(local.Right(), s.spaceW)
	y1 := math.Min(local.Bottom(), s.spaceH)
	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	// resolv maps an object's far edge to the cell holding X+W-1, so a box
	// reaching less than one unit into a cell would skip it. The extra unit
	// may add candidates; the narrow phase in Query drops them.
	probe := resolv.NewObject(x0, y0, x1-x0+1, y1-y0+1)
	s.space.Add(probe)
	check := probe.Check(0, 0, tagSolid)
	s.space.Remove(probe)
	if check == nil {
		return nil
	}

	seen := make(map[int]struct{}, len(check.Objects))
	out := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
