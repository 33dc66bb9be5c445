// Package geom holds the axis-aligned box and vector types shared by the
// level loader, the tile set and the kinematics core.
package geom

import (
	"errors"
	"math"
)

var ErrNegativeSize = errors.New("geom: box width and height must be non-negative")

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Box is an axis-aligned box with its origin at the top-left corner.
// Boxes are values; every helper returns a new Box.
type Box struct {
	X, Y, W, H float64
}

// NewBox validates the size and returns the box.
func NewBox(x, y, w, h float64) (Box, error) {
	if w < 0 || h < 0 || math.IsNaN(w) || math.IsNaN(h) {
		return Box{}, ErrNegativeSize
	}
	return Box{X: x, Y: y, W: w, H: h}, nil
}

func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y + b.H }

func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

func (b Box) Translate(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W, H: b.H}
}

// WithBottom moves the box vertically so its bottom edge sits at y.
func (b Box) WithBottom(y float64) Box { return Box{X: b.X, Y: y - b.H, W: b.W, H: b.H} }
func (b Box) WithTop(y float64) Box    { return Box{X: b.X, Y: y, W: b.W, H: b.H} }
func (b Box) WithLeft(x float64) Box   { return Box{X: x, Y: b.Y, W: b.W, H: b.H} }
func (b Box) WithRight(x float64) Box  { return Box{X: x - b.W, Y: b.Y, W: b.W, H: b.H} }

// Rounded snaps the origin to the nearest integer coordinate.
func (b Box) Rounded() Box {
	return Box{X: math.Round(b.X), Y: math.Round(b.Y), W: b.W, H: b.H}
}

// Union returns the smallest box enclosing both boxes.
func (b Box) Union(o Box) Box {
	x0 := math.Min(b.X, o.X)
	y0 := math.Min(b.Y, o.Y)
	x1 := math.Max(b.Right(), o.Right())
	y1 := math.Max(b.Bottom(), o.Bottom())
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether o lies entirely inside b. Shared edges count.
func (b Box) Contains(o Box) bool {
	return o.X >= b.X && o.Y >= b.Y && o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

func (b Box) Overlaps(o Box) bool { return Overlaps(b, o) }

// OverlapsX reports a strict overlap of the horizontal extents only.
func (b Box) OverlapsX(o Box) bool {
	return b.X < o.Right() && o.X < b.Right()
}

// OverlapsY reports a strict overlap of the vertical extents only.
func (b Box) OverlapsY(o Box) bool {
	return b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Overlaps reports whether the two boxes intersect on both axes. Touching
// edges are not an overlap.
func Overlaps(a, b Box) bool {
	return a.OverlapsX(b) && a.OverlapsY(b)
}

// Intersection summarises every box in boxes that overlaps query as a
// single region: the edges are the largest near edges and the smallest far
// edges, clipped to query. It returns false when nothing overlaps. Disjoint
// overlapping boxes collapse to a zero-sized region rather than a negative one.
func Intersection(query Box, boxes []Box) (Box, bool) {
	x0, y0 := query.Left(), query.Top()
	x1, y1 := query.Right(), query.Bottom()
	found := false
	for _, b := range boxes {
		if !Overlaps(query, b) {
			continue
		}
		found = true
		x0 = math.Max(x0, b.Left())
		y0 = math.Max(y0, b.Top())
		x1 = math.Min(x1, b.Right())
		y1 = math.Min(y1, b.Bottom())
	}
	if !found {
		return Box{}, false
	}
	return Box{X: x0, Y: y0, W: math.Max(0, x1-x0), H: math.Max(0, y1-y0)}, true
}
