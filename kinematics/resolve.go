package kinematics

import (
	"math"

	"github.com/automoto/tilebound/shared/geom"
)

// edgeEpsilon absorbs float noise when comparing an edge against the edge it
// started flush with.
const edgeEpsilon = 1e-9

// roundSlack is how far a box may sit inside the face it was resolved
// against on the following step. Box rounds the position, so a body with a
// fractional size that was snapped flush comes back overlapping by up to half
// a unit.
const roundSlack = 0.5

// resolve moves the tentative box out of the level, vertical axis first, and
// writes the corrected axes back into the body. prev is the box before
// integration; tiles between prev and tent are considered so a fast body
// cannot skip over a thin obstacle.
func (b *Body) resolve(level Obstacles, prev, tent geom.Box) CollisionResult {
	var res CollisionResult
	box := tent
	rising := b.Velocity.Y < 0

	tiles := level.Overlapping(prev.Union(tent))

	if len(tiles) > 0 {
		box, res = resolveVertical(tiles, prev, box, rising, res)
		box, res = resolveHorizontal(tiles, prev, box, b.Velocity.X, res)
		box, res = pushOut(tiles, box, rising, res)
	}

	if !res.Bottom && !rising && b.Params.ContactTolerance > 0 {
		if top, ok := restingTop(level, box, b.Params.ContactTolerance); ok {
			box = box.WithBottom(top)
			res.Bottom = true
		}
	}

	if res.Top || res.Bottom {
		b.Velocity.Y = 0
		b.Position.Y = box.Y
	}
	if res.Left || res.Right {
		b.Velocity.X = 0
		b.Position.X = box.X
	}
	return res
}

type face int

const (
	faceTop face = iota
	faceBottom
	faceLeft
	faceRight
)

// faceCovered reports whether the given face of t is shared with a
// neighbouring tile over the whole span [lo, hi]. Such a face is internal to
// a run of tiles (the seam inside a wall or floor) and cannot be hit.
func faceCovered(tiles []geom.Box, t geom.Box, f face, lo, hi float64) bool {
	for _, n := range tiles {
		var flush bool
		var from, to float64
		switch f {
		case faceTop:
			flush = math.Abs(n.Bottom()-t.Top()) <= edgeEpsilon
			from, to = n.Left(), n.Right()
		case faceBottom:
			flush = math.Abs(n.Top()-t.Bottom()) <= edgeEpsilon
			from, to = n.Left(), n.Right()
		case faceLeft:
			flush = math.Abs(n.Right()-t.Left()) <= edgeEpsilon
			from, to = n.Top(), n.Bottom()
		case faceRight:
			flush = math.Abs(n.Left()-t.Right()) <= edgeEpsilon
			from, to = n.Top(), n.Bottom()
		}
		if flush && from <= lo+edgeEpsilon && to >= hi-edgeEpsilon {
			return true
		}
	}
	return false
}

func spanX(a, b geom.Box) (float64, float64) {
	return math.Max(a.Left(), b.Left()), math.Min(a.Right(), b.Right())
}

func spanY(a, b geom.Box) (float64, float64) {
	return math.Max(a.Top(), b.Top()), math.Min(a.Bottom(), b.Bottom())
}

// resolveVertical snaps the box onto the first tile it met along Y. Only
// tiles that were beyond the leading edge before the step (within
// roundSlack), with an exposed face toward the body, qualify; among those
// the nearest one wins.
func resolveVertical(tiles []geom.Box, prev, box geom.Box, rising bool, res CollisionResult) (geom.Box, CollisionResult) {
	if rising {
		best := math.Inf(-1)
		for _, t := range tiles {
			if !box.OverlapsX(t) || t.Bottom() > prev.Top()+roundSlack || t.Bottom() <= box.Top() {
				continue
			}
			if lo, hi := spanX(box, t); faceCovered(tiles, t, faceBottom, lo, hi) {
				continue
			}
			best = math.Max(best, t.Bottom())
		}
		if !math.IsInf(best, -1) {
			box = box.WithTop(best)
			res.Top = true
		}
		return box, res
	}

	best := math.Inf(1)
	for _, t := range tiles {
		if !box.OverlapsX(t) || t.Top() < prev.Bottom()-roundSlack || t.Top() >= box.Bottom() {
			continue
		}
		if lo, hi := spanX(box, t); faceCovered(tiles, t, faceTop, lo, hi) {
			continue
		}
		best = math.Min(best, t.Top())
	}
	if !math.IsInf(best, 1) {
		box = box.WithBottom(best)
		res.Bottom = true
	}
	return box, res
}

// resolveHorizontal runs on the vertically corrected box, so a body that
// landed on a tile corner is not also pushed sideways by it.
func resolveHorizontal(tiles []geom.Box, prev, box geom.Box, vx float64, res CollisionResult) (geom.Box, CollisionResult) {
	switch {
	case vx > 0:
		best := math.Inf(1)
		for _, t := range tiles {
			if !box.OverlapsY(t) || t.Left() < prev.Right()-roundSlack || t.Left() >= box.Right() {
				continue
			}
			if lo, hi := spanY(box, t); faceCovered(tiles, t, faceLeft, lo, hi) {
				continue
			}
			best = math.Min(best, t.Left())
		}
		if !math.IsInf(best, 1) {
			box = box.WithRight(best)
			res.Right = true
		}
	case vx < 0:
		best := math.Inf(-1)
		for _, t := range tiles {
			if !box.OverlapsY(t) || t.Right() > prev.Left()+roundSlack || t.Right() <= box.Left() {
				continue
			}
			if lo, hi := spanY(box, t); faceCovered(tiles, t, faceRight, lo, hi) {
				continue
			}
			best = math.Max(best, t.Right())
		}
		if !math.IsInf(best, -1) {
			box = box.WithLeft(best)
			res.Left = true
		}
	}
	return box, res
}

// pushOut handles a box that is still inside a tile after both passes,
// which only happens when it started the step embedded. Each remaining tile
// is escaped along its shallowest side, preferring the vertical axis on a
// tie and the direction opposite to travel.
func pushOut(tiles []geom.Box, box geom.Box, rising bool, res CollisionResult) (geom.Box, CollisionResult) {
	for _, t := range tiles {
		if !geom.Overlaps(box, t) {
			continue
		}
		res.Embedded = true

		up := box.Bottom() - t.Top()
		down := t.Bottom() - box.Top()
		left := box.Right() - t.Left()
		right := t.Right() - box.Left()

		vertical := math.Min(up, down)
		horizontal := math.Min(left, right)

		if vertical <= horizontal {
			if up < down || (up == down && !rising) {
				box = box.WithBottom(t.Top())
				res.Bottom = true
			} else {
				box = box.WithTop(t.Bottom())
				res.Top = true
			}
			continue
		}
		if left <= right {
			box = box.WithRight(t.Left())
			res.Right = true
		} else {
			box = box.WithLeft(t.Right())
			res.Left = true
		}
	}
	return box, res
}

// restingTop finds ground within tolerance below the feet.
func restingTop(level Obstacles, box geom.Box, tolerance float64) (float64, bool) {
	probe := geom.Box{X: box.X, Y: box.Bottom(), W: box.W, H: tolerance}
	best := math.Inf(1)
	for _, t := range level.Overlapping(probe) {
		if t.Top() < box.Bottom()-edgeEpsilon {
			continue
		}
		best = math.Min(best, t.Top())
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
