// Package kinematics moves a single platformer body through a static tile
// level: integration under gravity and friction, per-axis collision
// resolution, and the grounded/double-jump contact machine.
package kinematics

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/tilebound/shared/geom"
)

var (
	ErrNegativeDelta = errors.New("kinematics: dt must be finite and non-negative")
	ErrInvalidSize   = errors.New("kinematics: body size must be positive")
	ErrInvalidParams = errors.New("kinematics: invalid params")
	ErrSpawnOffGrid  = errors.New("kinematics: spawn lies outside an empty level")
)

// Obstacles answers overlap queries against static geometry. Results must
// come back in a fixed order so ties resolve the same way every step.
type Obstacles interface {
	Overlapping(box geom.Box) []geom.Box
}

// Level is the read-only geometry a body is spawned into.
type Level interface {
	Obstacles
	Len() int
	Bounds() geom.Box
}

// Params are the movement constants for one body. Gravity and Friction are
// applied once per step; speeds are in units per second.
type Params struct {
	Gravity       float64
	JumpSpeed     float64 // negative: up is -Y
	MovementSpeed float64
	Friction      float64
	// MaxFallSpeed clamps downward velocity; zero leaves it unbounded.
	MaxFallSpeed float64
	// ContactTolerance is how far below the feet a tile may sit and still
	// count as ground for a body that is not rising. Zero disables it.
	ContactTolerance float64
}

// Validate rejects params that would make the simulation diverge.
func (p Params) Validate() error {
	for _, v := range []float64{p.Gravity, p.JumpSpeed, p.MovementSpeed, p.Friction, p.MaxFallSpeed, p.ContactTolerance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidParams)
		}
	}
	if p.Gravity < 0 || p.Friction < 0 || p.MovementSpeed < 0 || p.MaxFallSpeed < 0 || p.ContactTolerance < 0 {
		return fmt.Errorf("%w: gravity, friction, speeds and tolerance must be non-negative", ErrInvalidParams)
	}
	if p.JumpSpeed > 0 {
		return fmt.Errorf("%w: jump speed must point up (<= 0)", ErrInvalidParams)
	}
	return nil
}

// ContactState is the grounded/airborne half of the jump machine.
type ContactState int

const (
	Airborne ContactState = iota
	Grounded
)

func (s ContactState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	default:
		return "airborne"
	}
}

// CollisionResult reports which sides of the body were blocked this step.
type CollisionResult struct {
	Top, Bottom, Left, Right bool
	// Embedded is set when the body started the step inside geometry and
	// had to be pushed out by the fallback rule.
	Embedded bool
}

// Body is the dynamic state of one player. Position is the authoritative
// top-left corner; the collision box is always derived from it.
type Body struct {
	Position     geom.Vector
	Velocity     geom.Vector
	Acceleration geom.Vector
	Width        float64
	Height       float64

	Grounded            bool
	DoubleJumpAvailable bool
	FacingLeft          bool
	Moving              bool

	// Contacts is the result of the last step that advanced time.
	Contacts CollisionResult
	Params   Params
}

// NewBody spawns a body at (x, y) in the air with no double jump.
func NewBody(level Level, x, y, w, h float64, params Params) (*Body, error) {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, ErrInvalidSize
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	b := &Body{
		Position: geom.Vector{X: x, Y: y},
		Width:    w,
		Height:   h,
		Params:   params,
	}

	if level != nil && level.Len() == 0 && !level.Bounds().Contains(b.Box()) {
		return nil, fmt.Errorf("%w: box %v, bounds %v", ErrSpawnOffGrid, b.Box(), level.Bounds())
	}

	return b, nil
}

// Box is the body's collision box at the rounded position.
func (b *Body) Box() geom.Box {
	return geom.Box{X: b.Position.X, Y: b.Position.Y, W: b.Width, H: b.Height}.Rounded()
}

func (b *Body) State() ContactState {
	if b.Grounded {
		return Grounded
	}
	return Airborne
}
