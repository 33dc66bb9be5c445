// Package headless steps a single body through a level without a window,
// driven by a scripted intent sequence.
package headless

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/tilebound/kinematics"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/tileset"
)

var ErrInvalidTickRate = errors.New("headless: tick rate must be positive")

// Options configures the simulated body.
type Options struct {
	Params        kinematics.Params
	Width, Height float64
	TickRate      int
	// Quiet turns off contact transition logging.
	Quiet bool
}

// Frame is the body's state after one step.
type Frame struct {
	Step     int
	Position geom.Vector
	Velocity geom.Vector
	State    kinematics.ContactState
	Contacts kinematics.CollisionResult
}

// Runner plays a script against one level.
type Runner struct {
	body   *kinematics.Body
	tiles  *tileset.Set
	script Script
	dt     float64
	step   int
	quiet  bool
	frames []Frame
}

// NewRunner spawns a body at the level's first spawn point.
func NewRunner(data *leveldata.CollisionData, script Script, opts Options) (*Runner, error) {
	if opts.TickRate <= 0 {
		return nil, ErrInvalidTickRate
	}
	tiles, err := tileset.FromCollisionData(data)
	if err != nil {
		return nil, fmt.Errorf("build tiles: %w", err)
	}

	x, y := data.SpawnPosition(opts.Width, opts.Height)
	body, err := kinematics.NewBody(tiles, x, y, opts.Width, opts.Height, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("spawn body: %w", err)
	}
	if region, blocked := tiles.BlockingRegion(body.Box()); blocked {
		log.Printf("Warning: spawn box %v overlaps tiles at %v", body.Box(), region)
	}

	return &Runner{
		body:   body,
		tiles:  tiles,
		script: script,
		dt:     1 / float64(opts.TickRate),
		quiet:  opts.Quiet,
	}, nil
}

func (r *Runner) Body() *kinematics.Body { return r.body }

// Frames returns every frame stepped so far.
func (r *Runner) Frames() []Frame { return r.frames }

// Done reports whether the script has been played to the end.
func (r *Runner) Done() bool { return r.step >= r.script.Len() }

// Tick advances one step. ok is false once the script has ended.
func (r *Runner) Tick() (f Frame, ok bool, err error) {
	in, ok := r.script.At(r.step)
	if !ok {
		return Frame{}, false, nil
	}

	before := r.body.State()
	res, err := kinematics.Step(r.body, r.tiles, in, r.dt)
	if err != nil {
		return Frame{}, false, err
	}

	f = Frame{
		Step:     r.step,
		Position: r.body.Position,
		Velocity: r.body.Velocity,
		State:    r.body.State(),
		Contacts: res,
	}
	if !r.quiet {
		if f.State != before {
			log.Printf("step %d: %s -> %s at %.1f,%.1f", f.Step, before, f.State, f.Position.X, f.Position.Y)
		}
		if res.Embedded {
			log.Printf("Warning: step %d: body pushed out of geometry at %v", f.Step, r.body.Box())
		}
	}

	r.frames = append(r.frames, f)
	r.step++
	return f, true, nil
}

// RunSteps advances up to n steps, stopping early at the end of the script,
// and returns the frames produced.
func (r *Runner) RunSteps(n int) ([]Frame, error) {
	start := len(r.frames)
	for i := 0; i < n; i++ {
		_, ok, err := r.Tick()
		if err != nil {
			return r.frames[start:], err
		}
		if !ok {
			break
		}
	}
	return r.frames[start:], nil
}
