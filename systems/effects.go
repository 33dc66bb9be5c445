package systems

import (
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartLandingSquash flattens the sprite and tweens it back to normal scale.
func StartLandingSquash(s *components.SquashStretchData) {
	d := float32(cfg.SquashStretch.Duration)
	s.ScaleX = cfg.SquashStretch.LandScaleX
	s.ScaleY = cfg.SquashStretch.LandScaleY
	s.TweenX = gween.New(float32(s.ScaleX), 1, d, ease.OutQuad)
	s.TweenY = gween.New(float32(s.ScaleY), 1, d, ease.OutQuad)
}

// UpdateSquashStretch advances running squash tweens by one tick.
func UpdateSquashStretch(ecs *ecs.ECS) {
	dt := float32(1 / float64(cfg.C.TPS))
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		advanceSquash(components.SquashStretch.Get(e), dt)
	})
}

func advanceSquash(s *components.SquashStretchData, dt float32) {
	if s.TweenX != nil {
		x, done := s.TweenX.Update(dt)
		s.ScaleX = float64(x)
		if done {
			s.TweenX = nil
		}
	}
	if s.TweenY != nil {
		y, done := s.TweenY.Update(dt)
		s.ScaleY = float64(y)
		if done {
			s.TweenY = nil
		}
	}
}
