package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation after a landing.
// Both tweens run from the landing scale back to 1.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween // nil when at rest
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
