package systems

import (
	"math"

	"github.com/automoto/tilebound/components"
	"github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tiles == nil {
		return
	}

	targetX, targetY := cameraTarget(body.Box(), level.Tiles.Bounds(), float64(config.C.Width), float64(config.C.Height))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	body := components.Body.Get(playerEntry)
	level := components.Level.Get(levelEntry)
	camera.Position.X, camera.Position.Y = cameraTarget(body.Box(), level.Tiles.Bounds(), float64(config.C.Width), float64(config.C.Height))
}

// cameraTarget follows the box center and keeps the view inside bounds.
// On an axis where the level is smaller than the screen the view is centered
// on the level.
func cameraTarget(box, bounds geom.Box, screenW, screenH float64) (float64, float64) {
	x := box.X + box.W/2
	y := box.Y + box.H/2
	return clampAxis(x, bounds.Left(), bounds.Right(), screenW), clampAxis(y, bounds.Top(), bounds.Bottom(), screenH)
}

func clampAxis(v, lo, hi, screen float64) float64 {
	if hi-lo <= screen {
		return (lo + hi) / 2
	}
	return math.Max(lo+screen/2, math.Min(hi-screen/2, v))
}
