package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilebound/components"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawDebug outlines tile and body boxes and prints the player's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tiles != nil {
		for _, t := range level.Tiles.Query(viewport(camera, screen)) {
			outline(screen, camera, t.Box, colornames.Lightgray)
		}
	}

	line := 0
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		box := body.Box()
		outline(screen, camera, box, colornames.Cyan)

		if level.Tiles != nil {
			if region, blocked := level.Tiles.BlockingRegion(box); blocked {
				outline(screen, camera, region, colornames.Red)
			}
		}

		state := components.State.Get(e)
		c := body.LastResult
		msg := fmt.Sprintf(
			"level %s  resets %d\npos %.1f,%.1f  vel %.1f,%.1f\n%s %s  double jump %t\ncontacts T%t B%t L%t R%t",
			level.Name, components.Player.Get(e).Resets,
			body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y,
			body.State(), state.CurrentState, body.DoubleJumpAvailable,
			c.Top, c.Bottom, c.Left, c.Right,
		)
		ebitenutil.DebugPrintAt(screen, msg, 4, 4+line*64)
		line++
	})
}

func outline(screen *ebiten.Image, camera *components.CameraData, b geom.Box, c color.Color) {
	x, y := worldToScreen(camera, screen, b.X, b.Y)
	vector.StrokeRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), 1, c, false)
}
