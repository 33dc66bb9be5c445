package systems

import (
	"image/color"

	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

var stateColors = map[cfg.StateID]color.RGBA{
	cfg.Idle:        colornames.Royalblue,
	cfg.Running:     colornames.Dodgerblue,
	cfg.Jump:        colornames.Orange,
	cfg.DoubleJump:  colornames.Orangered,
	cfg.Fall:        colornames.Gold,
	cfg.WallContact: colornames.Mediumpurple,
}

// DrawPlayer renders each player as a filled box, squashed around its feet.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		box := body.Box()
		if e.HasComponent(components.SquashStretch) {
			s := components.SquashStretch.Get(e)
			box = squashed(box, s.ScaleX, s.ScaleY)
		}

		c := colornames.White
		if e.HasComponent(components.State) {
			if sc, ok := stateColors[components.State.Get(e).CurrentState]; ok {
				c = sc
			}
		}

		x, y := worldToScreen(camera, screen, box.X, box.Y)
		vector.FillRect(screen, float32(x), float32(y), float32(box.W), float32(box.H), c, false)

		// Facing marker
		eyeX := x + box.W - 6
		if body.FacingLeft {
			eyeX = x + 2
		}
		vector.FillRect(screen, float32(eyeX), float32(y+4), 4, 4, colornames.White, false)
	})
}

// squashed scales box about the midpoint of its bottom edge.
func squashed(box geom.Box, sx, sy float64) geom.Box {
	w, h := box.W*sx, box.H*sy
	return geom.Box{
		X: box.X + (box.W-w)/2,
		Y: box.Bottom() - h,
		W: w,
		H: h,
	}
}

// viewport is the world-space rectangle visible on screen.
func viewport(camera *components.CameraData, screen *ebiten.Image) geom.Box {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return geom.Box{
		X: camera.Position.X - width/2,
		Y: camera.Position.Y - height/2,
		W: width,
		H: height,
	}
}

func worldToScreen(camera *components.CameraData, screen *ebiten.Image, x, y float64) (float64, float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return x - camera.Position.X + float64(width)/2, y - camera.Position.Y + float64(height)/2
}
