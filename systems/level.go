package systems

import (
	"image/color"
	"log"
	"path/filepath"

	"github.com/automoto/tilebound/components"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/systems/factory"
	"github.com/automoto/tilebound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

var tileColors = map[string]color.RGBA{
	"dirt":  colornames.Saddlebrown,
	"stone": colornames.Slategray,
}

func tileColor(kind string) color.RGBA {
	if c, ok := tileColors[kind]; ok {
		return c
	}
	return colornames.Dimgray
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
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
	if level.Tiles == nil {
		return
	}

	screen.Fill(colornames.Skyblue)

	view := viewport(camera, screen)
	for _, t := range level.Tiles.Query(view) {
		x, y := worldToScreen(camera, screen, t.X, t.Y)
		vector.FillRect(screen, float32(x), float32(y), float32(t.W), float32(t.H), tileColor(t.Kind), false)
	}
}

// NewUpdateLevelReload creates a system that reloads the current level when
// its file changes on disk. The player is respawned after a reload.
func NewUpdateLevelReload(w *leveldata.Watcher) ecs.System {
	return func(e *ecs.ECS) {
		changed := drainChanged(w)
		if len(changed) == 0 {
			return
		}

		levelEntry, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		level := components.Level.Get(levelEntry)
		if level.Path == "" || !changed[filepath.Clean(level.Path)] {
			return
		}

		if err := factory.ReloadLevel(level); err != nil {
			log.Printf("Warning: level reload failed, keeping previous tiles: %v", err)
			return
		}
		log.Printf("Reloaded level %q: %d tiles", level.Name, level.Tiles.Len())

		if playerEntry, ok := tags.Player.First(e.World); ok {
			if err := factory.RespawnPlayer(playerEntry, level); err != nil {
				log.Printf("Warning: could not respawn player after reload: %v", err)
			}
		}
	}
}

// drainChanged collects every pending change without blocking.
func drainChanged(w *leveldata.Watcher) map[string]bool {
	var changed map[string]bool
	for {
		select {
		case p, ok := <-w.Events:
			if !ok {
				return changed
			}
			if changed == nil {
				changed = make(map[string]bool)
			}
			changed[filepath.Clean(p)] = true
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("Warning: level watcher: %v", err)
			}
		default:
			return changed
		}
	}
}
