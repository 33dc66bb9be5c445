package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/components"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/systems"
	"github.com/automoto/tilebound/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	watcher      *leveldata.Watcher
	once         sync.Once
	err          error
}

// NewPlatformerScene creates a scene playing the named level from
// config.Level.Dir.
func NewPlatformerScene(sc SceneChanger, levelName string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops the level watcher, if any.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}

func (ps *PlatformerScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	if cfg.Debug.WatchLevels {
		w, err := leveldata.NewWatcher(cfg.Level.Dir)
		if err != nil {
			log.Printf("Warning: level hot reload disabled: %v", err)
		} else {
			ps.watcher = w
			ecs.AddSystem(systems.NewUpdateLevelReload(w))
		}
	}

	// Game systems, in step order
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateSquashStretch)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs

	level, err := factory.CreateLevel(ps.ecs, cfg.Level.Dir, ps.levelName)
	if err != nil {
		return err
	}
	levelData := components.Level.Get(level)

	factory.CreateCamera(ps.ecs)
	if _, err := factory.CreatePlayer(ps.ecs, levelData); err != nil {
		return err
	}

	// Snap camera to the player's start position to prevent panning from (0,0)
	systems.SnapCamera(ps.ecs)

	settings := components.Settings.Get(factory.CreateSettings(ps.ecs, components.SettingsData{
		Debug:     cfg.Debug.ShowOverlay,
		LastLevel: levelData.Name,
	}))
	systems.SaveCurrentSettings(settings)
	return nil
}
