package systems

import (
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton settings, seeding it from config.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:     cfg.Debug.ShowOverlay,
			LastLevel: cfg.Level.Default,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay and saves the change.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleDebug).JustPressed {
		return
	}

	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	SaveCurrentSettings(settings)
}
