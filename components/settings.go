package components

import "github.com/yohamta/donburi"

// SettingsData holds session settings that survive restarts.
type SettingsData struct {
	Debug     bool
	LastLevel string
}

var Settings = donburi.NewComponentType[SettingsData]()
