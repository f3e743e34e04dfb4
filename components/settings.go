package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the runtime toggles that survive restarts.
type SettingsData struct {
	SFXVolume  float64
	Muted      bool
	Fullscreen bool
	Debug      bool
}

// Settings is the component type for runtime settings
var Settings = donburi.NewComponentType[SettingsData]()
