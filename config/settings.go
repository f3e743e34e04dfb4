package config

// SettingsConfig contains persisted settings storage configuration
type SettingsConfig struct {
	AppName     string
	SettingsKey string
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "heartfall",
		SettingsKey: "settings",
	}
}
