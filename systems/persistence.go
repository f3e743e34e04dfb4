package systems

import (
	"encoding/json"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// SavedSettings represents the settings data stored on disk. Scores are
// never saved.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the settings store.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when there are none or
// the store is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SettingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes s to the settings store.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("could not serialize settings")
		return err
	}
	if err := gdataManager.SaveItem(cfg.Settings.SettingsKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// SaveCurrentSettings persists the runtime settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
	})
}

// SettingsFromSaved merges saved values over the defaults.
func SettingsFromSaved(saved *SavedSettings) components.SettingsData {
	s := components.SettingsData{SFXVolume: cfg.Audio.DefaultSFXVol, Debug: cfg.Debug.Overlay}
	if saved == nil {
		return s
	}
	s.SFXVolume = saved.SFXVolume
	s.Muted = saved.Muted
	s.Fullscreen = saved.Fullscreen
	return s
}
