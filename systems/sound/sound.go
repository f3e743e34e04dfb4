// Package sound plays the sound effects queued by the game systems.
package sound

import (
	"sync"

	"github.com/automoto/heartfall/assets"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// The audio context may only be created once per process, so it is shared
// across scenes.
var (
	audioContext  *audio.Context
	audioLoader   *assets.AudioLoader
	audioInitOnce sync.Once
)

func initAudio() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
		audioLoader = assets.NewAudioLoader(audioContext)
	})
}

// PreloadAllSFX decodes all sound effects before the first tick.
func PreloadAllSFX() {
	initAudio()
	for id, path := range cfg.Sound.SFXPaths {
		if err := audioLoader.PreloadSFX(path); err != nil {
			log.Warn().Err(err).Int("sound", int(id)).Msg("could not preload sound effect")
		}
	}
}

// Update plays and clears the pending sound effects.
func Update(e *ecs.ECS) {
	initAudio()
	for _, id := range systems.DrainSFX(e.World) {
		play(id, systems.SFXVolume(e.World, id))
	}
}

func play(id cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}
	player, err := audioLoader.LoadSFX(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not play sound effect")
		return
	}
	player.SetVolume(volume)
	player.Play()
}
