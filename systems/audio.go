package systems

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// QueueSFX queues a sound effect for the audio backend. Dropped while
// muted or when the world has no audio singleton.
func QueueSFX(w donburi.World, id cfg.SoundID) {
	e, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(e)
	if audio.Muted || audio.SFXVolume <= 0 {
		return
	}
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// DrainSFX returns and clears the queued sound effects.
func DrainSFX(w donburi.World) []cfg.SoundID {
	e, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(e)
	pending := audio.PendingSFX
	audio.PendingSFX = nil
	return pending
}

// SFXVolume returns the effective volume for id, zero while muted.
func SFXVolume(w donburi.World, id cfg.SoundID) float64 {
	e, ok := components.Audio.First(w)
	if !ok {
		return 0
	}
	audio := components.Audio.Get(e)
	if audio.Muted {
		return 0
	}
	vol := audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	if vol > 1 {
		vol = 1
	}
	return vol
}

// ToggleMute flips mute on the queue and in the saved settings.
func ToggleMute(w donburi.World) {
	e, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(e)
	audio.Muted = !audio.Muted
	audio.PendingSFX = nil

	if s, ok := settings(w); ok {
		s.Muted = audio.Muted
		SaveCurrentSettings(s)
	}
}
