package components

import (
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the audio backend (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
