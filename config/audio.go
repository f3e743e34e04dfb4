package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCollect
	SoundHit
	SoundPowerUp
	SoundJump
	SoundDeath
	SoundRetry
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundCollect: "audio/sfx/collect.wav",
			SoundHit:     "audio/sfx/hit.wav",
			SoundPowerUp: "audio/sfx/powerup.wav",
			SoundJump:    "audio/sfx/jump.wav",
			SoundDeath:   "audio/sfx/death.wav",
			SoundRetry:   "audio/sfx/retry.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump: 0.5,
			SoundHit:  1.3,
		},
	}
}
