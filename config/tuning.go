package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// tuningFile mirrors the sections a tuning file may override. Sections and
// keys that are absent keep their current values.
type tuningFile struct {
	Character  CharacterConfig  `toml:"character"`
	Falling    FallingConfig    `toml:"falling"`
	Difficulty DifficultyConfig `toml:"difficulty"`
	PowerUps   PowerUpConfig    `toml:"powerups"`
	Effects    EffectsConfig    `toml:"effects"`
	Death      DeathConfig      `toml:"death"`
}

// LoadTuning reads gameplay overrides from a TOML file. On any error the
// current values are left untouched.
func LoadTuning(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning file: %w", err)
	}
	defer f.Close()

	if err := DecodeTuning(f); err != nil {
		return fmt.Errorf("tuning file %s: %w", path, err)
	}
	return nil
}

// DecodeTuning applies TOML overrides read from r.
func DecodeTuning(r io.Reader) error {
	t := tuningFile{
		Character:  Character,
		Falling:    Falling,
		Difficulty: Difficulty,
		PowerUps:   PowerUps,
		Effects:    Effects,
		Death:      Death,
	}

	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := t.validate(); err != nil {
		return err
	}

	Character = t.Character
	Falling = t.Falling
	Difficulty = t.Difficulty
	PowerUps = t.PowerUps
	Effects = t.Effects
	Death = t.Death
	return nil
}

func (t tuningFile) validate() error {
	switch {
	case t.Character.MaxHealth <= 0:
		return fmt.Errorf("character.max_health must be positive, got %d", t.Character.MaxHealth)
	case t.Difficulty.RampDuration <= 0:
		return fmt.Errorf("difficulty.ramp_duration must be positive, got %s", t.Difficulty.RampDuration)
	case t.Difficulty.CheckInterval <= 0:
		return fmt.Errorf("difficulty.check_interval must be positive, got %s", t.Difficulty.CheckInterval)
	case t.Difficulty.MaxCollectibles < t.Difficulty.StartCollectibles:
		return fmt.Errorf("difficulty.max_collectibles (%d) below start_collectibles (%d)",
			t.Difficulty.MaxCollectibles, t.Difficulty.StartCollectibles)
	case t.PowerUps.SpawnInterval <= 0:
		return fmt.Errorf("powerups.spawn_interval must be positive, got %s", t.PowerUps.SpawnInterval)
	}
	return nil
}
