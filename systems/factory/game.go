package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/heartfall/archetypes"
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// CreateGame creates the loop singletons and starts the first life at now.
func CreateGame(w donburi.World, now time.Time, seed uint64) *donburi.Entry {
	game := archetypes.Game.Spawn(w)

	state := components.GameStateData{}
	state.Restart(now, cfg.Difficulty.CheckInterval)
	components.GameState.SetValue(game, state)
	components.Clock.SetValue(game, components.ClockData{Now: now})
	components.Random.SetValue(game, components.RandomData{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))})
	components.Spawner.SetValue(game, components.SpawnerData{
		Timers: []components.SpawnTimer{
			{Kind: components.PowerUpSpeedBoost, Interval: cfg.PowerUps.SpawnInterval, LastSpawn: now},
		},
	})

	return game
}

// CreateAudio creates the sound queue singleton.
func CreateAudio(w donburi.World, volume float64, muted bool) *donburi.Entry {
	e := archetypes.Audio.Spawn(w)
	components.Audio.SetValue(e, components.AudioData{SFXVolume: volume, Muted: muted})
	return e
}

// CreateSettings creates the runtime settings singleton.
func CreateSettings(w donburi.World, s components.SettingsData) *donburi.Entry {
	e := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(e, s)
	return e
}
