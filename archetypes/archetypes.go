package archetypes

import (
	"github.com/automoto/heartfall/components"
	"github.com/automoto/heartfall/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Animation,
		components.Health,
		components.Blink,
		components.Death,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Falling,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Falling,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.Falling,
		components.PowerUp,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Game = newArchetype(
		components.GameState,
		components.Clock,
		components.Score,
		components.Spawner,
		components.PowerUpStatus,
		components.GameOver,
		components.Random,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
