package factory

import (
	"github.com/automoto/heartfall/archetypes"
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

func CreateCollectible(w donburi.World, x, gravity, maxFallSpeed float64) *donburi.Entry {
	e := archetypes.Collectible.Spawn(w)
	components.Falling.SetValue(e, components.NewFalling(components.FallingCollectible, x, gravity, maxFallSpeed))
	return e
}

func CreateHazard(w donburi.World, x, gravity, maxFallSpeed float64) *donburi.Entry {
	e := archetypes.Hazard.Spawn(w)
	components.Falling.SetValue(e, components.NewFalling(components.FallingHazard, x, gravity, maxFallSpeed))
	return e
}

// CreatePowerUp spawns a power-up of kind. Power-ups fall slowly and are
// not retuned by difficulty.
func CreatePowerUp(w donburi.World, kind components.PowerUpKind, x float64) *donburi.Entry {
	e := archetypes.PowerUp.Spawn(w)
	components.Falling.SetValue(e, components.NewFalling(components.FallingPowerUp, x, cfg.PowerUps.Gravity, cfg.PowerUps.MaxFallSpeed))
	components.PowerUp.SetValue(e, components.NewPowerUp(kind))
	return e
}
