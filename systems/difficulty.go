package systems

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/shared/gamemath"
	"github.com/automoto/heartfall/systems/factory"
	"github.com/automoto/heartfall/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Curve builds the difficulty curve from the current tuning.
func Curve() gamemath.DifficultyCurve {
	d := cfg.Difficulty
	return gamemath.DifficultyCurve{
		Ramp: d.RampDuration,
		Start: gamemath.Difficulty{
			Gravity:            d.StartGravity,
			MaxFallSpeed:       d.StartFallSpeed,
			MoveSpeed:          d.StartMoveSpeed,
			TargetCollectibles: d.StartCollectibles,
		},
		Max: gamemath.Difficulty{
			Gravity:            d.MaxGravity,
			MaxFallSpeed:       d.MaxFallSpeed,
			MoveSpeed:          d.MaxMoveSpeed,
			TargetCollectibles: d.MaxCollectibles,
		},
	}
}

// CurrentDifficulty evaluates the curve for the time spent in this life.
func CurrentDifficulty(w donburi.World) gamemath.Difficulty {
	e, ok := gameEntry(w)
	if !ok {
		return Curve().Start
	}
	return Curve().At(components.GameState.Get(e).Elapsed(Now(w)))
}

// UpdateDifficulty retunes the character and the falling tokens every tick
// and tops the heart count up to the target on a fixed interval. The count
// never shrinks. Suspended while frozen.
func UpdateDifficulty(w donburi.World) {
	game, ok := gameEntry(w)
	if !ok || frozen(w) {
		return
	}
	state := components.GameState.Get(game)
	now := Now(w)
	d := CurrentDifficulty(w)

	if ce, ok := characterEntry(w); ok {
		components.Character.Get(ce).SetBaseSpeed(d.MoveSpeed)
	}

	retune := func(e *donburi.Entry) {
		components.Falling.Get(e).SetDifficulty(d.Gravity, d.MaxFallSpeed)
	}
	tags.Collectible.Each(w, retune)
	tags.Hazard.Each(w, retune)

	if now.Before(state.NextCollectibleCheck) {
		return
	}
	state.NextCollectibleCheck = now.Add(cfg.Difficulty.CheckInterval)

	live := FallingCount(w, tags.Collectible)
	for i := live; i < d.TargetCollectibles; i++ {
		factory.CreateCollectible(w, RandomX(w), d.Gravity, d.MaxFallSpeed)
	}
	if live < d.TargetCollectibles {
		log.Debug().Int("from", live).Int("to", d.TargetCollectibles).Msg("topped up hearts")
	}
}
