package systems

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Retry starts a new life from the game over screen. Outside that phase it
// does nothing, so a double click on RETRY resets once.
func Retry(w donburi.World) {
	game, ok := gameEntry(w)
	if !ok {
		return
	}
	state := components.GameState.Get(game)
	if state.Phase != components.PhaseGameOver {
		return
	}
	now := Now(w)

	components.Score.Get(game).Reset()
	components.Spawner.Get(game).Reset(now)
	components.PowerUpStatus.Get(game).Deactivate()

	if ce, ok := characterEntry(w); ok {
		resetCharacter(w, ce)
	}

	DisposeFalling(w)
	state.Restart(now, cfg.Difficulty.CheckInterval)
	SpawnPopulation(w)

	components.GameOver.Get(game).Hide()
	QueueSFX(w, cfg.SoundRetry)
	log.Info().Msg("retry")
}

func resetCharacter(w donburi.World, e *donburi.Entry) {
	c := components.Character.Get(e)
	x, y := c.X, c.GroundLevel
	if se, ok := components.Stage.First(w); ok {
		stage := components.Stage.Get(se)
		x, y = stage.SpawnX, stage.SpawnY
	}
	c.X, c.Y, c.PrevY = x, y, y
	c.VelocityY = 0
	c.ResetTimers()
	c.ClearKeys()
	c.SetBaseSpeed(Curve().Start.MoveSpeed)

	components.Health.Get(e).Reset()
	components.Blink.Get(e).Stop()
	components.Death.Get(e).Finish()

	anim := components.Animation.Get(e)
	anim.Play(cfg.ClipIdle, true, nil)
	anim.Sprite.SetPosition(x, y)
}
