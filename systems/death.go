package systems

import (
	"time"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateDeath drives Playing -> Dying -> GameOver. The wipe and the start
// of the death sequence run once per life behind the freeze latch.
func UpdateDeath(w donburi.World) {
	ce, ok := characterEntry(w)
	if !ok {
		return
	}
	game, ok := gameEntry(w)
	if !ok {
		return
	}
	state := components.GameState.Get(game)
	now := Now(w)

	if components.Health.Get(ce).IsDead() && state.Freeze() {
		n := DisposeFalling(w)
		log.Info().Int("disposed", n).Dur("alive", state.Elapsed(now)).Msg("character died")
		startDeath(w, ce, now)
	}

	death := components.Death.Get(ce)
	if !death.Active || death.Stage != components.DeathRunning {
		return
	}
	if now.Before(death.RunUntil) {
		components.Character.Get(ce).ForceMoveRight(cfg.Death.RunSpeed)
		return
	}

	death.Stage = components.DeathBlowup
	id := ce.Entity()
	if !components.Animation.Get(ce).Play(cfg.ClipBlowup, false, func() { finishDeath(w, id) }) {
		finishDeath(w, id)
	}
}

func startDeath(w donburi.World, e *donburi.Entry, now time.Time) {
	if !components.Death.Get(e).Start(now, cfg.Death.RunDuration) {
		return
	}
	components.Character.Get(e).ClearKeys()

	anim := components.Animation.Get(e)
	anim.Play(cfg.ClipRun, true, nil)
	anim.SetDirection(true)
	QueueSFX(w, cfg.SoundDeath)
}

// finishDeath is the blowup completion: unlock input, idle, and show the
// game over overlay with a snapshot of this life.
func finishDeath(w donburi.World, id donburi.Entity) {
	if !w.Valid(id) {
		return
	}
	e := w.Entry(id)
	death := components.Death.Get(e)
	if !death.Active {
		return
	}
	death.Finish()
	components.Animation.Get(e).Play(cfg.ClipIdle, true, nil)

	game, ok := gameEntry(w)
	if !ok {
		return
	}
	state := components.GameState.Get(game)
	score := components.Score.Get(game)
	now := Now(w)

	stats := components.GameStats{
		Score:     score.Score,
		HighScore: score.HighScore,
		Collected: score.Collected,
		TimeAlive: int(state.Elapsed(now) / time.Second),
	}
	state.Phase = components.PhaseGameOver
	components.GameOver.Get(game).Show(stats, now)
	log.Info().Int("score", stats.Score).Int("high", stats.HighScore).Int("seconds", stats.TimeAlive).Msg("game over")
}
