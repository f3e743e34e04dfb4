package systems

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/systems/factory"
	"github.com/automoto/heartfall/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdatePowerUps spawns power-ups whose interval elapsed, advances the
// active ones and removes those that were collected or fell off screen.
func UpdatePowerUps(w donburi.World) {
	if frozen(w) {
		return
	}
	game, ok := gameEntry(w)
	if !ok {
		return
	}
	now := Now(w)

	for _, kind := range components.Spawner.Get(game).Due(now) {
		x := RandomX(w)
		factory.CreatePowerUp(w, kind, x)
		log.Debug().Stringer("kind", kind).Float64("x", x).Msg("spawned power-up")
	}

	ce, hasCharacter := characterEntry(w)
	var done []*donburi.Entry
	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		f := components.Falling.Get(e)
		f.Update()

		if hasCharacter {
			c := components.Character.Get(ce)
			height := components.Animation.Get(ce).Sprite.Height()
			if f.CheckContact(c.X, c.Y, height) {
				p := components.PowerUp.Get(e)
				p.ApplyEffect(c, now)
				components.PowerUpStatus.Get(game).Activate(p.Kind.String(), p.Duration(), now)
				QueueSFX(w, cfg.SoundPowerUp)
				log.Debug().Stringer("kind", p.Kind).Msg("power-up collected")
			}
		}

		if f.Flagged || f.IsOffScreen() {
			done = append(done, e)
		}
	})

	for _, e := range done {
		components.Falling.Get(e).Dispose()
		w.Remove(e.Entity())
	}
}

// ActivePowerUps returns the number of power-ups currently falling.
func ActivePowerUps(w donburi.World) int {
	return FallingCount(w, tags.PowerUp)
}
