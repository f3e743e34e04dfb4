package systems

import (
	"math/rand/v2"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/systems/factory"
	"github.com/automoto/heartfall/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateFalling advances hearts and bombs, resolves contacts with the
// character and recycles tokens that left the screen. Nothing moves while
// the loop is frozen.
func UpdateFalling(w donburi.World) {
	if frozen(w) {
		return
	}
	ce, ok := characterEntry(w)
	if !ok {
		return
	}
	game, ok := gameEntry(w)
	if !ok {
		return
	}

	c := components.Character.Get(ce)
	height := components.Animation.Get(ce).Sprite.Height()
	health := components.Health.Get(ce)
	score := components.Score.Get(game)
	now := Now(w)

	tags.Collectible.Each(w, func(e *donburi.Entry) {
		f := components.Falling.Get(e)
		f.Update()
		if f.CheckContact(c.X, c.Y, height) {
			score.Add(1)
			QueueSFX(w, cfg.SoundCollect)
		}
		if f.IsOffScreen() {
			f.Reset(RandomX(w))
		}
	})

	tags.Hazard.Each(w, func(e *donburi.Entry) {
		f := components.Falling.Get(e)
		f.Update()
		if f.CheckContact(c.X, c.Y, height) && health.TakeHit(now) {
			triggerBlink(ce, w)
			QueueSFX(w, cfg.SoundHit)
			log.Debug().Int("health", health.Current).Msg("hazard hit")
		}
		if f.IsOffScreen() {
			f.Reset(RandomX(w))
		}
	})
}

// RandomX draws a spawn column inside the stage margins.
func RandomX(w donburi.World) float64 {
	width := float64(cfg.C.Width)
	if e, ok := components.Stage.First(w); ok {
		width = float64(components.Stage.Get(e).Width)
	}
	margin := cfg.Falling.SpawnMarginX

	r := rand.Float64()
	if e, ok := components.Random.First(w); ok {
		if rng := components.Random.Get(e).Rand; rng != nil {
			r = rng.Float64()
		}
	}
	return margin + r*(width-2*margin)
}

// SpawnPopulation creates the starting hearts and bombs for a life.
func SpawnPopulation(w donburi.World) {
	d := CurrentDifficulty(w)
	for i := 0; i < d.TargetCollectibles; i++ {
		factory.CreateCollectible(w, RandomX(w), d.Gravity, d.MaxFallSpeed)
	}
	for i := 0; i < cfg.Falling.HazardCount; i++ {
		factory.CreateHazard(w, RandomX(w), d.Gravity, d.MaxFallSpeed)
	}
}

// FallingCount returns the number of live tokens carrying tag.
func FallingCount(w donburi.World, tag donburi.IComponentType) int {
	n := 0
	components.Falling.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tag) {
			n++
		}
	})
	return n
}

// DisposeFalling disposes and removes every falling token and power-up.
func DisposeFalling(w donburi.World) int {
	var doomed []donburi.Entity
	components.Falling.Each(w, func(e *donburi.Entry) {
		components.Falling.Get(e).Dispose()
		doomed = append(doomed, e.Entity())
	})
	for _, id := range doomed {
		w.Remove(id)
	}
	return len(doomed)
}
