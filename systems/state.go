package systems

import (
	"time"

	"github.com/automoto/heartfall/components"
	"github.com/automoto/heartfall/tags"
	"github.com/yohamta/donburi"
)

// UpdateClock samples the tick time. Every timer in the world is compared
// against this one value.
func UpdateClock(w donburi.World, now time.Time) {
	if e, ok := components.Clock.First(w); ok {
		components.Clock.Get(e).Now = now
	}
}

// Now returns the time sampled for the current tick.
func Now(w donburi.World) time.Time {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Now
	}
	return time.Time{}
}

func gameEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.GameState.First(w)
}

func characterEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Character.First(w)
}

// Phase returns the current loop phase.
func Phase(w donburi.World) components.GamePhase {
	if e, ok := gameEntry(w); ok {
		return components.GameState.Get(e).Phase
	}
	return components.PhasePlaying
}

func frozen(w donburi.World) bool {
	e, ok := gameEntry(w)
	return ok && components.GameState.Get(e).Frozen
}
