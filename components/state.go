package components

import (
	"math/rand/v2"
	"time"

	"github.com/yohamta/donburi"
)

// GamePhase is the loop's top-level state.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseDying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// GameStateData is the singleton loop state.
type GameStateData struct {
	Phase  GamePhase
	Frozen bool

	// StartedAt is the difficulty clock origin for the current life.
	StartedAt            time.Time
	NextCollectibleCheck time.Time

	// Wipes counts how many times the death wipe ran.
	Wipes int
}

// Freeze latches the frozen flag. It returns true only on the call that
// changed it, so the wipe runs once per life.
func (g *GameStateData) Freeze() bool {
	if g.Frozen {
		return false
	}
	g.Frozen = true
	g.Phase = PhaseDying
	g.Wipes++
	return true
}

func (g *GameStateData) Elapsed(now time.Time) time.Duration {
	return now.Sub(g.StartedAt)
}

// Restart begins a new life at now.
func (g *GameStateData) Restart(now time.Time, checkInterval time.Duration) {
	g.Phase = PhasePlaying
	g.Frozen = false
	g.StartedAt = now
	g.NextCollectibleCheck = now.Add(checkInterval)
}

var GameState = donburi.NewComponentType[GameStateData]()

// ClockData holds the timestamp sampled once at the start of each tick.
type ClockData struct {
	Now time.Time
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData is the source for spawn positions.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
