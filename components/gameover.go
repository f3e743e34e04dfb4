package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// GameStats is the snapshot shown on the game over screen.
type GameStats struct {
	Score     int
	HighScore int
	Collected int
	TimeAlive int // whole seconds
}

// NewHighScore reports whether this run matched or beat the high score.
func (s GameStats) NewHighScore() bool {
	return s.Score >= s.HighScore
}

// GameOverData stores the overlay state.
type GameOverData struct {
	Visible bool
	Stats   GameStats
	ShownAt time.Time
}

func (g *GameOverData) Show(stats GameStats, now time.Time) {
	g.Visible = true
	g.Stats = stats
	g.ShownAt = now
}

func (g *GameOverData) Hide() {
	g.Visible = false
}

// GameOver is the component type for the game over overlay
var GameOver = donburi.NewComponentType[GameOverData]()
