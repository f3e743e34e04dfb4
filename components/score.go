package components

import "github.com/yohamta/donburi"

// ScoreData counts collected tokens. HighScore only lives for the session.
type ScoreData struct {
	Score     int
	HighScore int
	Collected int
}

func (s *ScoreData) Add(points int) {
	s.Score += points
	s.Collected++
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// Reset starts a new life and keeps the high score.
func (s *ScoreData) Reset() {
	s.Score = 0
	s.Collected = 0
}

var Score = donburi.NewComponentType[ScoreData]()
