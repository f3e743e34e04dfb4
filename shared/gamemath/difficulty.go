package gamemath

import (
	"math"
	"time"
)

// Difficulty is the set of tunables derived from play time.
type Difficulty struct {
	Gravity            float64
	MaxFallSpeed       float64
	MoveSpeed          float64
	TargetCollectibles int
}

// DifficultyCurve interpolates every tunable from its start to its max value
// over Ramp.
type DifficultyCurve struct {
	Ramp  time.Duration
	Start Difficulty
	Max   Difficulty
}

// Progress is elapsed/Ramp clamped to [0, 1].
func (c DifficultyCurve) Progress(elapsed time.Duration) float64 {
	if c.Ramp <= 0 {
		return 1
	}
	return ClampFloat(float64(elapsed)/float64(c.Ramp), 0, 1)
}

// At returns the parameters for the given elapsed play time. At or past the
// ramp every parameter equals its max value exactly.
func (c DifficultyCurve) At(elapsed time.Duration) Difficulty {
	p := c.Progress(elapsed)
	if p >= 1 {
		return c.Max
	}
	return Difficulty{
		Gravity:      Lerp(c.Start.Gravity, c.Max.Gravity, p),
		MaxFallSpeed: Lerp(c.Start.MaxFallSpeed, c.Max.MaxFallSpeed, p),
		MoveSpeed:    Lerp(c.Start.MoveSpeed, c.Max.MoveSpeed, p),
		TargetCollectibles: int(math.Floor(
			Lerp(float64(c.Start.TargetCollectibles), float64(c.Max.TargetCollectibles), p))),
	}
}
