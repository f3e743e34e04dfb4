package components

import (
	"time"

	"github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// PowerUpKind tags the power-up variant.
type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeedBoost:
		return "Speed Boost"
	}
	return "Unknown"
}

// PowerUpData carries the kind plus the parameters its effect needs.
type PowerUpData struct {
	Kind       PowerUpKind
	Multiplier float64
	Length     time.Duration
}

// NewPowerUp returns the configured variant for kind.
func NewPowerUp(kind PowerUpKind) PowerUpData {
	switch kind {
	case PowerUpSpeedBoost:
		return PowerUpData{
			Kind:       kind,
			Multiplier: config.PowerUps.SpeedBoostMultiplier,
			Length:     config.PowerUps.SpeedBoostDuration,
		}
	}
	return PowerUpData{Kind: kind}
}

// ApplyEffect applies the variant's effect to the character at now.
func (p PowerUpData) ApplyEffect(c *CharacterData, now time.Time) {
	switch p.Kind {
	case PowerUpSpeedBoost:
		c.ApplySpeedBoost(p.Multiplier, p.Length, now)
	}
}

func (p PowerUpData) Duration() time.Duration {
	return p.Length
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

// SpawnTimer schedules one power-up kind.
type SpawnTimer struct {
	Kind      PowerUpKind
	Interval  time.Duration
	LastSpawn time.Time
}

// SpawnerData holds the per-kind spawn timers.
type SpawnerData struct {
	Timers []SpawnTimer
}

// Due returns the kinds whose interval elapsed and restarts their timers
// at now. A long gap yields one spawn, not a burst.
func (s *SpawnerData) Due(now time.Time) []PowerUpKind {
	var due []PowerUpKind
	for i := range s.Timers {
		t := &s.Timers[i]
		if now.Sub(t.LastSpawn) >= t.Interval {
			t.LastSpawn = now
			due = append(due, t.Kind)
		}
	}
	return due
}

// Reset re-arms every timer at now.
func (s *SpawnerData) Reset(now time.Time) {
	for i := range s.Timers {
		s.Timers[i].LastSpawn = now
	}
}

var Spawner = donburi.NewComponentType[SpawnerData]()
