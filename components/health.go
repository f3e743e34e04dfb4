package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int

	// Hits inside this window after a hit are ignored. Zero disables it.
	InvulnerableFor   time.Duration
	InvulnerableUntil time.Time
}

func NewHealth(max int, invulnerableFor time.Duration) HealthData {
	return HealthData{Current: max, Max: max, InvulnerableFor: invulnerableFor}
}

// TakeDamage removes n units, never going below zero.
func (h *HealthData) TakeDamage(n int) {
	if h.Current <= 0 {
		return
	}
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
}

// TakeHit applies one unit of damage unless the character is still
// invulnerable from a previous hit. It reports whether damage was taken.
func (h *HealthData) TakeHit(now time.Time) bool {
	if now.Before(h.InvulnerableUntil) {
		return false
	}
	h.TakeDamage(1)
	if h.InvulnerableFor > 0 {
		h.InvulnerableUntil = now.Add(h.InvulnerableFor)
	}
	return true
}

// Heal restores n units. n <= 0 heals fully.
func (h *HealthData) Heal(n int) {
	if n <= 0 || h.Current+n > h.Max {
		h.Current = h.Max
		return
	}
	h.Current += n
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

func (h *HealthData) Reset() {
	h.Current = h.Max
	h.InvulnerableUntil = time.Time{}
}

var Health = donburi.NewComponentType[HealthData]()
