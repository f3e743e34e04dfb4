package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PowerUpStatusData drives the active power-up countdown in the HUD.
type PowerUpStatusData struct {
	Name   string
	Until  time.Time
	Active bool
}

func (p *PowerUpStatusData) Activate(name string, d time.Duration, now time.Time) {
	p.Name = name
	p.Until = now.Add(d)
	p.Active = true
}

// Update hides the status once it expires.
func (p *PowerUpStatusData) Update(now time.Time) {
	if p.Active && !now.Before(p.Until) {
		p.Deactivate()
	}
}

func (p *PowerUpStatusData) Deactivate() {
	p.Active = false
	p.Name = ""
}

// SecondsLeft rounds the remaining time up to whole seconds.
func (p *PowerUpStatusData) SecondsLeft(now time.Time) int {
	if !p.Active {
		return 0
	}
	left := p.Until.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

var PowerUpStatus = donburi.NewComponentType[PowerUpStatusData]()
