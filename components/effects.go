package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// BlinkData alternates sprite opacity after a hit. It only affects drawing.
type BlinkData struct {
	Start    time.Time
	Until    time.Time
	Interval time.Duration
	Alpha    float64 // opacity of the dim half of the cycle
}

// Trigger (re)starts the blink at now.
func (b *BlinkData) Trigger(now time.Time, total, interval time.Duration, alpha float64) {
	b.Start = now
	b.Until = now.Add(total)
	b.Interval = interval
	b.Alpha = alpha
}

func (b *BlinkData) Active(now time.Time) bool {
	return now.Before(b.Until)
}

// AlphaAt returns the opacity to draw with at now.
func (b *BlinkData) AlphaAt(now time.Time) float64 {
	if !b.Active(now) || b.Interval <= 0 {
		return 1
	}
	phase := now.Sub(b.Start) / b.Interval
	if phase%2 == 0 {
		return b.Alpha
	}
	return 1
}

func (b *BlinkData) Stop() {
	b.Until = time.Time{}
}

var Blink = donburi.NewComponentType[BlinkData]()
