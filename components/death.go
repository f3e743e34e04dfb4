package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathStage is the step of the scripted death sequence.
type DeathStage int

const (
	DeathNone DeathStage = iota
	DeathRunning
	DeathBlowup
)

// DeathData is the death sequence latch. While Active, input is locked.
type DeathData struct {
	Active   bool
	Stage    DeathStage
	RunUntil time.Time
}

// Start enters the sequence. It returns false if it is already running.
func (d *DeathData) Start(now time.Time, run time.Duration) bool {
	if d.Active {
		return false
	}
	d.Active = true
	d.Stage = DeathRunning
	d.RunUntil = now.Add(run)
	return true
}

func (d *DeathData) Finish() {
	d.Active = false
	d.Stage = DeathNone
}

func (d *DeathData) InputLocked() bool {
	return d.Active
}

var Death = donburi.NewComponentType[DeathData]()
