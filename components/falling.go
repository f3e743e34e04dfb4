package components

import (
	"github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FallingKind identifies what a falling token does on contact.
type FallingKind int

const (
	FallingCollectible FallingKind = iota
	FallingHazard
	FallingPowerUp
)

func (k FallingKind) String() string {
	switch k {
	case FallingCollectible:
		return "collectible"
	case FallingHazard:
		return "hazard"
	case FallingPowerUp:
		return "powerup"
	}
	return "unknown"
}

// FallingData is a gravity-driven token. Tokens are recycled with Reset
// rather than destroyed; Flagged marks one that was collected or hit and
// stays set until the next Reset.
type FallingData struct {
	Kind FallingKind

	X, Y         float64
	FallSpeed    float64
	Gravity      float64
	MaxFallSpeed float64

	Flagged  bool
	Visible  bool
	Disposed bool

	SpawnY       float64
	OffscreenY   float64 // off screen once Y exceeds this
	ContactRange float64
}

// NewFalling places a token at x above the visible area.
func NewFalling(kind FallingKind, x, gravity, maxFallSpeed float64) FallingData {
	f := config.Falling
	return FallingData{
		Kind:         kind,
		X:            x,
		Y:            f.SpawnY,
		Gravity:      gravity,
		MaxFallSpeed: maxFallSpeed,
		Visible:      true,
		SpawnY:       f.SpawnY,
		OffscreenY:   float64(config.C.Height) + f.OffscreenMargin,
		ContactRange: f.ContactRadius,
	}
}

// Update advances the fall by one tick. Flagged tokens keep falling so they
// leave the screen and get recycled.
func (f *FallingData) Update() {
	if f.Disposed {
		return
	}
	f.FallSpeed = gamemath.ApplyGravity(f.FallSpeed, f.Gravity, f.MaxFallSpeed)
	f.Y += f.FallSpeed
}

// CheckContact tests the token against the character's visual centre,
// which sits half the rendered height above the anchor. It returns true
// exactly once between resets.
func (f *FallingData) CheckContact(anchorX, anchorY, renderedHeight float64) bool {
	if f.Flagged || f.Disposed {
		return false
	}
	cy := anchorY - renderedHeight/2
	if gamemath.Distance(f.X, f.Y, anchorX, cy) >= f.ContactRange {
		return false
	}
	f.Flagged = true
	f.Visible = false
	return true
}

func (f *FallingData) IsOffScreen() bool {
	return f.Y > f.OffscreenY
}

// Reset reissues the token at the top at x.
func (f *FallingData) Reset(x float64) {
	f.X = x
	f.Y = f.SpawnY
	f.FallSpeed = 0
	f.Flagged = false
	f.Visible = true
}

func (f *FallingData) SetDifficulty(gravity, maxFallSpeed float64) {
	f.Gravity = gravity
	f.MaxFallSpeed = maxFallSpeed
}

// Dispose stops the token for good. The owning entity is removed by the
// caller.
func (f *FallingData) Dispose() {
	f.Disposed = true
	f.Visible = false
}

var Falling = donburi.NewComponentType[FallingData]()
