package components

import (
	"time"

	"github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// CharacterData is the controller state of the playable character. X/Y is
// the anchor at the character's feet. Timers are expiry timestamps compared
// against the tick's clock.
type CharacterData struct {
	X, Y      float64
	PrevY     float64
	VelocityY float64

	LeftBoundary  float64
	RightBoundary float64
	GroundLevel   float64

	Gravity        float64
	JumpImpulse    float64
	PlatformBuffer float64

	JumpCooldown   time.Duration
	AttackCooldown time.Duration
	JumpReadyAt    time.Time
	AttackReadyAt  time.Time

	BaseSpeed       float64
	BoostMultiplier float64
	BoostUntil      time.Time

	keys map[string]struct{}
}

// NewCharacter builds controller state from the character config for a
// stage of the given size.
func NewCharacter(x, y float64, width, height int) CharacterData {
	c := config.Character
	return CharacterData{
		X:              x,
		Y:              y,
		PrevY:          y,
		LeftBoundary:   c.LeftBoundary(),
		RightBoundary:  c.RightBoundary(width),
		GroundLevel:    c.GroundLevel(height),
		Gravity:        c.Gravity,
		JumpImpulse:    c.JumpImpulse,
		PlatformBuffer: c.PlatformBuffer,
		JumpCooldown:   c.JumpCooldown,
		AttackCooldown: c.AttackCooldown,
		BaseSpeed:      c.BaseSpeed,
		keys:           make(map[string]struct{}),
	}
}

// AddKey marks a key as held. It returns false when the key was already
// held, which is how OS key repeat is filtered out.
func (c *CharacterData) AddKey(key string) bool {
	if c.keys == nil {
		c.keys = make(map[string]struct{})
	}
	key = config.NormalizeKey(key)
	if _, ok := c.keys[key]; ok {
		return false
	}
	c.keys[key] = struct{}{}
	return true
}

// RemoveKey releases a key. It returns false when the key was not held.
func (c *CharacterData) RemoveKey(key string) bool {
	key = config.NormalizeKey(key)
	if _, ok := c.keys[key]; !ok {
		return false
	}
	delete(c.keys, key)
	return true
}

func (c *CharacterData) HasKey(key string) bool {
	_, ok := c.keys[config.NormalizeKey(key)]
	return ok
}

func (c *CharacterData) ClearKeys() {
	clear(c.keys)
}

func (c *CharacterData) holdsAny(action config.ActionID) bool {
	for _, k := range config.Input.Bindings[action] {
		if _, ok := c.keys[k]; ok {
			return true
		}
	}
	return false
}

func (c *CharacterData) MovingRight() bool { return c.holdsAny(config.ActionMoveRight) }
func (c *CharacterData) MovingLeft() bool  { return c.holdsAny(config.ActionMoveLeft) }

// IsMoving reports whether any horizontal movement key is held.
func (c *CharacterData) IsMoving() bool {
	return c.MovingRight() || c.MovingLeft()
}

// Jump starts a jump unless the previous one is still cooling down.
func (c *CharacterData) Jump(now time.Time) bool {
	if now.Before(c.JumpReadyAt) {
		return false
	}
	c.VelocityY = c.JumpImpulse
	c.JumpReadyAt = now.Add(c.JumpCooldown)
	return true
}

// Attack arms the attack cooldown. It is independent of Jump.
func (c *CharacterData) Attack(now time.Time) bool {
	if now.Before(c.AttackReadyAt) {
		return false
	}
	c.AttackReadyAt = now.Add(c.AttackCooldown)
	return true
}

func (c *CharacterData) Jumping(now time.Time) bool   { return now.Before(c.JumpReadyAt) }
func (c *CharacterData) Attacking(now time.Time) bool { return now.Before(c.AttackReadyAt) }

// ApplySpeedBoost multiplies move speed until now+d. Calling it again while
// a boost is active replaces the expiry instead of stacking.
func (c *CharacterData) ApplySpeedBoost(multiplier float64, d time.Duration, now time.Time) {
	c.BoostMultiplier = multiplier
	c.BoostUntil = now.Add(d)
}

func (c *CharacterData) BoostActive(now time.Time) bool {
	return c.BoostMultiplier > 0 && now.Before(c.BoostUntil)
}

// SetBaseSpeed changes the unboosted speed. An active boost multiplies the
// new base from the next read on.
func (c *CharacterData) SetBaseSpeed(v float64) {
	c.BaseSpeed = v
}

// MoveSpeed is the effective horizontal speed at now.
func (c *CharacterData) MoveSpeed(now time.Time) float64 {
	if c.BoostActive(now) {
		return c.BaseSpeed * c.BoostMultiplier
	}
	return c.BaseSpeed
}

// ResetTimers clears cooldowns and any boost.
func (c *CharacterData) ResetTimers() {
	c.JumpReadyAt = time.Time{}
	c.AttackReadyAt = time.Time{}
	c.BoostMultiplier = 0
	c.BoostUntil = time.Time{}
}

var Character = donburi.NewComponentType[CharacterData]()
