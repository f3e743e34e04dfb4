package components

import (
	"time"

	"github.com/automoto/heartfall/shared/gamemath"
)

// Update advances the character by one tick: boost expiry, gravity,
// platform landing, the ground floor, then horizontal movement for held
// keys. It runs every tick regardless of game phase.
func (c *CharacterData) Update(platforms []PlatformData, now time.Time) {
	if c.BoostMultiplier > 0 && !now.Before(c.BoostUntil) {
		c.BoostMultiplier = 0
	}

	c.PrevY = c.Y
	c.VelocityY += c.Gravity
	c.Y += c.VelocityY

	for i := range platforms {
		if platforms[i].Lands(c.X, c.PrevY, c.Y, c.VelocityY, c.PlatformBuffer) {
			c.Y = platforms[i].Top()
			c.VelocityY = 0
			break
		}
	}

	if c.Y > c.GroundLevel {
		c.Y = c.GroundLevel
		c.VelocityY = 0
	}

	speed := c.MoveSpeed(now)
	if c.MovingRight() {
		c.X = gamemath.ClampFloat(c.X+speed, c.LeftBoundary, c.RightBoundary)
	}
	if c.MovingLeft() {
		c.X = gamemath.ClampFloat(c.X-speed, c.LeftBoundary, c.RightBoundary)
	}
}

// ForceMoveRight displaces the character regardless of held keys.
func (c *CharacterData) ForceMoveRight(dx float64) {
	c.X = gamemath.ClampFloat(c.X+dx, c.LeftBoundary, c.RightBoundary)
}
