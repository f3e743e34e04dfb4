package components

import (
	"testing"
	"time"

	"github.com/solarlune/resolv"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestCharacter() CharacterData {
	return NewCharacter(480, 490, 960, 540)
}

func TestJumpCooldown(t *testing.T) {
	c := newTestCharacter()

	if !c.Jump(t0) {
		t.Fatal("first jump should succeed")
	}
	if c.VelocityY != c.JumpImpulse {
		t.Errorf("VelocityY = %v, want %v", c.VelocityY, c.JumpImpulse)
	}

	successes := 1
	for ms := 10; ms < 1000; ms += 10 {
		if c.Jump(t0.Add(time.Duration(ms) * time.Millisecond)) {
			successes++
		}
	}
	if successes != 1 {
		t.Fatalf("jump succeeded %d times inside one cooldown window", successes)
	}
	if !c.Jump(t0.Add(time.Second)) {
		t.Error("jump should be ready once the cooldown has elapsed")
	}
}

func TestAttackCooldownIndependentOfJump(t *testing.T) {
	c := newTestCharacter()

	if !c.Jump(t0) {
		t.Fatal("jump failed")
	}
	if !c.Attack(t0) {
		t.Fatal("attack should not be blocked by the jump cooldown")
	}
	if c.Attack(t0.Add(499 * time.Millisecond)) {
		t.Error("attack inside its cooldown should fail")
	}
	if !c.Attack(t0.Add(500 * time.Millisecond)) {
		t.Error("attack should be ready after 500ms")
	}
	if c.Jump(t0.Add(500 * time.Millisecond)) {
		t.Error("jump should still be cooling down")
	}
}

func TestSpeedBoostRearmsInsteadOfStacking(t *testing.T) {
	c := newTestCharacter()
	second := t0.Add(200 * time.Millisecond)

	c.ApplySpeedBoost(2, 10*time.Second, t0)
	c.ApplySpeedBoost(2, 10*time.Second, second)

	if got := c.MoveSpeed(second); got != 6 {
		t.Errorf("boosted speed = %v, want 6", got)
	}
	if !c.BoostUntil.Equal(second.Add(10 * time.Second)) {
		t.Errorf("BoostUntil = %v, want 10s after the second call", c.BoostUntil)
	}
	if !c.BoostActive(t0.Add(10*time.Second + 100*time.Millisecond)) {
		t.Error("boost expired on the first call's schedule")
	}

	c.Update(nil, second.Add(10*time.Second))
	if c.BoostActive(second.Add(10*time.Second)) || c.MoveSpeed(second.Add(10*time.Second)) != 3 {
		t.Error("boost should have expired back to base speed")
	}
}

func TestBaseSpeedChangeDuringBoost(t *testing.T) {
	c := newTestCharacter()
	c.ApplySpeedBoost(2, 10*time.Second, t0)
	c.SetBaseSpeed(4)

	if got := c.MoveSpeed(t0.Add(time.Second)); got != 8 {
		t.Errorf("boosted speed after base change = %v, want 8", got)
	}
	if got := c.MoveSpeed(t0.Add(11 * time.Second)); got != 4 {
		t.Errorf("speed after expiry = %v, want new base 4", got)
	}
}

func TestKeysAreCaseInsensitiveAndIdempotent(t *testing.T) {
	c := newTestCharacter()

	if !c.AddKey("ArrowRight") {
		t.Fatal("first AddKey should report a new press")
	}
	if c.AddKey("arrowright") {
		t.Error("repeat AddKey should be a no-op")
	}
	if !c.HasKey("ARROWRIGHT") || !c.IsMoving() || !c.MovingRight() {
		t.Error("key should be held and count as movement")
	}
	if !c.RemoveKey("arrowRight") || c.RemoveKey("arrowright") {
		t.Error("RemoveKey should succeed once")
	}
	c.AddKey("1")
	if c.IsMoving() {
		t.Error("idle key is not movement")
	}
}

func TestPlatformLandingSnaps(t *testing.T) {
	platform := PlatformData{Object: resolv.NewObject(400, 105, 100, 16)}
	c := newTestCharacter()
	c.X, c.Y = 450, 100
	c.VelocityY = 10

	c.Update([]PlatformData{platform}, t0)

	if c.Y != 105 || c.VelocityY != 0 {
		t.Fatalf("y=%v vy=%v, want snap to 105 with zero velocity", c.Y, c.VelocityY)
	}
	if c.PrevY != 100 {
		t.Errorf("PrevY = %v, want 100", c.PrevY)
	}
}

func TestPlatformFirstMatchWins(t *testing.T) {
	ground := PlatformData{Object: resolv.NewObject(0, 105, 960, 50), Ground: true}
	ledge := PlatformData{Object: resolv.NewObject(400, 108, 100, 16), Order: 1}
	c := newTestCharacter()
	c.X, c.Y, c.VelocityY = 450, 100, 10

	c.Update([]PlatformData{ground, ledge}, t0)
	if c.Y != 105 {
		t.Errorf("y = %v, want the first matching platform at 105", c.Y)
	}
}

func TestNoLandingWhenRisingOrOutside(t *testing.T) {
	platform := PlatformData{Object: resolv.NewObject(400, 105, 100, 16)}

	rising := newTestCharacter()
	rising.X, rising.Y, rising.VelocityY = 450, 110, -15
	rising.Update([]PlatformData{platform}, t0)
	if rising.Y == 105 {
		t.Error("rising character should pass through the platform")
	}

	outside := newTestCharacter()
	outside.X, outside.Y, outside.VelocityY = 300, 100, 10
	outside.Update([]PlatformData{platform}, t0)
	if outside.Y == 105 {
		t.Error("character beyond the buffer should not land")
	}
}

func TestGroundAndBoundaryClamp(t *testing.T) {
	c := newTestCharacter()
	c.Y, c.VelocityY = 485, 20
	c.X = c.RightBoundary - 1
	c.AddKey("d")

	c.Update(nil, t0)

	if c.Y != c.GroundLevel || c.VelocityY != 0 {
		t.Errorf("y=%v vy=%v, want ground %v", c.Y, c.VelocityY, c.GroundLevel)
	}
	if c.X != c.RightBoundary {
		t.Errorf("x = %v, want right boundary %v", c.X, c.RightBoundary)
	}

	c.ForceMoveRight(100)
	if c.X != c.RightBoundary {
		t.Errorf("forced run left the stage: x=%v", c.X)
	}
}
