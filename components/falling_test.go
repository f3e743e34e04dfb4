package components

import (
	"testing"
	"time"
)

func TestCollectibleFallsOffScreenAndResets(t *testing.T) {
	f := NewFalling(FallingCollectible, 300, 0.3, 5)
	if f.Y != -30 {
		t.Fatalf("spawn y = %v, want -30", f.Y)
	}
	limit := f.OffscreenY
	if limit != 590 {
		t.Fatalf("off-screen threshold = %v, want 540+50", limit)
	}

	ticks := 0
	for !f.IsOffScreen() {
		wasAbove := f.Y <= limit
		f.Update()
		ticks++
		if f.IsOffScreen() != (f.Y > limit) {
			t.Fatalf("IsOffScreen disagrees with y=%v", f.Y)
		}
		if !wasAbove {
			t.Fatal("entity was already past the threshold")
		}
		if ticks > 1000 {
			t.Fatal("entity never left the screen")
		}
	}
	if f.FallSpeed != 5 {
		t.Errorf("fall speed = %v, want capped at 5", f.FallSpeed)
	}

	f.Flagged = true
	f.Reset(120)
	if f.Y != -30 || f.X != 120 || f.Flagged || f.FallSpeed != 0 || !f.Visible {
		t.Errorf("after reset: %+v", f)
	}
}

func TestContactFiresOnceUntilReset(t *testing.T) {
	f := NewFalling(FallingHazard, 480, 0.3, 5)
	// Character anchor at feet y=490 with a 96px tall sprite: centre y=442.
	f.Y = 442

	if !f.CheckContact(480, 490, 96) {
		t.Fatal("token at the visual centre should hit")
	}
	if f.Visible || !f.Flagged {
		t.Error("hit token should be flagged and hidden")
	}
	for i := 0; i < 5; i++ {
		if f.CheckContact(480, 490, 96) {
			t.Fatal("flagged token reported contact again")
		}
	}

	f.Reset(480)
	f.Y = 442
	if !f.CheckContact(480, 490, 96) {
		t.Error("contact should fire again after reset")
	}
}

func TestContactUsesVisualCentre(t *testing.T) {
	f := NewFalling(FallingCollectible, 480, 0.3, 5)
	// At the feet, 48px below the centre: outside the 40 radius.
	f.Y = 490
	if f.CheckContact(480, 490, 96) {
		t.Error("contact measured from the feet instead of the centre")
	}
	f.Y = 442 + 39
	if !f.CheckContact(480, 490, 96) {
		t.Error("39px from the centre should be inside the radius")
	}
}

func TestFlaggedTokenKeepsFalling(t *testing.T) {
	f := NewFalling(FallingCollectible, 100, 0.3, 5)
	f.Flagged = true
	f.Update()
	if f.Y == -30 {
		t.Error("flagged token should keep falling")
	}

	f.Dispose()
	y := f.Y
	f.Update()
	if f.Y != y {
		t.Error("disposed token moved")
	}
}

func TestSpawnerDueOncePerInterval(t *testing.T) {
	s := SpawnerData{Timers: []SpawnTimer{{Kind: PowerUpSpeedBoost, Interval: 15 * time.Second, LastSpawn: t0}}}

	if due := s.Due(t0.Add(14 * time.Second)); len(due) != 0 {
		t.Fatalf("spawned early: %v", due)
	}
	// A long pause yields one spawn, not a burst.
	late := t0.Add(time.Minute)
	if due := s.Due(late); len(due) != 1 || due[0] != PowerUpSpeedBoost {
		t.Fatalf("due = %v, want one speed boost", due)
	}
	if due := s.Due(late.Add(time.Second)); len(due) != 0 {
		t.Fatalf("timer was not restarted: %v", due)
	}

	s.Reset(late.Add(10 * time.Second))
	if due := s.Due(late.Add(20 * time.Second)); len(due) != 0 {
		t.Error("reset did not re-arm the timer")
	}
}

func TestPowerUpVariantAppliesBoost(t *testing.T) {
	c := newTestCharacter()
	p := NewPowerUp(PowerUpSpeedBoost)

	p.ApplyEffect(&c, t0)

	if p.Duration() != 10*time.Second {
		t.Errorf("duration = %s, want 10s", p.Duration())
	}
	if got := c.MoveSpeed(t0.Add(time.Second)); got != 6 {
		t.Errorf("speed = %v, want doubled base 6", got)
	}
	if p.Kind.String() != "Speed Boost" {
		t.Errorf("name = %q", p.Kind.String())
	}
}
