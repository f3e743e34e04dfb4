package config

import (
	"strings"
	"testing"
	"time"
)

func restoreTuning(t *testing.T) {
	t.Helper()
	character, falling, difficulty := Character, Falling, Difficulty
	powerUps, effects, death := PowerUps, Effects, Death
	t.Cleanup(func() {
		Character, Falling, Difficulty = character, falling, difficulty
		PowerUps, Effects, Death = powerUps, effects, death
	})
}

func TestDecodeTuningOverridesOnlyGivenKeys(t *testing.T) {
	restoreTuning(t)

	src := `
[character]
jump_cooldown = "750ms"
base_speed = 4.5

[difficulty]
ramp_duration = "90s"
max_collectibles = 12
`
	if err := DecodeTuning(strings.NewReader(src)); err != nil {
		t.Fatalf("DecodeTuning: %v", err)
	}

	if Character.JumpCooldown != 750*time.Millisecond {
		t.Errorf("JumpCooldown = %s, want 750ms", Character.JumpCooldown)
	}
	if Character.BaseSpeed != 4.5 {
		t.Errorf("BaseSpeed = %v, want 4.5", Character.BaseSpeed)
	}
	if Character.Gravity != 0.5 {
		t.Errorf("Gravity changed to %v", Character.Gravity)
	}
	if Difficulty.RampDuration != 90*time.Second {
		t.Errorf("RampDuration = %s, want 90s", Difficulty.RampDuration)
	}
	if Difficulty.MaxCollectibles != 12 {
		t.Errorf("MaxCollectibles = %d, want 12", Difficulty.MaxCollectibles)
	}
}

func TestDecodeTuningRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "[character]\nwings = true\n"},
		{"zero health", "[character]\nmax_health = 0\n"},
		{"shrinking target", "[difficulty]\nmax_collectibles = 1\n"},
		{"syntax", "[character\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreTuning(t)
			before := Character

			if err := DecodeTuning(strings.NewReader(tt.src)); err == nil {
				t.Fatal("expected an error")
			}
			if Character != before {
				t.Error("failed decode modified the character config")
			}
		})
	}
}

func TestInputMatchesCaseInsensitive(t *testing.T) {
	tests := []struct {
		key  string
		want ActionID
	}{
		{"ArrowRight", ActionMoveRight},
		{"D", ActionMoveRight},
		{"2", ActionMoveRight},
		{"a", ActionMoveLeft},
		{"1", ActionIdle},
		{"W", ActionJump},
		{"4", ActionAttack},
		{"K", ActionSpecial},
		{"q", ActionNone},
	}

	for _, tt := range tests {
		if got := Input.ActionFor(tt.key); got != tt.want {
			t.Errorf("ActionFor(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestHeroClipsHaveDefault(t *testing.T) {
	found := false
	for _, c := range HeroClips {
		if c.Name == Character.DefaultClip {
			found = true
		}
		if c.FrameCount <= 0 || c.Speed <= 0 {
			t.Errorf("clip %q has FrameCount=%d Speed=%v", c.Name, c.FrameCount, c.Speed)
		}
	}
	if !found {
		t.Errorf("default clip %q not in HeroClips", Character.DefaultClip)
	}
}
