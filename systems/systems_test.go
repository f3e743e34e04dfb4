package systems

import (
	"image"
	"slices"
	"testing"
	"time"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/shared/leveldata"
	"github.com/automoto/heartfall/systems/factory"
	"github.com/automoto/heartfall/tags"
	"github.com/yohamta/donburi"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

type bigSheets struct{}

func (bigSheets) SheetSize(string) (image.Point, error) {
	return image.Pt(1024, 1024), nil
}

var testStage = leveldata.StageData{
	Platforms: []leveldata.PlatformRect{
		{Name: "ground", X: 0, Y: 490, W: 960, H: 50, Ground: true},
		{Name: "ledge", X: 100, Y: 290, W: 150, H: 16},
	},
	Spawn:     leveldata.SpawnPoint{X: 480, Y: 490},
	MapWidth:  960,
	MapHeight: 540,
}

func newTestWorld(t *testing.T) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateStage(w, &testStage)
	factory.CreateGame(w, t0, 1)
	factory.CreateAudio(w, 1, false)
	factory.CreateSettings(w, components.SettingsData{SFXVolume: 1})

	set := factory.LoadHeroAnimations(bigSheets{})
	ch, err := factory.CreateCharacter(w, set, cfg.ClipIdle, testStage.Spawn.X, testStage.Spawn.Y)
	if err != nil {
		t.Fatalf("CreateCharacter: %v", err)
	}
	SubscribeInput(w)
	return w, ch
}

// tick runs the systems in scene order.
func tick(w donburi.World, now time.Time) {
	UpdateClock(w, now)
	ProcessInput(w)
	UpdateCharacter(w)
	UpdateDifficulty(w)
	UpdateFalling(w)
	UpdatePowerUps(w)
	UpdateDeath(w)
	UpdateHUD(w)
	UpdateAnimations(w)
}

func press(w donburi.World, key string, down bool) {
	components.KeyEvents.Publish(w, components.KeyEvent{Key: key, Down: down})
}

func gameOf(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := components.GameState.First(w)
	if !ok {
		t.Fatal("no game entity")
	}
	return e
}

// placeAtCharacter moves a token onto the character's visual centre.
func placeAtCharacter(ch, token *donburi.Entry) {
	c := components.Character.Get(ch)
	h := components.Animation.Get(ch).Sprite.Height()
	f := components.Falling.Get(token)
	f.X, f.Y = c.X, c.Y-h/2
	f.Gravity, f.MaxFallSpeed = 0, 0
}

func TestHoldRightRunsFacingRightThenIdle(t *testing.T) {
	w, ch := newTestWorld(t)
	now := t0

	press(w, "ArrowRight", true)
	now = now.Add(frame)
	tick(w, now)

	anim := components.Animation.Get(ch)
	c := components.Character.Get(ch)
	if anim.Current != cfg.ClipRun || !anim.FacingRight() {
		t.Fatalf("clip=%q facingRight=%v, want run facing right", anim.Current, anim.FacingRight())
	}
	if c.X != 483 {
		t.Errorf("x = %v, want 483 after one step at speed 3", c.X)
	}

	// key repeat must not restart the clip
	press(w, "arrowright", true)
	now = now.Add(frame)
	tick(w, now)
	if anim.Current != cfg.ClipRun {
		t.Fatalf("clip = %q after repeat, want run", anim.Current)
	}

	press(w, "ArrowRight", false)
	now = now.Add(frame)
	tick(w, now)
	if anim.Current != cfg.ClipIdle {
		t.Errorf("clip = %q after release, want idle on the same tick", anim.Current)
	}
	if c.IsMoving() {
		t.Error("character still moving after release")
	}
}

func TestJumpPlaysOnceAndSettles(t *testing.T) {
	w, ch := newTestWorld(t)
	now := t0.Add(frame)

	press(w, "w", true)
	tick(w, now)
	anim := components.Animation.Get(ch)
	c := components.Character.Get(ch)
	if anim.Current != cfg.ClipJump {
		t.Fatalf("clip = %q, want jump", anim.Current)
	}
	if c.Y >= 490 {
		t.Errorf("y = %v, character should have left the ground", c.Y)
	}
	if c.HasKey("w") {
		t.Error("jump key should not be tracked as held")
	}

	for i := 0; i < 120; i++ {
		now = now.Add(frame)
		tick(w, now)
	}
	if anim.Current != cfg.ClipIdle {
		t.Errorf("clip = %q after the jump finished, want idle", anim.Current)
	}
	if c.Y != 490 {
		t.Errorf("y = %v, want back on the ground at 490", c.Y)
	}
}

func TestAttackPicksClipByMovement(t *testing.T) {
	w, ch := newTestWorld(t)
	anim := components.Animation.Get(ch)

	press(w, "l", true)
	tick(w, t0.Add(frame))
	if anim.Current != cfg.ClipAttack {
		t.Fatalf("standing attack clip = %q", anim.Current)
	}

	press(w, "d", true)
	press(w, "4", true)
	tick(w, t0.Add(time.Second))
	if anim.Current != cfg.ClipRunningAttack {
		t.Errorf("moving attack clip = %q, want runningAttack", anim.Current)
	}
}

func TestSpecialOnlyWhileStanding(t *testing.T) {
	w, ch := newTestWorld(t)
	anim := components.Animation.Get(ch)

	press(w, "a", true)
	press(w, "k", true)
	tick(w, t0.Add(frame))
	if anim.Current != cfg.ClipRun {
		t.Fatalf("clip = %q, special must not interrupt running", anim.Current)
	}

	press(w, "a", false)
	press(w, "k", false)
	press(w, "K", true)
	tick(w, t0.Add(2*frame))
	if anim.Current != cfg.ClipBlowup {
		t.Errorf("clip = %q, want blowup", anim.Current)
	}
}

func TestCollectibleScores(t *testing.T) {
	w, ch := newTestWorld(t)
	heart := factory.CreateCollectible(w, 0, 0, 0)
	placeAtCharacter(ch, heart)

	tick(w, t0.Add(frame))

	score := components.Score.Get(gameOf(t, w))
	if score.Score != 1 || score.HighScore != 1 {
		t.Errorf("score = %+v, want 1/1", *score)
	}
	if !components.Falling.Get(heart).Flagged {
		t.Error("heart should be flagged after collection")
	}
	if !slices.Contains(DrainSFX(w), cfg.SoundCollect) {
		t.Error("collect sound not queued")
	}

	tick(w, t0.Add(2*frame))
	if score.Score != 1 {
		t.Errorf("score = %d, a flagged heart must not score twice", score.Score)
	}
}

func TestThreeHitsDeathAndRetry(t *testing.T) {
	w, ch := newTestWorld(t)
	for i := 0; i < 3; i++ {
		placeAtCharacter(ch, factory.CreateHazard(w, 0, 0, 0))
	}
	now := t0.Add(frame)
	tick(w, now)

	health := components.Health.Get(ch)
	if health.Current != 7 {
		t.Fatalf("health = %d, want 7", health.Current)
	}
	if !components.Blink.Get(ch).Active(now) {
		t.Error("hit should start the blink")
	}

	health.TakeDamage(health.Current)
	for i := 0; i < 5; i++ {
		now = now.Add(frame)
		tick(w, now)
	}

	game := gameOf(t, w)
	state := components.GameState.Get(game)
	if state.Wipes != 1 {
		t.Fatalf("wipe ran %d times, want once", state.Wipes)
	}
	if n := FallingCount(w, tags.Hazard); n != 0 {
		t.Errorf("%d hazards left after the wipe", n)
	}
	if state.Phase != components.PhaseDying {
		t.Fatalf("phase = %v, want dying", state.Phase)
	}

	death := components.Death.Get(ch)
	press(w, "d", true)
	now = now.Add(frame)
	tick(w, now)
	if components.Character.Get(ch).HasKey("d") {
		t.Error("input must be locked while dying")
	}

	now = now.Add(cfg.Death.RunDuration)
	tick(w, now)
	if death.Stage != components.DeathBlowup {
		t.Fatalf("death stage = %v, want blowup", death.Stage)
	}
	for i := 0; i < 60 && state.Phase != components.PhaseGameOver; i++ {
		now = now.Add(frame)
		tick(w, now)
	}
	if state.Phase != components.PhaseGameOver {
		t.Fatal("blowup never completed")
	}
	over := components.GameOver.Get(game)
	if !over.Visible || over.Stats.TimeAlive < 2 {
		t.Errorf("game over = %+v", *over)
	}
	if death.Active || components.Animation.Get(ch).Current != cfg.ClipIdle {
		t.Error("death sequence should unlock input and return to idle")
	}

	press(w, "Enter", true)
	now = now.Add(frame)
	tick(w, now)

	if health.Current != 10 {
		t.Errorf("health after retry = %d, want 10", health.Current)
	}
	if state.Phase != components.PhasePlaying || state.Frozen || over.Visible {
		t.Errorf("state after retry = %+v overlay=%v", *state, over.Visible)
	}
	if got := FallingCount(w, tags.Collectible); got != cfg.Difficulty.StartCollectibles {
		t.Errorf("collectibles after retry = %d", got)
	}
	if got := FallingCount(w, tags.Hazard); got != cfg.Falling.HazardCount {
		t.Errorf("hazards after retry = %d", got)
	}
	c := components.Character.Get(ch)
	if c.X != testStage.Spawn.X || c.Y != testStage.Spawn.Y {
		t.Errorf("character at (%v, %v), want spawn", c.X, c.Y)
	}
}

func TestRetryIgnoredWhilePlaying(t *testing.T) {
	w, _ := newTestWorld(t)
	score := components.Score.Get(gameOf(t, w))
	score.Add(4)

	Retry(w)
	if score.Score != 4 {
		t.Errorf("retry during play reset the score to %d", score.Score)
	}
}

func TestDifficultyTopsUpHearts(t *testing.T) {
	w, ch := newTestWorld(t)
	UpdateClock(w, t0)
	SpawnPopulation(w)

	tick(w, t0.Add(5*time.Second))
	if got := FallingCount(w, tags.Collectible); got != 3 {
		t.Fatalf("collectibles at 5s = %d, want 3", got)
	}

	tick(w, t0.Add(60*time.Second))
	if got := FallingCount(w, tags.Collectible); got != 5 {
		t.Errorf("collectibles at 60s = %d, want 5", got)
	}
	if got := components.Character.Get(ch).BaseSpeed; got != 4 {
		t.Errorf("base speed at 60s = %v, want 4", got)
	}

	want := Curve().At(60 * time.Second).Gravity
	components.Falling.Each(w, func(e *donburi.Entry) {
		f := components.Falling.Get(e)
		if f.Kind != components.FallingPowerUp && f.Gravity != want {
			t.Errorf("%v gravity = %v, want %v", f.Kind, f.Gravity, want)
		}
	})
}

func TestPowerUpSpawnCollectAndExpire(t *testing.T) {
	w, ch := newTestWorld(t)
	game := gameOf(t, w)

	tick(w, t0.Add(time.Second))
	if n := ActivePowerUps(w); n != 0 {
		t.Fatalf("%d power-ups before the interval", n)
	}

	now := t0.Add(cfg.PowerUps.SpawnInterval)
	tick(w, now)
	if n := ActivePowerUps(w); n != 1 {
		t.Fatalf("power-ups = %d, want 1", n)
	}

	// a long pause yields one spawn, not a burst
	now = now.Add(time.Hour)
	tick(w, now)
	if n := ActivePowerUps(w); n != 2 {
		t.Fatalf("power-ups after pause = %d, want 2", n)
	}

	var bolt *donburi.Entry
	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		if bolt == nil {
			bolt = e
		}
	})
	placeAtCharacter(ch, bolt)
	now = now.Add(frame)
	tick(w, now)

	c := components.Character.Get(ch)
	if !c.BoostActive(now) || c.MoveSpeed(now) != c.BaseSpeed*2 {
		t.Errorf("boost not applied: speed %v base %v", c.MoveSpeed(now), c.BaseSpeed)
	}
	status := components.PowerUpStatus.Get(game)
	if !status.Active || status.Name != "Speed Boost" || status.SecondsLeft(now) != 10 {
		t.Errorf("status = %+v left=%d", *status, status.SecondsLeft(now))
	}
	if n := ActivePowerUps(w); n != 1 {
		t.Errorf("collected power-up not removed, %d left", n)
	}

	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		components.Falling.Get(e).Y = 10_000
	})
	now = now.Add(cfg.PowerUps.SpeedBoostDuration)
	tick(w, now)
	if n := ActivePowerUps(w); n != 0 {
		t.Errorf("off-screen power-up not removed, %d left", n)
	}
	if status.Active || c.BoostActive(now) {
		t.Error("boost and status should expire together")
	}
}

func TestMuteDropsSounds(t *testing.T) {
	w, _ := newTestWorld(t)

	HandleKey(w, components.KeyEvent{Key: "M", Down: true})
	QueueSFX(w, cfg.SoundHit)
	if got := DrainSFX(w); len(got) != 0 {
		t.Errorf("queued %v while muted", got)
	}
	if SFXVolume(w, cfg.SoundHit) != 0 {
		t.Error("volume should be zero while muted")
	}

	HandleKey(w, components.KeyEvent{Key: "m", Down: true})
	QueueSFX(w, cfg.SoundHit)
	if got := DrainSFX(w); !slices.Equal(got, []cfg.SoundID{cfg.SoundHit}) {
		t.Errorf("queue = %v, want [hit]", got)
	}
	if v := SFXVolume(w, cfg.SoundJump); v != 0.5 {
		t.Errorf("jump volume = %v, want 0.5", v)
	}
}

func TestUnsubscribeStopsInput(t *testing.T) {
	w, ch := newTestWorld(t)
	UnsubscribeInput(w)

	press(w, "d", true)
	tick(w, t0.Add(frame))
	if components.Character.Get(ch).IsMoving() {
		t.Error("events after unsubscribe should be ignored")
	}
}

func TestPlatformsSortedGroundFirst(t *testing.T) {
	w, _ := newTestWorld(t)
	ps := Platforms(w)
	if len(ps) != 2 || !ps[0].Ground || ps[1].Order != 1 {
		t.Errorf("platforms = %+v", ps)
	}
}
