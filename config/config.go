package config

import (
	"image/color"
	"time"
)

// CharacterConfig contains all character-related configuration values
type CharacterConfig struct {
	// Physics
	Gravity     float64 `toml:"gravity"`
	JumpImpulse float64 `toml:"jump_impulse"`
	BaseSpeed   float64 `toml:"base_speed"`

	// Cooldowns are wall-clock, independent of clip length
	JumpCooldown   time.Duration `toml:"jump_cooldown"`
	AttackCooldown time.Duration `toml:"attack_cooldown"`

	// Stage limits
	BoundaryMargin float64 `toml:"boundary_margin"` // left = margin, right = width - margin
	GroundOffset   float64 `toml:"ground_offset"`   // ground level = height - offset
	PlatformBuffer float64 `toml:"platform_buffer"` // half-width used by the landing test

	MaxHealth    int     `toml:"max_health"`
	DefaultScale float64 `toml:"default_scale"`
	DefaultClip  string  `toml:"default_clip"`
}

// FallingConfig contains settings shared by hearts and bombs
type FallingConfig struct {
	Gravity         float64 `toml:"gravity"`
	MaxFallSpeed    float64 `toml:"max_fall_speed"`
	SpawnY          float64 `toml:"spawn_y"`
	OffscreenMargin float64 `toml:"offscreen_margin"`
	ContactRadius   float64 `toml:"contact_radius"`
	SpawnMarginX    float64 `toml:"spawn_margin_x"` // random x is drawn from [margin, width-margin]

	HazardCount int `toml:"hazard_count"`
}

// DifficultyConfig describes the linear ramp from start to max values
type DifficultyConfig struct {
	RampDuration  time.Duration `toml:"ramp_duration"`
	CheckInterval time.Duration `toml:"check_interval"` // how often collectible count is topped up

	StartGravity      float64 `toml:"start_gravity"`
	MaxGravity        float64 `toml:"max_gravity"`
	StartFallSpeed    float64 `toml:"start_fall_speed"`
	MaxFallSpeed      float64 `toml:"max_fall_speed"`
	StartMoveSpeed    float64 `toml:"start_move_speed"`
	MaxMoveSpeed      float64 `toml:"max_move_speed"`
	StartCollectibles int     `toml:"start_collectibles"`
	MaxCollectibles   int     `toml:"max_collectibles"`
}

// PowerUpConfig contains power-up spawn and effect values
type PowerUpConfig struct {
	Gravity       float64       `toml:"gravity"`
	MaxFallSpeed  float64       `toml:"max_fall_speed"`
	SpawnInterval time.Duration `toml:"spawn_interval"`

	SpeedBoostMultiplier float64       `toml:"speed_boost_multiplier"`
	SpeedBoostDuration   time.Duration `toml:"speed_boost_duration"`
}

// EffectsConfig contains hit feedback timing
type EffectsConfig struct {
	BlinkInterval time.Duration `toml:"blink_interval"`
	BlinkDuration time.Duration `toml:"blink_duration"`
	BlinkAlpha    float64       `toml:"blink_alpha"`

	// Hazards touching the character inside this window after a hit are
	// consumed without damage. Zero disables it.
	InvulnerableFor time.Duration `toml:"invulnerable_for"`
}

// DeathConfig contains the scripted death run values
type DeathConfig struct {
	RunDuration time.Duration `toml:"run_duration"`
	RunSpeed    float64       `toml:"run_speed"` // pixels per tick
}

// StageConfig contains stage layout and colors
type StageConfig struct {
	LevelPath       string
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	PlatformColor   color.RGBA
	PlatformEdge    color.RGBA
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin       float64
	HeartSize    float64
	HeartGap     float64
	TextColor    color.RGBA
	HighColor    color.RGBA
	HeartFull    color.RGBA
	HeartEmpty   color.RGBA
	PowerUpColor color.RGBA
	BoostTint    float64 // shader blend toward yellow while boosted
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor   color.RGBA
	OverlayAlpha   float32
	FadeSeconds    float32
	PanelColor     color.RGBA
	TitleColor     color.RGBA
	TextColor      color.RGBA
	HighlightColor color.RGBA
	ButtonLabel    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw platform rectangles, contact radii and difficulty
	Verbose bool // Debug level logging
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Character CharacterConfig
var Falling FallingConfig
var Difficulty DifficultyConfig
var PowerUps PowerUpConfig
var Effects EffectsConfig
var Death DeathConfig
var Stage StageConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkBlue     = color.RGBA{R: 29, G: 43, B: 83, A: 255}
)

// Facing sign for sprites. Hero art faces left, so facing right flips X.
const (
	DirectionLeft  = 1.0
	DirectionRight = -1.0
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Heartfall",
	}

	Character = CharacterConfig{
		Gravity:     0.5,
		JumpImpulse: -15,
		BaseSpeed:   3,

		JumpCooldown:   1000 * time.Millisecond,
		AttackCooldown: 500 * time.Millisecond,

		BoundaryMargin: 50,
		GroundOffset:   50,
		PlatformBuffer: 20,

		MaxHealth:    10,
		DefaultScale: 2,
		DefaultClip:  ClipIdle,
	}

	Falling = FallingConfig{
		Gravity:         0.3,
		MaxFallSpeed:    5,
		SpawnY:          -30,
		OffscreenMargin: 50,
		ContactRadius:   40,
		SpawnMarginX:    50,
		HazardCount:     3,
	}

	Difficulty = DifficultyConfig{
		RampDuration:  120 * time.Second,
		CheckInterval: 5 * time.Second,

		StartGravity:      0.3,
		MaxGravity:        0.6,
		StartFallSpeed:    5,
		MaxFallSpeed:      10,
		StartMoveSpeed:    3,
		MaxMoveSpeed:      5,
		StartCollectibles: 3,
		MaxCollectibles:   8,
	}

	PowerUps = PowerUpConfig{
		Gravity:       0.25,
		MaxFallSpeed:  1,
		SpawnInterval: 15 * time.Second,

		SpeedBoostMultiplier: 2,
		SpeedBoostDuration:   10 * time.Second,
	}

	Effects = EffectsConfig{
		BlinkInterval:   100 * time.Millisecond,
		BlinkDuration:   time.Second,
		BlinkAlpha:      0.3,
		InvulnerableFor: 0,
	}

	Death = DeathConfig{
		RunDuration: 2 * time.Second,
		RunSpeed:    3,
	}

	Stage = StageConfig{
		LevelPath:       "levels/stage.tmx",
		BackgroundColor: DarkBlue,
		GroundColor:     color.RGBA{R: 60, G: 45, B: 35, A: 255},
		PlatformColor:   color.RGBA{R: 126, G: 87, B: 60, A: 255},
		PlatformEdge:    color.RGBA{R: 90, G: 170, B: 70, A: 255},
	}

	HUD = HUDConfig{
		Margin:       12,
		HeartSize:    14,
		HeartGap:     4,
		TextColor:    White,
		HighColor:    BrightYellow,
		HeartFull:    color.RGBA{R: 230, G: 40, B: 70, A: 255},
		HeartEmpty:   Grey,
		PowerUpColor: Yellow,
		BoostTint:    0.35,
	}

	GameOver = GameOverConfig{
		OverlayColor:   Black,
		OverlayAlpha:   0.7,
		FadeSeconds:    0.4,
		PanelColor:     color.RGBA{R: 30, G: 30, B: 45, A: 240},
		TitleColor:     LightRed,
		TextColor:      White,
		HighlightColor: Orange,
		ButtonLabel:    "RETRY",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}

// LeftBoundary is the smallest x the character may occupy.
func (c CharacterConfig) LeftBoundary() float64 {
	return c.BoundaryMargin
}

// RightBoundary is the largest x the character may occupy.
func (c CharacterConfig) RightBoundary(width int) float64 {
	return float64(width) - c.BoundaryMargin
}

// GroundLevel is the floor of last resort.
func (c CharacterConfig) GroundLevel(height int) float64 {
	return float64(height) - c.GroundOffset
}
