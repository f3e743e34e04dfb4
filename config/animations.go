package config

// Clip names used by the character and the input policy.
const (
	ClipIdle          = "idle"
	ClipRun           = "run"
	ClipJump          = "jump"
	ClipAttack        = "attack"
	ClipRunningAttack = "runningAttack"
	ClipBlowup        = "blowup"
)

// ClipDef describes one clip as a strip of equally sized frames on a sheet.
// Frame i sits at x = (StartColumn+i)*FrameWidth, y = Row*FrameHeight.
type ClipDef struct {
	Name        string
	Sheet       string
	FrameWidth  int
	FrameHeight int
	Row         int
	StartColumn int
	FrameCount  int
	Speed       float64 // frames advanced per tick
	Loop        bool
	Scale       float64 // 0 uses the character default
}

const (
	heroFrameWidth  = 48
	heroFrameHeight = 48
)

func heroClip(name, sheet string, row, frames int, speed float64, loop bool) ClipDef {
	return ClipDef{
		Name:        name,
		Sheet:       "images/spritesheets/hero/" + sheet + ".png",
		FrameWidth:  heroFrameWidth,
		FrameHeight: heroFrameHeight,
		Row:         row,
		FrameCount:  frames,
		Speed:       speed,
		Loop:        loop,
	}
}

// HeroClips is the clip list for the playable character.
var HeroClips = []ClipDef{
	heroClip(ClipIdle, "idle", 0, 7, 0.08, true),
	heroClip(ClipRun, "run", 0, 5, 0.15, true),
	heroClip(ClipJump, "jump", 0, 11, 0.18, false),
	heroClip(ClipAttack, "attack", 0, 7, 0.3, false),
	heroClip(ClipRunningAttack, "attack", 1, 8, 0.35, false),
	func() ClipDef {
		c := heroClip(ClipBlowup, "blowup", 0, 11, 0.35, false)
		c.Scale = 2.5
		return c
	}(),
}

// ObjectImages maps a falling token kind name to its sprite.
var ObjectImages = map[string]string{
	"collectible": "images/objects/heart.png",
	"hazard":      "images/objects/bomb.png",
	"powerup":     "images/objects/bolt.png",
}
