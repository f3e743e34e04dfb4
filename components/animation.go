package components

import (
	"math"

	"github.com/automoto/heartfall/assets/animations"
	"github.com/automoto/heartfall/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// AnimatedSprite is what the director needs from a renderer-side sprite.
// *animations.Sprite implements it.
type AnimatedSprite interface {
	SetFrames(frames []animations.Frame)
	SetSpeed(speed float64)
	SetLoop(loop bool)
	Loop() bool
	SetScale(x, y float64)
	Scale() (float64, float64)
	SetPosition(x, y float64)
	Position() (float64, float64)
	SetAlpha(a float64)
	SetOnComplete(fn func())
	GotoAndPlay(frame int)
	Update()
	Height() float64
}

// AnimationData binds a character's sprite to its loaded clips.
type AnimationData struct {
	Set          *animations.Set
	Sprite       AnimatedSprite
	Current      string
	Facing       float64 // X scale sign; see config.DirectionLeft/Right
	DefaultScale float64
}

// Play switches the sprite to the named clip from frame 0. Unknown names
// are logged and ignored. loop is forceLoop or the clip's own flag;
// onComplete is armed only for a non-looping clip and fires at most once.
func (a *AnimationData) Play(name string, forceLoop bool, onComplete func()) bool {
	clip, ok := a.Set.Get(name)
	if !ok {
		log.Warn().Str("clip", name).Str("current", a.Current).Msg("unknown animation")
		return false
	}

	x, y := a.Sprite.Position()

	a.Sprite.SetOnComplete(nil)
	a.Sprite.SetFrames(clip.Frames)
	a.Sprite.SetSpeed(clip.Speed)

	loop := forceLoop || clip.Loop
	a.Sprite.SetLoop(loop)

	scale := a.DefaultScale
	if clip.Scale > 0 {
		scale = clip.Scale
	}
	a.Sprite.SetScale(scale*a.facing(), scale)

	if !loop && onComplete != nil {
		a.Sprite.SetOnComplete(onComplete)
	}
	a.Sprite.GotoAndPlay(0)
	a.Sprite.SetPosition(x, y)

	a.Current = name
	return true
}

// SetDirection flips the sprite without touching the current clip.
func (a *AnimationData) SetDirection(facingRight bool) {
	a.Facing = config.DirectionLeft
	if facingRight {
		a.Facing = config.DirectionRight
	}
	sx, sy := a.Sprite.Scale()
	a.Sprite.SetScale(math.Abs(sx)*a.Facing, sy)
}

func (a *AnimationData) FacingRight() bool {
	return a.facing() == config.DirectionRight
}

func (a *AnimationData) facing() float64 {
	if a.Facing == 0 {
		return config.DirectionLeft
	}
	return a.Facing
}

var Animation = donburi.NewComponentType[AnimationData]()
