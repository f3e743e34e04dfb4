package systems

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimations moves the sprite to the controller anchor, advances its
// frames and applies the hit blink.
func UpdateAnimations(w donburi.World) {
	e, ok := characterEntry(w)
	if !ok {
		return
	}
	c := components.Character.Get(e)
	sprite := components.Animation.Get(e).Sprite

	sprite.SetPosition(c.X, c.Y)
	sprite.SetAlpha(components.Blink.Get(e).AlphaAt(Now(w)))
	sprite.Update()
}

// triggerBlink starts the hit flash on the character.
func triggerBlink(e *donburi.Entry, w donburi.World) {
	fx := cfg.Effects
	components.Blink.Get(e).Trigger(Now(w), fx.BlinkDuration, fx.BlinkInterval, fx.BlinkAlpha)
}
