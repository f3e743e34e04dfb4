package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/heartfall/archetypes"
	"github.com/automoto/heartfall/assets/animations"
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

var ErrNoDefaultFrames = errors.New("default animation has no frames")

// CreateCharacter is the second step of character setup: it takes an
// already loaded clip set and fails when the default clip did not load.
// Nothing is added to the world on failure.
func CreateCharacter(w donburi.World, set *animations.Set, defaultClip string, x, y float64) (*donburi.Entry, error) {
	clip, ok := set.Get(defaultClip)
	if !ok || len(clip.Frames) == 0 {
		return nil, fmt.Errorf("create character with %q: %w", defaultClip, ErrNoDefaultFrames)
	}

	width, height := cfg.C.Width, cfg.C.Height
	if stage, ok := components.Stage.First(w); ok {
		s := components.Stage.Get(stage)
		width, height = s.Width, s.Height
	}

	character := archetypes.Character.Spawn(w)
	components.Character.SetValue(character, components.NewCharacter(x, y, width, height))
	components.Health.SetValue(character, components.NewHealth(cfg.Character.MaxHealth, cfg.Effects.InvulnerableFor))

	sprite := animations.NewSprite()
	sprite.SetPosition(x, y)
	anim := components.AnimationData{
		Set:          set,
		Sprite:       sprite,
		Facing:       cfg.DirectionLeft,
		DefaultScale: cfg.Character.DefaultScale,
	}
	anim.Play(defaultClip, true, nil)
	components.Animation.SetValue(character, anim)

	return character, nil
}
