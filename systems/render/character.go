package render

import (
	"github.com/automoto/heartfall/assets"
	"github.com/automoto/heartfall/assets/animations"
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/systems"
	"github.com/automoto/heartfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// frameSource is the part of the sprite the renderer reads back.
type frameSource interface {
	Frame() (animations.Frame, bool)
	Alpha() float64
}

var (
	characterDrawOp   = &ebiten.DrawImageOptions{}
	characterShaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawCharacter draws the current frame anchored at the feet. A negative X
// scale mirrors the frame around the anchor.
func DrawCharacter(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(entry)
	src, ok := anim.Sprite.(frameSource)
	if !ok {
		return
	}
	frame, ok := src.Frame()
	if !ok {
		return
	}
	img := assets.Loader.Frame(frame)

	x, y := anim.Sprite.Position()
	sx, sy := anim.Sprite.Scale()
	fw, fh := float64(frame.Rect.Dx()), float64(frame.Rect.Dy())

	var geo ebiten.GeoM
	geo.Translate(-fw/2, -fh)
	geo.Scale(sx, sy)
	geo.Translate(x, y)

	now := systems.Now(e.World)
	boosted := components.Character.Get(entry).BoostActive(now)
	if boosted && assets.TintShader != nil {
		characterShaderOp.GeoM = geo
		characterShaderOp.ColorScale.Reset()
		characterShaderOp.ColorScale.ScaleAlpha(float32(src.Alpha()))
		characterShaderOp.Images[0] = img
		characterShaderOp.Uniforms = map[string]any{
			"Tint":   []float32{1, 0.9, 0.2, 1},
			"Amount": float32(cfg.HUD.BoostTint),
		}
		screen.DrawRectShader(int(fw), int(fh), assets.TintShader, characterShaderOp)
		return
	}

	characterDrawOp.GeoM = geo
	characterDrawOp.ColorScale.Reset()
	characterDrawOp.ColorScale.ScaleAlpha(float32(src.Alpha()))
	screen.DrawImage(img, characterDrawOp)
}
