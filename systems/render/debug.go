package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/systems"
	"github.com/automoto/heartfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid   = color.RGBA{100, 100, 100, 255}
	debugGround  = color.RGBA{0, 255, 255, 255}
	debugContact = color.RGBA{255, 0, 255, 255}
	debugAnchor  = color.RGBA{0, 255, 0, 255}
)

// DrawDebug outlines the collision space, contact radii and the character
// anchor, and prints the loop state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.DebugEnabled(e.World) {
		return
	}

	if stage, ok := components.Stage.First(e.World); ok {
		for _, obj := range components.Stage.Get(stage).Space.Objects() {
			c := debugSolid
			if obj.HasTags(tags.ResolvGround) {
				c = debugGround
			}
			x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	components.Falling.Each(e.World, func(entry *donburi.Entry) {
		f := components.Falling.Get(entry)
		if f.Visible {
			vector.StrokeCircle(screen, float32(f.X), float32(f.Y), float32(f.ContactRange), 1, debugContact, false)
		}
	})

	if ch, ok := tags.Character.First(e.World); ok {
		c := components.Character.Get(ch)
		h := components.Animation.Get(ch).Sprite.Height()
		vector.DrawFilledRect(screen, float32(c.X)-2, float32(c.Y)-2, 4, 4, debugAnchor, false)
		vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(c.X), float32(c.Y-h/2), 1, debugAnchor, false)
	}

	now := systems.Now(e.World)
	d := systems.CurrentDifficulty(e.World)
	progress := 0.0
	if game, ok := components.GameState.First(e.World); ok {
		progress = systems.Curve().Progress(components.GameState.Get(game).Elapsed(now))
	}
	msg := fmt.Sprintf("TPS %.0f FPS %.0f\nphase %s\nprogress %.2f gravity %.2f fall %.1f speed %.1f\nhearts %d/%d bombs %d bolts %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		systems.Phase(e.World),
		progress, d.Gravity, d.MaxFallSpeed, d.MoveSpeed,
		systems.FallingCount(e.World, tags.Collectible), d.TargetCollectibles,
		systems.FallingCount(e.World, tags.Hazard),
		systems.ActivePowerUps(e.World),
	)
	ebitenutil.DebugPrintAt(screen, msg, int(cfg.HUD.Margin), cfg.C.Height-70)
}
