// Package render draws the game world and HUD with ebiten.
package render

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const ledgeEdge = 4

// DrawStage fills the background and draws every platform.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Stage.BackgroundColor)

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		x, y, w, h := float32(p.X), float32(p.Y), float32(p.W), float32(p.H)
		if p.Ground {
			vector.DrawFilledRect(screen, x, y, w, h, cfg.Stage.GroundColor, false)
			vector.DrawFilledRect(screen, x, y, w, ledgeEdge, cfg.Stage.PlatformEdge, false)
			return
		}
		vector.DrawFilledRect(screen, x, y, w, h, cfg.Stage.PlatformColor, false)
		vector.DrawFilledRect(screen, x, y, w, ledgeEdge, cfg.Stage.PlatformEdge, false)
	})
}
