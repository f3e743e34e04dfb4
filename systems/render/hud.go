package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/fonts"
	"github.com/automoto/heartfall/systems"
	"github.com/automoto/heartfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score line, the heart bar and the power-up countdown.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game, ok := components.GameState.First(e.World)
	if !ok {
		return
	}
	hud := cfg.HUD
	width := float64(screen.Bounds().Dx())
	face := fonts.Bold.Get()
	lineH := face.Metrics().Ascent.Ceil()

	score := components.Score.Get(game)
	y := int(hud.Margin) + lineH
	text.Draw(screen, fmt.Sprintf("Hearts: %d", score.Score), face, int(hud.Margin), y, hud.TextColor)

	high := fmt.Sprintf("HIGH: %d", score.HighScore)
	text.Draw(screen, high, face, int(width-hud.Margin)-textWidth(high, face), y, hud.HighColor)

	if ch, ok := tags.Character.First(e.World); ok {
		drawHearts(screen, components.Health.Get(ch), float32(hud.Margin), float32(y+int(hud.HeartGap)*2))
	}

	status := components.PowerUpStatus.Get(game)
	if status.Active {
		msg := fmt.Sprintf("%s: %ds", status.Name, status.SecondsLeft(systems.Now(e.World)))
		small := fonts.Regular.Get()
		text.Draw(screen, msg, small, centerTextX(msg, small, width), y, hud.PowerUpColor)
	}
}

// drawHearts draws one pixel heart per max health unit, greyed once lost.
func drawHearts(screen *ebiten.Image, hp *components.HealthData, x, y float32) {
	hud := cfg.HUD
	size := float32(hud.HeartSize)
	for i := 0; i < hp.Max; i++ {
		c := hud.HeartFull
		if i >= hp.Current {
			c = hud.HeartEmpty
		}
		hx := x + float32(i)*(size+float32(hud.HeartGap))
		drawHeart(screen, hx, y, size, c)
	}
}

// heartMask is a 7x6 pixel heart.
var heartMask = [6]string{
	".xx.xx.",
	"xxxxxxx",
	"xxxxxxx",
	".xxxxx.",
	"..xxx..",
	"...x...",
}

func drawHeart(screen *ebiten.Image, x, y, size float32, c color.Color) {
	px := size / float32(len(heartMask[0]))
	for row, line := range heartMask {
		for col, ch := range line {
			if ch != 'x' {
				continue
			}
			vector.DrawFilledRect(screen, x+float32(col)*px, y+float32(row)*px, px, px, c, false)
		}
	}
}

func textWidth(s string, face font.Face) int {
	return text.BoundString(face, s).Dx()
}

func centerTextX(s string, face font.Face, width float64) int {
	return int(width/2) - textWidth(s, face)/2
}
