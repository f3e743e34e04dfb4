package scenes

import (
	"fmt"

	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ErrorScene replaces the stage when the game could not be set up.
type ErrorScene struct {
	err error
}

func NewErrorScene(err error) *ErrorScene {
	return &ErrorScene{err: err}
}

func (es *ErrorScene) Update() {}

func (es *ErrorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	text.Draw(screen, "Could not start the game", fonts.Bold.Get(), 40, 80, cfg.LightRed)
	text.Draw(screen, fmt.Sprint(es.err), fonts.Regular.Get(), 40, 120, cfg.White)
}
