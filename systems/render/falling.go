package render

import (
	"github.com/automoto/heartfall/assets"
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var fallingDrawOp = &ebiten.DrawImageOptions{}

// DrawFalling draws every visible token centred on its position.
func DrawFalling(e *ecs.ECS, screen *ebiten.Image) {
	components.Falling.Each(e.World, func(entry *donburi.Entry) {
		f := components.Falling.Get(entry)
		if !f.Visible || f.Disposed {
			return
		}
		path, ok := cfg.ObjectImages[f.Kind.String()]
		if !ok {
			return
		}
		img := assets.Loader.MustLoadImage(path)
		b := img.Bounds()

		fallingDrawOp.GeoM.Reset()
		fallingDrawOp.GeoM.Translate(f.X-float64(b.Dx())/2, f.Y-float64(b.Dy())/2)
		screen.DrawImage(img, fallingDrawOp)
	})
}
