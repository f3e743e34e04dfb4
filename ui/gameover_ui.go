package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the overlay shown after the death sequence: the run's
// stats and a RETRY button.
type GameOverUI struct {
	UI *ebitenui.UI

	// OnRetry runs synchronously when RETRY is clicked.
	OnRetry func()

	scoreLabel   *widget.Label
	highLabel    *widget.Label
	newHighLabel *widget.Label
	heartsLabel  *widget.Label
	timeLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face

	fade    *gween.Tween
	alpha   float32
	visible bool
}

// NewGameOverUI builds the overlay. It starts hidden.
func NewGameOverUI(onRetry func()) *GameOverUI {
	g := &GameOverUI{OnRetry: onRetry}
	g.loadFonts()
	g.buildUI()
	return g
}

func (g *GameOverUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	g.titleFace = &text.GoTextFace{Source: bold, Size: 44}
	g.normalFace = &text.GoTextFace{Source: regular, Size: 20}
}

func (g *GameOverUI) label(face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: c}),
	)
}

func (g *GameOverUI) buildUI() {
	gc := cfg.GameOver

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(gc.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &g.titleFace, &widget.LabelColor{Idle: gc.TitleColor}),
	)
	panel.AddChild(title)

	g.scoreLabel = g.label(&g.normalFace, gc.TextColor)
	g.highLabel = g.label(&g.normalFace, gc.TextColor)
	g.newHighLabel = g.label(&g.normalFace, gc.HighlightColor)
	g.heartsLabel = g.label(&g.normalFace, gc.TextColor)
	g.timeLabel = g.label(&g.normalFace, gc.TextColor)
	for _, l := range []*widget.Label{g.scoreLabel, g.highLabel, g.newHighLabel, g.heartsLabel, g.timeLabel} {
		panel.AddChild(l)
	}

	retry := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 44),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(gc.ButtonLabel, &g.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if g.OnRetry != nil {
				g.OnRetry()
			}
		}),
	)
	panel.AddChild(retry)

	rootContainer.AddChild(panel)

	g.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{170, 40, 60, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{210, 60, 80, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{130, 30, 45, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{60, 40, 40, 255}),
	}
}

// Show fills in the stats and starts the fade in.
func (g *GameOverUI) Show(stats components.GameStats) {
	g.scoreLabel.Label = fmt.Sprintf("SCORE: %d", stats.Score)
	g.highLabel.Label = fmt.Sprintf("HIGH SCORE: %d", stats.HighScore)
	g.newHighLabel.Label = ""
	if stats.NewHighScore() && stats.Score > 0 {
		g.newHighLabel.Label = "NEW HIGH SCORE!"
	}
	g.heartsLabel.Label = fmt.Sprintf("HEARTS: %d", stats.Collected)
	g.timeLabel.Label = fmt.Sprintf("TIME: %ds", stats.TimeAlive)

	g.fade = gween.New(0, cfg.GameOver.OverlayAlpha, cfg.GameOver.FadeSeconds, ease.OutQuad)
	g.alpha = 0
	g.visible = true
}

func (g *GameOverUI) Hide() {
	g.visible = false
	g.fade = nil
}

func (g *GameOverUI) Visible() bool {
	return g.visible
}

// Update advances the fade by dt seconds and the widgets.
func (g *GameOverUI) Update(dt float32) {
	if !g.visible {
		return
	}
	if g.fade != nil {
		var done bool
		g.alpha, done = g.fade.Update(dt)
		if done {
			g.fade = nil
		}
	}
	g.UI.Update()
}

// Draw dims the screen and draws the panel once the fade is under way.
func (g *GameOverUI) Draw(screen *ebiten.Image) {
	if !g.visible {
		return
	}
	b := screen.Bounds()
	oc := cfg.GameOver.OverlayColor
	oc.A = uint8(255 * g.alpha)
	// vector expects premultiplied colour
	scale := g.alpha
	oc.R, oc.G, oc.B = uint8(float32(oc.R)*scale), uint8(float32(oc.G)*scale), uint8(float32(oc.B)*scale)
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), oc, false)

	g.UI.Draw(screen)
}
