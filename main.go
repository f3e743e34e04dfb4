package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/automoto/heartfall/components"
	"github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/fonts"
	"github.com/automoto/heartfall/scenes"
	"github.com/automoto/heartfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	debugFlag      = flag.Bool("debug", false, "debug logging and the debug overlay")
	tuningFlag     = flag.String("tuning", "", "TOML file overriding gameplay tuning")
	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen")
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type disposer interface {
	Dispose()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene, disposing the old one.
func (g *Game) ChangeScene(scene interface{}) {
	if d, ok := g.scene.(disposer); ok {
		d.Dispose()
	}
	g.scene = scene.(Scene)
}

func NewGame(settings components.SettingsData) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		panic(err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, settings)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func setupLogging(debug bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func main() {
	flag.Parse()
	setupLogging(*debugFlag)

	config.Debug.Overlay = *debugFlag
	config.Debug.Verbose = *debugFlag
	if *tuningFlag != "" {
		if err := config.LoadTuning(*tuningFlag); err != nil {
			log.Error().Err(err).Str("path", *tuningFlag).Msg("ignoring tuning file")
		}
	}

	// Settings persistence is optional; defaults apply when it fails.
	_ = systems.InitPersistence()
	saved, _ := systems.LoadSettings()
	settings := systems.SettingsFromSaved(saved)
	if *fullscreenFlag {
		settings.Fullscreen = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
