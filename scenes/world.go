package scenes

import (
	"sync"
	"time"

	"github.com/automoto/heartfall/assets"
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/systems"
	"github.com/automoto/heartfall/systems/factory"
	"github.com/automoto/heartfall/systems/render"
	"github.com/automoto/heartfall/systems/sound"
	"github.com/automoto/heartfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene hosts one game world.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     components.SettingsData
	once         sync.Once

	// clock is sampled once per tick.
	clock    func() time.Time
	keyboard keyboard
	gameOver *ui.GameOverUI
	overlay  bool
	disposed bool
}

func NewPlatformerScene(sc SceneChanger, settings components.SettingsData) *PlatformerScene {
	return &PlatformerScene{
		sceneChanger: sc,
		settings:     settings,
		clock:        time.Now,
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil || ps.disposed {
		return
	}

	ps.keyboard.poll(ps.ecs.World)
	ps.ecs.Update()
	ps.syncGameOver()
	ps.applyWindowSettings()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Black)
		return
	}
	ps.ecs.Draw(screen)
	if ps.overlay {
		ps.gameOver.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	stage, err := assets.LoadStage()
	if err != nil {
		ps.fail(err)
		return
	}
	if err := assets.LoadShaders(); err != nil {
		log.Warn().Err(err).Msg("shaders unavailable, power-up tint disabled")
	}
	sound.PreloadAllSFX()

	set := factory.LoadHeroAnimations(assets.Sheets())

	world := donburi.NewWorld()
	now := ps.clock()
	factory.CreateStage(world, stage)
	factory.CreateGame(world, now, uint64(now.UnixNano()))
	factory.CreateAudio(world, ps.settings.SFXVolume, ps.settings.Muted)
	factory.CreateSettings(world, ps.settings)
	if _, err := factory.CreateCharacter(world, set, cfg.Character.DefaultClip, stage.Spawn.X, stage.Spawn.Y); err != nil {
		ps.fail(err)
		return
	}
	assets.Loader.PreloadAll(set)

	systems.UpdateClock(world, now)
	systems.SpawnPopulation(world)
	systems.SubscribeInput(world)

	e := ecs.NewECS(world)

	e.AddSystem(func(e *ecs.ECS) { systems.UpdateClock(e.World, ps.clock()) })
	e.AddSystem(func(e *ecs.ECS) { systems.ProcessInput(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateCharacter(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateDifficulty(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateFalling(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdatePowerUps(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateDeath(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateHUD(e.World) })
	e.AddSystem(func(e *ecs.ECS) { systems.UpdateAnimations(e.World) })
	e.AddSystem(sound.Update)

	e.AddRenderer(layerWorld, render.DrawStage)
	e.AddRenderer(layerWorld, render.DrawFalling)
	e.AddRenderer(layerWorld, render.DrawCharacter)
	e.AddRenderer(layerHUD, render.DrawHUD)
	e.AddRenderer(layerHUD, render.DrawDebug)

	ps.ecs = e
	ps.gameOver = ui.NewGameOverUI(func() { systems.Retry(ps.ecs.World) })

	log.Info().
		Int("platforms", len(stage.Platforms)).
		Strs("clips", set.Names()).
		Msg("stage ready")
}

func (ps *PlatformerScene) fail(err error) {
	log.Error().Err(err).Msg("could not set up the stage")
	ps.sceneChanger.ChangeScene(NewErrorScene(err))
}

// syncGameOver mirrors the overlay component into the ebitenui panel.
func (ps *PlatformerScene) syncGameOver() {
	game, ok := components.GameOver.First(ps.ecs.World)
	if !ok {
		return
	}
	data := components.GameOver.Get(game)
	switch {
	case data.Visible && !ps.overlay:
		ps.gameOver.Show(data.Stats)
		ps.overlay = true
	case !data.Visible && ps.overlay:
		ps.gameOver.Hide()
		ps.overlay = false
	}
	if ps.overlay {
		ps.gameOver.Update(1 / float32(ebiten.TPS()))
	}
}

func (ps *PlatformerScene) applyWindowSettings() {
	e, ok := components.Settings.First(ps.ecs.World)
	if !ok {
		return
	}
	if fs := components.Settings.Get(e).Fullscreen; fs != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(fs)
	}
}

// Dispose detaches input and removes every falling token. The scene does
// nothing after it.
func (ps *PlatformerScene) Dispose() {
	if ps.disposed || ps.ecs == nil {
		ps.disposed = true
		return
	}
	ps.disposed = true
	systems.UnsubscribeInput(ps.ecs.World)
	n := systems.DisposeFalling(ps.ecs.World)
	log.Debug().Int("disposed", n).Msg("scene disposed")
}
