package sprig

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RunConfig configures the window and loop created by App.Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the fixed update rate. Zero means ebiten's default of 60.
	TPS        int
	ClearColor Color
	// Debug enables scene debug mode.
	Debug bool
	// ShowFPS adds an FPS label to the HUD.
	ShowFPS bool
}

// DefaultRunConfig returns a 1280x720 window titled "sprig".
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "sprig",
		Width:      1280,
		Height:     720,
		TPS:        60,
		ClearColor: Color{0.1, 0.1, 0.12, 1},
	}
}

// Plugin adds systems and resources to an App.
type Plugin interface {
	Build(app *App)
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(app *App)

// Build calls f(app).
func (f PluginFunc) Build(app *App) { f(app) }

// StartupSystem runs once before the first update.
type StartupSystem func(app *App)

// UpdateSystem runs every tick with the elapsed time in seconds.
type UpdateSystem func(app *App, dt float64)

// App owns the scene, the donburi world and the systems that drive them.
type App struct {
	Scene  *Scene
	World  donburi.World
	Config RunConfig

	startup []StartupSystem
	update  []UpdateSystem
	started bool
	exit    bool
	frame   uint64
}

// ErrExit is returned by Update once RequestExit has been called.
var ErrExit = errors.New("sprig: exit requested")

// NewApp creates an app with an empty scene and world.
func NewApp(cfg RunConfig) *App {
	s := NewScene()
	s.ClearColor = cfg.ClearColor
	s.SetViewport(float64(cfg.Width), float64(cfg.Height))
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	a := &App{Scene: s, World: donburi.NewWorld(), Config: cfg}
	if cfg.ShowFPS {
		s.HUD().AddChild(s.Register(NewFPSWidget()))
	}
	return a
}

// AddPlugins builds each plugin in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		if p == nil {
			panic("sprig: nil plugin")
		}
		p.Build(a)
	}
	return a
}

// AddStartupSystem registers fn to run once, in registration order, before
// the first update.
func (a *App) AddStartupSystem(fn StartupSystem) *App {
	if a.started {
		log.Printf("sprig: startup system added after startup; running it now")
		fn(a)
		return a
	}
	a.startup = append(a.startup, fn)
	return a
}

// AddUpdateSystem registers fn to run every tick, in registration order.
func (a *App) AddUpdateSystem(fn UpdateSystem) *App {
	a.update = append(a.update, fn)
	return a
}

// Startup runs the startup systems. Later calls do nothing.
func (a *App) Startup() {
	if a.started {
		return
	}
	a.started = true
	for _, fn := range a.startup {
		fn(a)
	}
}

// Update runs one tick: startup if needed, the update systems, the scene and
// then pending donburi events. It returns ErrExit after RequestExit.
func (a *App) Update(dt float64) error {
	a.Startup()
	for _, fn := range a.update {
		fn(a, dt)
	}
	a.Scene.Update(dt)
	events.ProcessAllEvents(a.World)
	a.frame++
	if a.exit {
		return ErrExit
	}
	return nil
}

// Frame returns the number of completed ticks.
func (a *App) Frame() uint64 {
	return a.frame
}

// RequestExit stops the loop at the end of the current tick.
func (a *App) RequestExit() {
	a.exit = true
}

// RunFrames runs n ticks of dt seconds without a window. It stops early and
// returns nil when exit is requested.
func (a *App) RunFrames(n int, dt float64) error {
	for i := 0; i < n; i++ {
		if err := a.Update(dt); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Run opens a window and blocks until it closes or exit is requested.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.Config.Title)
	ebiten.SetWindowSize(a.Config.Width, a.Config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if a.Config.TPS > 0 {
		ebiten.SetTPS(a.Config.TPS)
	}
	a.Scene.SetDeviceInput(true)
	if err := ebiten.RunGame(&gameShim{app: a}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// gameShim implements ebiten.Game on top of an App.
type gameShim struct {
	app *App
}

func (g *gameShim) Update() error {
	err := g.app.Update(1 / float64(ebiten.TPS()))
	if errors.Is(err, ErrExit) {
		return ebiten.Termination
	}
	return err
}

func (g *gameShim) Draw(screen *ebiten.Image) {
	g.app.Scene.Draw(screen)
}

func (g *gameShim) Layout(w, h int) (int, int) {
	return w, h
}
