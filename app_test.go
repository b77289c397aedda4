package sprig

import (
	"errors"
	"testing"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.Title != "sprig" {
		t.Errorf("DefaultRunConfig = %+v", cfg)
	}
}

func TestAppStartupRunsOnceInOrder(t *testing.T) {
	app := NewApp(DefaultRunConfig())
	var order []string
	app.AddPlugins(PluginFunc(func(a *App) {
		a.AddStartupSystem(func(*App) { order = append(order, "a") })
		a.AddStartupSystem(func(*App) { order = append(order, "b") })
	}))

	app.Startup()
	app.Startup()
	if err := app.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("startup order = %v, want [a b]", order)
	}
}

func TestAppUpdateSystemsGetDT(t *testing.T) {
	app := NewApp(DefaultRunConfig())
	var total float64
	app.AddUpdateSystem(func(_ *App, dt float64) { total += dt })

	if err := app.RunFrames(4, 0.25); err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("total dt = %v, want 1", total)
	}
	if app.Frame() != 4 {
		t.Errorf("Frame = %d, want 4", app.Frame())
	}
}

func TestAppRequestExit(t *testing.T) {
	app := NewApp(DefaultRunConfig())
	app.AddUpdateSystem(func(a *App, _ float64) {
		if a.Frame() == 2 {
			a.RequestExit()
		}
	})
	if err := app.RunFrames(10, 0.01); err != nil {
		t.Fatal(err)
	}
	if app.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", app.Frame())
	}
	if err := app.Update(0.01); !errors.Is(err, ErrExit) {
		t.Errorf("Update after exit = %v, want ErrExit", err)
	}
}

func TestAppNilPluginPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewApp(DefaultRunConfig()).AddPlugins(nil)
}

func TestAppConfigAppliesToScene(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Width, cfg.Height = 320, 240
	cfg.ShowFPS = true
	app := NewApp(cfg)
	if w, h := app.Scene.Viewport(); w != 320 || h != 240 {
		t.Errorf("viewport = %vx%v", w, h)
	}
	if app.Scene.HUD().FindByName("fps_widget") == nil {
		t.Error("FPS widget missing")
	}
	if app.World == nil {
		t.Error("world not created")
	}
}
