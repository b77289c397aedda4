package game

import (
	"math"
	"testing"

	"github.com/phanxgames/sprig"
)

func newApp(plugins ...sprig.Plugin) *sprig.App {
	cfg := sprig.DefaultRunConfig()
	cfg.Width, cfg.Height = 640, 480
	return sprig.NewApp(cfg).AddPlugins(plugins...)
}

func TestGamePluginAddsMagentaLight(t *testing.T) {
	app := newApp(GamePlugin{})
	if len(app.Scene.Lights()) != 0 {
		t.Fatal("light added before startup")
	}
	app.Startup()

	lights := app.Scene.Lights()
	if len(lights) != 1 {
		t.Fatalf("lights = %d, want 1", len(lights))
	}
	l := lights[0]
	if l.Color != magenta {
		t.Errorf("Color = %+v, want magenta", l.Color)
	}
	if l.X != Unit || l.Y != 2*Unit {
		t.Errorf("position = (%v, %v), want (%v, %v)", l.X, l.Y, Unit, 2*Unit)
	}
	if l.ShadowsEnabled {
		t.Error("magenta light should not cast shadows")
	}
}

func TestShowcaseSetup(t *testing.T) {
	app := newApp(ShowcasePlugin{})
	app.Startup()
	root := app.Scene.Root()

	for _, name := range []string{"ground", "cube", "coin"} {
		if root.FindByName(name) == nil {
			t.Errorf("%s not spawned", name)
		}
	}
	cube := root.FindByName("cube")
	if cube.Type != sprig.NodeTypeMesh || cube.X != 2*Unit {
		t.Errorf("cube = %v at %v", cube.Type, cube.X)
	}
	if !sprig.HasComponent[CoinLabel](root.FindByName("coin")) {
		t.Error("coin missing CoinLabel")
	}

	lights := app.Scene.Lights()
	if len(lights) != 1 || !lights[0].ShadowsEnabled {
		t.Errorf("want one shadowed light, got %d", len(lights))
	}

	cam := app.Scene.PrimaryCamera()
	if cam == nil {
		t.Fatal("no camera")
	}
	if cam.Viewport.Width != 640 || cam.Viewport.Height != 480 {
		t.Errorf("viewport = %+v", cam.Viewport)
	}
}

func TestShowcaseCameraOrbits(t *testing.T) {
	app := newApp(ShowcasePlugin{})
	app.Startup()
	cam := app.Scene.PrimaryCamera()
	dist := math.Hypot(cam.X, cam.Y)
	rot := cam.Rotation

	if err := app.RunFrames(60, 1.0/60); err != nil {
		t.Fatal(err)
	}
	got := cam.Rotation - rot
	if math.Abs(got-RadiansPerSecond) > 1e-4 {
		t.Errorf("rotated %v in 1s, want %v", got, RadiansPerSecond)
	}
	if d := math.Hypot(cam.X, cam.Y); math.Abs(d-dist) > 1e-6 {
		t.Errorf("orbit distance = %v, want %v", d, dist)
	}
}

func TestCoinsSpinAndBob(t *testing.T) {
	app := newApp(ShowcasePlugin{})
	app.Startup()
	extra := NewCoin("extra")
	extra.SetPosition(3*Unit, 0)
	app.Scene.Spawn(extra, nil)
	coin := app.Scene.Root().FindByName("coin")

	minY, maxY := 0.0, -coinBobHeight
	for i := 0; i < 240; i++ {
		if err := app.Update(1.0 / 60); err != nil {
			t.Fatal(err)
		}
		if coin.Y != extra.Y {
			t.Fatalf("frame %d: coin Y = %v, extra Y = %v", i, coin.Y, extra.Y)
		}
		minY = math.Min(minY, coin.Y)
		maxY = math.Max(maxY, coin.Y)
	}

	want := 4 * coinSpin
	for _, n := range []*sprig.Node{coin, extra} {
		if math.Abs(n.Rotation-want) > 1e-6 {
			t.Errorf("%s rotation = %v, want %v", n.Name, n.Rotation, want)
		}
		if math.Abs(n.Y-coinHeight(4)) > 1e-6 {
			t.Errorf("%s Y = %v, want %v", n.Name, n.Y, coinHeight(4))
		}
	}
	if extra.X != 3*Unit {
		t.Errorf("extra X = %v, want %v", extra.X, 3*Unit)
	}
	if minY > -coinBobHeight*0.99 || maxY < -0.01*Unit {
		t.Errorf("bob range = [%v, %v], want about [%v, 0]", minY, maxY, -coinBobHeight)
	}
}

func TestCoinHeight(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, -Unit},
		{math.Pi / 4, -2 * Unit},
		{3 * math.Pi / 4, 0},
	}
	for _, tt := range tests {
		if got := coinHeight(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("coinHeight(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
