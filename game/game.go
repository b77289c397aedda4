// Package game holds the world-side plugins: a lit scene and the rotating
// showcase with its animated coin.
package game

import (
	"math"

	"github.com/phanxgames/sprig"
)

// Unit is the number of world pixels per scene unit.
const Unit = 64.0

// RadiansPerSecond is the camera orbit speed of the showcase.
const RadiansPerSecond = 0.1

const (
	coinSpin = 4.0 // rad/s
	coinSize = 0.6 * Unit
	// Coins rise sin(2t)+1 units above the ground, so 0 to 2.
	coinBobRate   = 2.0
	coinBobHeight = 2 * Unit
)

var (
	magenta = sprig.Color{R: 1, B: 1, A: 1}
	ground  = sprig.Color{G: 0.2, A: 1}
	cyan    = sprig.Color{G: 1, B: 1, A: 1}
	gold    = sprig.Color{R: 1, G: 0.8, B: 0.2, A: 1}
)

// CoinLabel marks a node animated by the coin system.
type CoinLabel struct{}

// GamePlugin adds a magenta point light.
type GamePlugin struct{}

func (GamePlugin) Build(app *sprig.App) {
	app.AddStartupSystem(func(app *sprig.App) {
		l := sprig.NewLight(1*Unit, 2*Unit, 3*Unit)
		l.Color = magenta
		app.Scene.AddLight(l)
	})
}

// ShowcasePlugin builds a ground plane, a cube, a shadowed light and a coin.
// The camera orbits the origin and every coin spins and bobs.
type ShowcasePlugin struct{}

func (ShowcasePlugin) Build(app *sprig.App) {
	app.AddStartupSystem(setup)
	var elapsed float64
	app.AddUpdateSystem(func(app *sprig.App, dt float64) {
		elapsed += dt
		animateCoins(app, dt, elapsed)
	})
}

func setup(app *sprig.App) {
	s := app.Scene
	w, h := s.Viewport()
	cam := s.NewCamera(sprig.Rect{Width: w, Height: h})
	cam.LookAt(0, 1.4*Unit, 0, 0)
	cam.Orbit(0, 0, RadiansPerSecond)

	s.Spawn(sprig.NewRectMesh("ground", 5*Unit, 5*Unit, ground), nil)

	cube := sprig.NewBoxMesh("cube", Unit, Unit, 0.35*Unit, cyan)
	cube.SetPosition(2*Unit, 0)
	s.Spawn(cube, nil)

	l := sprig.NewLight(4*Unit, 4*Unit, 6*Unit)
	l.ShadowsEnabled = true
	l.Intensity = 0.6
	s.AddLight(l)

	coin := NewCoin("coin")
	s.Spawn(coin, nil)
}

// NewCoin returns a coin sprite pivoted on its center.
func NewCoin(name string) *sprig.Node {
	coin := sprig.NewSprite(name, coinSize, coinSize, gold)
	coin.PivotX, coin.PivotY = coinSize/2, coinSize/2
	coin.SetComponent(CoinLabel{})
	return coin
}

// coinHeight is the bob offset at time t. Y grows downward.
func coinHeight(t float64) float64 {
	return -(math.Sin(coinBobRate*t) + 1) * coinBobHeight / 2
}

func animateCoins(app *sprig.App, dt, elapsed float64) {
	y := coinHeight(elapsed)
	sprig.Each(app.Scene, func(n *sprig.Node, _ CoinLabel) {
		n.SetRotation(n.Rotation + dt*coinSpin)
		n.SetPosition(n.X, y)
	})
}
