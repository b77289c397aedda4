package sprig

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Light is a point light drawn additively over the world.
type Light struct {
	// X and Y are the light's world position, or its offset from Target.
	X, Y float64
	// Radius is the reach of the light in world units.
	Radius float64
	// Intensity controls light brightness in the range [0, 1].
	Intensity float64
	// Color is the light's tint.
	Color Color
	// Enabled determines whether the light is drawn.
	Enabled bool
	// ShadowsEnabled draws a soft dark halo around the lit area.
	ShadowsEnabled bool
	// Target, if set, makes the light follow this node.
	Target *Node
}

// NewLight returns an enabled white light of the given radius at (x, y).
func NewLight(x, y, radius float64) *Light {
	return &Light{
		X:         x,
		Y:         y,
		Radius:    radius,
		Intensity: 1,
		Color:     ColorWhite,
		Enabled:   true,
	}
}

// AddLight adds a light to the scene.
func (s *Scene) AddLight(l *Light) *Light {
	s.lights = append(s.lights, l)
	return l
}

// RemoveLight removes a light from the scene.
func (s *Scene) RemoveLight(l *Light) {
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

// Lights returns the current light list. The returned slice MUST NOT be mutated.
func (s *Scene) Lights() []*Light {
	return s.lights
}

// worldPosition returns the light's position, following Target while it is alive.
func (l *Light) worldPosition() (float64, float64) {
	if l.Target != nil && !l.Target.IsDisposed() {
		tx, ty := l.Target.WorldPosition()
		return tx + l.X, ty + l.Y
	}
	return l.X, l.Y
}

// lightRings is the number of concentric circles used to fake falloff.
const lightRings = 6

func (s *Scene) drawLights(screen *ebiten.Image, view [6]float64) {
	zoom := 1.0
	if cam := s.PrimaryCamera(); cam != nil {
		zoom = cam.Zoom
	}
	for _, l := range s.lights {
		if !l.Enabled || l.Radius <= 0 || l.Intensity <= 0 {
			continue
		}
		wx, wy := l.worldPosition()
		sx, sy := transformPoint(view, wx, wy)
		r := l.Radius * zoom

		if l.ShadowsEnabled {
			shadow := Color{A: 0.25 * l.Intensity}.toRGBA()
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*1.2), shadow, true)
		}
		// Larger rings first; overlapping additive rings brighten the core.
		for i := lightRings; i >= 1; i-- {
			f := float64(i) / lightRings
			c := l.Color
			c.A = l.Intensity / lightRings
			drawAdditiveCircle(screen, sx, sy, r*f, c)
		}
	}
}

func drawAdditiveCircle(dst *ebiten.Image, x, y, r float64, c Color) {
	var path vector.Path
	path.Arc(float32(x), float32(y), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0.5, 0.5
		vs[i].ColorR = cr * ca
		vs[i].ColorG = cg * ca
		vs[i].ColorB = cb * ca
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{Blend: BlendAdd.EbitenBlend(), AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}
