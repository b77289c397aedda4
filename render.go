package sprig

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sprig/ui"
)

var whitePixelImg *ebiten.Image

// whitePixel returns a lazily created 1x1 white image used for untextured
// sprites and meshes.
func whitePixel() *ebiten.Image {
	if whitePixelImg == nil {
		whitePixelImg = ebiten.NewImage(1, 1)
		whitePixelImg.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImg
}

// sortedChildren returns n's children ordered by ZIndex, keeping insertion
// order among equal indices.
func sortedChildren(n *Node) []*Node {
	sorted := true
	for i := 1; i < len(n.children); i++ {
		if n.children[i].ZIndex < n.children[i-1].ZIndex {
			sorted = false
			break
		}
	}
	if sorted {
		return n.children
	}
	out := append([]*Node(nil), n.children...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// drawWorld draws n and its subtree depth-first in painter order.
func (s *Scene) drawWorld(dst *ebiten.Image, n *Node, view [6]float64) {
	if !n.Visible {
		return
	}
	m := multiplyAffine(view, n.worldTransform)
	tint := n.Color
	tint.A *= n.worldAlpha

	switch n.Type {
	case NodeTypeSprite:
		img := n.Image
		if img == nil {
			img = whitePixel()
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
		op.GeoM.Concat(geoM(m))
		op.ColorScale.Scale(float32(tint.R), float32(tint.G), float32(tint.B), 1)
		op.ColorScale.ScaleAlpha(float32(tint.A))
		op.Blend = n.BlendMode.EbitenBlend()
		dst.DrawImage(img, op)
	case NodeTypeMesh:
		if len(n.Vertices) > 0 && len(n.Indices) > 0 {
			verts := ensureTransformedVerts(n)
			transformVertices(n.Vertices, verts, m, tint)
			img := n.MeshImage
			if img == nil {
				img = whitePixel()
			}
			op := &ebiten.DrawTrianglesOptions{Blend: n.BlendMode.EbitenBlend()}
			dst.DrawTriangles(verts, n.Indices, img, op)
		}
	}

	for _, c := range sortedChildren(n) {
		s.drawWorld(dst, c, view)
	}
}

func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Fill is a HUD payload that paints a node's layout box.
type Fill struct {
	Color Color
	// Border, when non-zero, strokes the box with this color using the
	// node's resolved border widths.
	Border Color
}

// drawHUD draws HUD boxes and labels in screen space. Node Alpha fades a
// whole HUD subtree.
func (s *Scene) drawHUD(dst *ebiten.Image, n *Node, alpha float64) {
	if !n.Visible || n.Style.Display == ui.DisplayNone {
		return
	}
	alpha *= n.Alpha
	if alpha <= 0 {
		return
	}
	r := n.Layout
	if fill, ok := Component[Fill](n); ok && r.Width > 0 && r.Height > 0 {
		inner := r
		if fill.Border.A > 0 {
			fillRect(dst, r, fill.Border, alpha)
			inner = innerBox(r, s.viewW, s.viewH, n.Style.Border)
		}
		fillRect(dst, inner, fill.Color, alpha)
	}
	if label, ok := Component[Label](n); ok {
		if label.Color == (Color{}) {
			label.Color = ColorWhite
		}
		label.Color.A *= alpha
		l := hudLayout{viewW: s.viewW, viewH: s.viewH}
		drawLabel(dst, l.content(n), label)
	}
	for _, c := range sortedChildren(n) {
		s.drawHUD(dst, c, alpha)
	}
}

func fillRect(dst *ebiten.Image, r Rect, c Color, alpha float64) {
	c.A *= alpha
	if c.A <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}
