package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// NewMesh creates a mesh node that uses DrawTriangles for rendering.
// A nil img draws with a shared white pixel so vertex colors and the node's
// Color decide the output.
func NewMesh(name string, img *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{
		Name:      name,
		Type:      NodeTypeMesh,
		MeshImage: img,
		Vertices:  vertices,
		Indices:   indices,
	}
	nodeDefaults(n)
	return n
}

// NewPolygon creates an untextured convex polygon mesh using fan
// triangulation. Color comes from the node's Color field.
func NewPolygon(name string, points []Vec2, c Color) *Node {
	verts, inds := buildPolygonFan(points)
	n := NewMesh(name, nil, verts, inds)
	n.Color = c
	return n
}

// NewRectMesh creates a w x h rectangle mesh centered on the node origin.
func NewRectMesh(name string, w, h float64, c Color) *Node {
	hw, hh := w/2, h/2
	return NewPolygon(name, []Vec2{
		{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh},
	}, c)
}

// NewBoxMesh draws an axonometric box: a front face of size w x h and a
// top and side face of depth d, shaded darker than c.
func NewBoxMesh(name string, w, h, d float64, c Color) *Node {
	hw, hh := w/2, h/2
	front := []Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	top := []Vec2{{-hw, -hh}, {-hw + d, -hh - d}, {hw + d, -hh - d}, {hw, -hh}}
	side := []Vec2{{hw, -hh}, {hw + d, -hh - d}, {hw + d, hh - d}, {hw, hh}}

	var verts []ebiten.Vertex
	var inds []uint16
	for _, face := range []struct {
		pts   []Vec2
		shade float32
	}{{top, 0.85}, {side, 0.65}, {front, 1}} {
		v, i := buildPolygonFan(face.pts)
		base := uint16(len(verts))
		for k := range v {
			v[k].ColorR *= face.shade
			v[k].ColorG *= face.shade
			v[k].ColorB *= face.shade
		}
		for k := range i {
			i[k] += base
		}
		verts = append(verts, v...)
		inds = append(inds, i...)
	}
	n := NewMesh(name, nil, verts, inds)
	n.Color = c
	return n
}

// buildPolygonFan generates vertices and indices for a fan-triangulated polygon.
// N vertices, 3*(N-2) indices. Fewer than three points yields an empty mesh.
func buildPolygonFan(points []Vec2) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr, cg, cb, ca := float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A)
	for i := range src {
		s := &src[i]
		ox, oy := float64(s.DstX), float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// ensureTransformedVerts grows the node's transformedVerts buffer to fit
// len(n.Vertices), never shrinking.
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// meshBounds returns the local-space bounding box of n's vertices.
func meshBounds(n *Node) Rect {
	if len(n.Vertices) == 0 {
		return Rect{}
	}
	minX, minY := float64(n.Vertices[0].DstX), float64(n.Vertices[0].DstY)
	maxX, maxY := minX, minY
	for _, v := range n.Vertices[1:] {
		x, y := float64(v.DstX), float64(v.DstY)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
