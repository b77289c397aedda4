package sprig

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextAlign controls horizontal placement of a label inside its box.
type TextAlign uint8

const (
	TextAlignCenter TextAlign = iota
	TextAlignLeft
	TextAlignRight
)

// Label is a HUD payload that draws a line of text centered in its node's
// layout box. Labels also give auto-sized nodes an intrinsic size.
type Label struct {
	Text  string
	Color Color
	// Scale multiplies the 7x13 bitmap font. Zero means 1.
	Scale float64
	Align TextAlign
}

const labelLineSpacing = 15

var labelFace text.Face

// face returns the shared bitmap face.
func face() text.Face {
	if labelFace == nil {
		labelFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return labelFace
}

func (l Label) scale() float64 {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

// Measure returns the label's size in pixels.
func (l Label) Measure() (w, h float64) {
	if l.Text == "" {
		return 0, 0
	}
	// basicfont is fixed-width, so measuring lines is enough.
	lines := strings.Split(l.Text, "\n")
	for _, line := range lines {
		w = max(w, float64(len([]rune(line))*basicfont.Face7x13.Advance))
	}
	h = float64(len(lines)-1)*labelLineSpacing + float64(basicfont.Face7x13.Height)
	s := l.scale()
	return w * s, h * s
}

// drawLabel draws l inside box.
func drawLabel(dst *ebiten.Image, box Rect, l Label) {
	if l.Text == "" {
		return
	}
	s := l.scale()
	w, h := l.Measure()
	x := box.X + (box.Width-w)/2
	switch l.Align {
	case TextAlignLeft:
		x = box.X
	case TextAlignRight:
		x = box.X + box.Width - w
	}
	y := box.Y + (box.Height-h)/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.LineSpacing = labelLineSpacing
	c := l.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(dst, l.Text, face(), op)
}
