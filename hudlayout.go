package sprig

import (
	"github.com/kjk/flex"

	"github.com/phanxgames/sprig/ui"
)

// LayoutHUD computes Node.Layout for root and its subtree from each node's
// ui.Style. A flex.Node tree mirrors the HUD for the pass and the computed
// boxes are copied back in screen space. The root fills the viewport unless
// its style sizes it.
//
// Grid containers are laid out as columns. Gaps become margins between
// in-flow siblings; percent gaps are ignored.
func LayoutHUD(root *Node, viewW, viewH float64) {
	l := hudLayout{viewW: viewW, viewH: viewH}
	box := l.build(root)
	if root.Style.Width.IsAuto() {
		box.fn.StyleSetWidth(float32(viewW))
	}
	if root.Style.Height.IsAuto() {
		box.fn.StyleSetHeight(float32(viewH))
	}
	flex.CalculateLayout(box.fn, float32(viewW), float32(viewH), direction(root.Style.Direction))
	box.read(0, 0)
}

type hudLayout struct {
	viewW, viewH float64
}

// hudBox pairs a HUD node with its flex node for one pass.
type hudBox struct {
	n    *Node
	fn   *flex.Node
	kids []hudBox
}

func (l hudLayout) build(n *Node) hudBox {
	fn := flex.NewNode()
	l.apply(fn, &n.Style)
	if lbl, ok := Component[Label](n); ok && len(n.children) == 0 {
		fn.SetMeasureFunc(func(_ *flex.Node, _ float32, _ flex.MeasureMode, _ float32, _ flex.MeasureMode) flex.Size {
			w, h := lbl.Measure()
			return flex.Size{Width: float32(w), Height: float32(h)}
		})
	}

	box := hudBox{n: n, fn: fn, kids: make([]hudBox, 0, len(n.children))}
	gap, edge := l.gap(n)
	first := true
	for i, c := range n.children {
		kid := l.build(c)
		if gap > 0 && inFlow(c) {
			if !first {
				l.addGap(kid.fn, c.Style.Margin, edge, gap)
			}
			first = false
		}
		fn.InsertChild(kid.fn, i)
		box.kids = append(box.kids, kid)
	}
	return box
}

// read copies computed boxes back, offset by the parent's origin.
func (b hudBox) read(ox, oy float64) {
	if b.n.Style.Display == ui.DisplayNone {
		b.n.Layout = Rect{}
		return
	}
	x := ox + float64(b.fn.LayoutGetLeft())
	y := oy + float64(b.fn.LayoutGetTop())
	b.n.Layout = Rect{
		X:      x,
		Y:      y,
		Width:  float64(b.fn.LayoutGetWidth()),
		Height: float64(b.fn.LayoutGetHeight()),
	}
	for _, k := range b.kids {
		k.read(x, y)
	}
}

func isColumn(st *ui.Style) bool {
	return st.FlexDirection == ui.FlexColumn || st.FlexDirection == ui.FlexColumnReverse ||
		st.Display == ui.DisplayGrid
}

func inFlow(n *Node) bool {
	return n.Style.Display != ui.DisplayNone && n.Style.PositionType != ui.PositionAbsolute
}

// gap returns n's main-axis gap and the edge of each later sibling that
// faces the previous one.
func (l hudLayout) gap(n *Node) (float64, flex.Edge) {
	st := &n.Style
	g, edge := st.ColumnGap, flex.EdgeLeft
	switch {
	case isColumn(st) && st.FlexDirection == ui.FlexColumnReverse:
		g, edge = st.RowGap, flex.EdgeBottom
	case isColumn(st):
		g, edge = st.RowGap, flex.EdgeTop
	case st.FlexDirection == ui.FlexRowReverse:
		edge = flex.EdgeRight
	}
	if g.Kind == ui.ValPercent {
		return 0, edge
	}
	v, _ := g.Resolve(0, l.viewW, l.viewH)
	return v, edge
}

func (l hudLayout) addGap(fn *flex.Node, margin ui.Edges, edge flex.Edge, gap float64) {
	var v ui.Val
	switch edge {
	case flex.EdgeLeft:
		v = margin.Left
	case flex.EdgeRight:
		v = margin.Right
	case flex.EdgeTop:
		v = margin.Top
	default:
		v = margin.Bottom
	}
	if v.Kind == ui.ValPercent {
		return
	}
	m, _ := v.Resolve(0, l.viewW, l.viewH)
	fn.StyleSetMargin(edge, float32(m+gap))
}

// setVal applies v through px, or pct for percentages. Auto keeps the flex
// default; a nil pct drops percentages.
func (l hudLayout) setVal(v ui.Val, px, pct func(float32)) {
	switch v.Kind {
	case ui.ValAuto:
	case ui.ValPercent:
		if pct != nil {
			pct(float32(v.Value))
		}
	default:
		f, _ := v.Resolve(0, l.viewW, l.viewH)
		px(float32(f))
	}
}

func (l hudLayout) setEdges(e ui.Edges, px, pct func(flex.Edge, float32)) {
	for _, side := range [...]struct {
		edge flex.Edge
		v    ui.Val
	}{
		{flex.EdgeLeft, e.Left},
		{flex.EdgeRight, e.Right},
		{flex.EdgeTop, e.Top},
		{flex.EdgeBottom, e.Bottom},
	} {
		edge := side.edge
		var setPct func(float32)
		if pct != nil {
			setPct = func(f float32) { pct(edge, f) }
		}
		l.setVal(side.v, func(f float32) { px(edge, f) }, setPct)
	}
}

// apply maps a concrete style onto fn.
func (l hudLayout) apply(fn *flex.Node, st *ui.Style) {
	if st.Display == ui.DisplayNone {
		fn.StyleSetDisplay(flex.DisplayNone)
	}
	if st.PositionType == ui.PositionAbsolute {
		fn.StyleSetPositionType(flex.PositionTypeAbsolute)
	}
	fn.StyleSetDirection(direction(st.Direction))

	l.setVal(st.Left, func(f float32) { fn.StyleSetPosition(flex.EdgeLeft, f) }, func(f float32) { fn.StyleSetPositionPercent(flex.EdgeLeft, f) })
	l.setVal(st.Right, func(f float32) { fn.StyleSetPosition(flex.EdgeRight, f) }, func(f float32) { fn.StyleSetPositionPercent(flex.EdgeRight, f) })
	l.setVal(st.Top, func(f float32) { fn.StyleSetPosition(flex.EdgeTop, f) }, func(f float32) { fn.StyleSetPositionPercent(flex.EdgeTop, f) })
	l.setVal(st.Bottom, func(f float32) { fn.StyleSetPosition(flex.EdgeBottom, f) }, func(f float32) { fn.StyleSetPositionPercent(flex.EdgeBottom, f) })

	l.setVal(st.Width, fn.StyleSetWidth, fn.StyleSetWidthPercent)
	l.setVal(st.Height, fn.StyleSetHeight, fn.StyleSetHeightPercent)
	l.setVal(st.MinWidth, fn.StyleSetMinWidth, fn.StyleSetMinWidthPercent)
	l.setVal(st.MinHeight, fn.StyleSetMinHeight, fn.StyleSetMinHeightPercent)
	l.setVal(st.MaxWidth, fn.StyleSetMaxWidth, fn.StyleSetMaxWidthPercent)
	l.setVal(st.MaxHeight, fn.StyleSetMaxHeight, fn.StyleSetMaxHeightPercent)
	if st.AspectRatio != nil && *st.AspectRatio > 0 {
		fn.StyleSetAspectRatio(float32(*st.AspectRatio))
	}

	l.setEdges(st.Margin, fn.StyleSetMargin, fn.StyleSetMarginPercent)
	l.setEdges(st.Padding, fn.StyleSetPadding, fn.StyleSetPaddingPercent)
	l.setEdges(st.Border, fn.StyleSetBorder, nil)

	fn.StyleSetFlexDirection(flexDirection(st))
	fn.StyleSetFlexWrap(flexWrap(st.FlexWrap))
	fn.StyleSetJustifyContent(justify(st.JustifyContent))
	fn.StyleSetAlignItems(alignItems(st.AlignItems))
	fn.StyleSetAlignSelf(alignSelf(st.AlignSelf))
	fn.StyleSetAlignContent(alignContent(st.AlignContent))
	fn.StyleSetFlexGrow(float32(st.FlexGrow))
	fn.StyleSetFlexShrink(float32(st.FlexShrink))
	l.setVal(st.FlexBasis, fn.StyleSetFlexBasis, fn.StyleSetFlexBasisPercent)
}

func direction(d ui.Direction) flex.Direction {
	if d == ui.DirectionRightToLeft {
		return flex.DirectionRTL
	}
	return flex.DirectionLTR
}

func flexDirection(st *ui.Style) flex.FlexDirection {
	switch {
	case st.Display == ui.DisplayGrid:
		return flex.FlexDirectionColumn
	case st.FlexDirection == ui.FlexColumn:
		return flex.FlexDirectionColumn
	case st.FlexDirection == ui.FlexColumnReverse:
		return flex.FlexDirectionColumnReverse
	case st.FlexDirection == ui.FlexRowReverse:
		return flex.FlexDirectionRowReverse
	default:
		return flex.FlexDirectionRow
	}
}

func flexWrap(w ui.FlexWrap) flex.Wrap {
	switch w {
	case ui.Wrap:
		return flex.WrapWrap
	case ui.WrapReverse:
		return flex.WrapWrapReverse
	default:
		return flex.WrapNoWrap
	}
}

// justify maps JustifyContent. SpaceEvenly falls back to SpaceAround.
func justify(j ui.JustifyContent) flex.Justify {
	switch j {
	case ui.JustifyContentCenter:
		return flex.JustifyCenter
	case ui.JustifyContentEnd, ui.JustifyContentFlexEnd:
		return flex.JustifyFlexEnd
	case ui.JustifyContentSpaceBetween:
		return flex.JustifySpaceBetween
	case ui.JustifyContentSpaceAround, ui.JustifyContentSpaceEvenly:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyFlexStart
	}
}

func alignItems(a ui.AlignItems) flex.Align {
	switch a {
	case ui.AlignItemsStart, ui.AlignItemsFlexStart:
		return flex.AlignFlexStart
	case ui.AlignItemsEnd, ui.AlignItemsFlexEnd:
		return flex.AlignFlexEnd
	case ui.AlignItemsCenter:
		return flex.AlignCenter
	case ui.AlignItemsBaseline:
		return flex.AlignBaseline
	default:
		return flex.AlignStretch
	}
}

func alignSelf(a ui.AlignSelf) flex.Align {
	switch a {
	case ui.AlignSelfStart, ui.AlignSelfFlexStart:
		return flex.AlignFlexStart
	case ui.AlignSelfEnd, ui.AlignSelfFlexEnd:
		return flex.AlignFlexEnd
	case ui.AlignSelfCenter:
		return flex.AlignCenter
	case ui.AlignSelfBaseline:
		return flex.AlignBaseline
	case ui.AlignSelfStretch:
		return flex.AlignStretch
	default:
		return flex.AlignAuto
	}
}

// alignContent maps AlignContent. Space distributions fall back to
// flex-start.
func alignContent(a ui.AlignContent) flex.Align {
	switch a {
	case ui.AlignContentEnd, ui.AlignContentFlexEnd:
		return flex.AlignFlexEnd
	case ui.AlignContentCenter:
		return flex.AlignCenter
	case ui.AlignContentStretch:
		return flex.AlignStretch
	default:
		return flex.AlignFlexStart
	}
}

func (l hudLayout) edges(e ui.Edges, parentW float64) (left, right, top, bottom float64) {
	// Percent edges resolve against the parent's width on both axes.
	left, _ = e.Left.Resolve(parentW, l.viewW, l.viewH)
	right, _ = e.Right.Resolve(parentW, l.viewW, l.viewH)
	top, _ = e.Top.Resolve(parentW, l.viewW, l.viewH)
	bottom, _ = e.Bottom.Resolve(parentW, l.viewW, l.viewH)
	return
}

// innerBox shrinks r by the edges e.
func innerBox(r Rect, viewW, viewH float64, e ui.Edges) Rect {
	l := hudLayout{viewW: viewW, viewH: viewH}
	left, right, top, bottom := l.edges(e, r.Width)
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

// content returns the box inside border and padding, where labels draw.
func (l hudLayout) content(n *Node) Rect {
	r := innerBox(n.Layout, l.viewW, l.viewH, n.Style.Border)
	return innerBox(r, l.viewW, l.viewH, n.Style.Padding)
}
