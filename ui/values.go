package ui

import (
	"fmt"
	"math"
)

// ValKind selects the unit of a Val.
type ValKind uint8

const (
	ValAuto    ValKind = iota // sized by the layout engine
	ValPx                     // logical pixels
	ValPercent                // percent of the parent's size on the same axis
	ValVw                     // percent of the viewport width
	ValVh                     // percent of the viewport height
	ValVMin                   // percent of the viewport's smaller side
	ValVMax                   // percent of the viewport's larger side
)

// Val is a length in one of the ValKind units. The zero Val is Auto.
type Val struct {
	Kind  ValKind
	Value float64
}

// Auto is the Val the layout engine sizes itself.
var Auto = Val{Kind: ValAuto}

// Px returns a length in logical pixels.
func Px(v float64) Val { return Val{Kind: ValPx, Value: v} }

// Percent returns a length relative to the parent.
func Percent(v float64) Val { return Val{Kind: ValPercent, Value: v} }

// Vw returns a length relative to the viewport width.
func Vw(v float64) Val { return Val{Kind: ValVw, Value: v} }

// Vh returns a length relative to the viewport height.
func Vh(v float64) Val { return Val{Kind: ValVh, Value: v} }

// VMin returns a length relative to the viewport's smaller side.
func VMin(v float64) Val { return Val{Kind: ValVMin, Value: v} }

// VMax returns a length relative to the viewport's larger side.
func VMax(v float64) Val { return Val{Kind: ValVMax, Value: v} }

// IsAuto reports whether v is Auto.
func (v Val) IsAuto() bool { return v.Kind == ValAuto }

// Resolve converts v to pixels. parent is the parent's size on the same axis,
// viewW and viewH the viewport size. ok is false for Auto.
func (v Val) Resolve(parent, viewW, viewH float64) (px float64, ok bool) {
	switch v.Kind {
	case ValPx:
		return v.Value, true
	case ValPercent:
		return parent * v.Value / 100, true
	case ValVw:
		return viewW * v.Value / 100, true
	case ValVh:
		return viewH * v.Value / 100, true
	case ValVMin:
		return math.Min(viewW, viewH) * v.Value / 100, true
	case ValVMax:
		return math.Max(viewW, viewH) * v.Value / 100, true
	default:
		return 0, false
	}
}

func (v Val) String() string {
	switch v.Kind {
	case ValPx:
		return fmt.Sprintf("%gpx", v.Value)
	case ValPercent:
		return fmt.Sprintf("%g%%", v.Value)
	case ValVw:
		return fmt.Sprintf("%gvw", v.Value)
	case ValVh:
		return fmt.Sprintf("%gvh", v.Value)
	case ValVMin:
		return fmt.Sprintf("%gvmin", v.Value)
	case ValVMax:
		return fmt.Sprintf("%gvmax", v.Value)
	default:
		return "auto"
	}
}

// Edges holds one Val per side of a box (margin, padding, border).
type Edges struct {
	Left, Right, Top, Bottom Val
}

// EdgesAll returns Edges with v on every side.
func EdgesAll(v Val) Edges { return Edges{Left: v, Right: v, Top: v, Bottom: v} }

// EdgesAxes returns Edges with h on the left and right and v on top and bottom.
func EdgesAxes(h, v Val) Edges { return Edges{Left: h, Right: h, Top: v, Bottom: v} }

// Display selects the layout algorithm for a node's children.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayNone // hidden, laid out as if absent
)

// PositionType controls whether a node is laid out in-flow.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// OverflowAxis controls clipping on one axis.
type OverflowAxis uint8

const (
	OverflowVisible OverflowAxis = iota
	OverflowClip
)

// Overflow is the per-axis clipping behavior.
type Overflow struct {
	X, Y OverflowAxis
}

// Direction is the text direction.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

// AlignItems is the default cross-axis alignment of children.
type AlignItems uint8

const (
	AlignItemsDefault AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// JustifyItems is the default inline-axis alignment of grid children.
type JustifyItems uint8

const (
	JustifyItemsDefault JustifyItems = iota
	JustifyItemsStart
	JustifyItemsEnd
	JustifyItemsCenter
	JustifyItemsBaseline
	JustifyItemsStretch
)

// AlignSelf overrides the parent's AlignItems for one node.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// JustifySelf overrides the parent's JustifyItems for one node.
type JustifySelf uint8

const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfStart
	JustifySelfEnd
	JustifySelfCenter
	JustifySelfBaseline
	JustifySelfStretch
)

// AlignContent distributes lines (flex) or rows (grid).
type AlignContent uint8

const (
	AlignContentDefault AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceEvenly
	AlignContentSpaceAround
)

// JustifyContent distributes items on the main axis (flex) or columns (grid).
type JustifyContent uint8

const (
	JustifyContentDefault JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentStretch
	JustifyContentSpaceBetween
	JustifyContentSpaceEvenly
	JustifyContentSpaceAround
)

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

// FlexWrap controls wrapping of flex items onto multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// GridAutoFlow controls auto-placement of grid items.
type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

// TrackKind is the sizing function of a grid track.
type TrackKind uint8

const (
	TrackAuto TrackKind = iota
	TrackPx
	TrackPercent
	TrackFr
	TrackMinContent
	TrackMaxContent
)

// GridTrack sizes one grid row or column.
type GridTrack struct {
	Kind  TrackKind
	Value float64
}

// Fr returns a flexible track taking v shares of the free space.
func Fr(v float64) GridTrack { return GridTrack{Kind: TrackFr, Value: v} }

// TrackOfPx returns a fixed track of v pixels.
func TrackOfPx(v float64) GridTrack { return GridTrack{Kind: TrackPx, Value: v} }

// RepeatedGridTrack repeats Tracks Count times in a grid template.
type RepeatedGridTrack struct {
	Count  int
	Tracks []GridTrack
}

// Repeat returns a RepeatedGridTrack.
func Repeat(count int, tracks ...GridTrack) RepeatedGridTrack {
	return RepeatedGridTrack{Count: count, Tracks: tracks}
}

// GridPlacement is the line a grid item starts on and how many tracks it
// spans. Start 0 means auto-placed.
type GridPlacement struct {
	Start int
	Span  int
}

// GridAuto returns an auto-placed item spanning one track.
func GridAuto() GridPlacement { return GridPlacement{Span: 1} }

// GridSpan returns an auto-placed item spanning n tracks.
func GridSpan(n int) GridPlacement { return GridPlacement{Span: n} }

// GridStartSpan returns an item starting at line start spanning n tracks.
func GridStartSpan(start, n int) GridPlacement { return GridPlacement{Start: start, Span: n} }
