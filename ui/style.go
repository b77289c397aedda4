package ui

// Description is a sparse set of layout attributes. A nil field means "no
// opinion": it never overrides a value set by an earlier rule. Descriptions
// are treated as values; the pointers they hold are never written through.
type Description struct {
	Display      *Display
	PositionType *PositionType
	Overflow     *Overflow
	Direction    *Direction

	Left   *Val
	Right  *Val
	Top    *Val
	Bottom *Val

	Width     *Val
	Height    *Val
	MinWidth  *Val
	MinHeight *Val
	MaxWidth  *Val
	MaxHeight *Val

	// AspectRatio is width / height.
	AspectRatio *float64

	AlignItems     *AlignItems
	JustifyItems   *JustifyItems
	AlignSelf      *AlignSelf
	JustifySelf    *JustifySelf
	AlignContent   *AlignContent
	JustifyContent *JustifyContent

	Margin  *Edges
	Padding *Edges
	Border  *Edges

	FlexDirection *FlexDirection
	FlexWrap      *FlexWrap
	FlexGrow      *float64
	FlexShrink    *float64
	FlexBasis     *Val

	RowGap    *Val
	ColumnGap *Val

	GridAutoFlow        *GridAutoFlow
	GridTemplateRows    []RepeatedGridTrack
	GridTemplateColumns []RepeatedGridTrack
	GridAutoRows        []GridTrack
	GridAutoColumns     []GridTrack
	GridRow             *GridPlacement
	GridColumn          *GridPlacement
}

// Ptr returns a pointer to v. It keeps Description literals short:
//
//	ui.Description{Width: ui.Ptr(ui.Px(320))}
func Ptr[T any](v T) *T {
	return &v
}

// Merge returns base with every attribute set in override replacing the
// corresponding attribute of base. Attributes are atomic: a set Margin
// replaces all four edges.
func Merge(base, override Description) Description {
	return base.Merge(override)
}

// Merge returns d overridden by other. See the package-level Merge.
func (d Description) Merge(other Description) Description {
	r := d
	r.Display = pick(d.Display, other.Display)
	r.PositionType = pick(d.PositionType, other.PositionType)
	r.Overflow = pick(d.Overflow, other.Overflow)
	r.Direction = pick(d.Direction, other.Direction)
	r.Left = pick(d.Left, other.Left)
	r.Right = pick(d.Right, other.Right)
	r.Top = pick(d.Top, other.Top)
	r.Bottom = pick(d.Bottom, other.Bottom)
	r.Width = pick(d.Width, other.Width)
	r.Height = pick(d.Height, other.Height)
	r.MinWidth = pick(d.MinWidth, other.MinWidth)
	r.MinHeight = pick(d.MinHeight, other.MinHeight)
	r.MaxWidth = pick(d.MaxWidth, other.MaxWidth)
	r.MaxHeight = pick(d.MaxHeight, other.MaxHeight)
	r.AspectRatio = pick(d.AspectRatio, other.AspectRatio)
	r.AlignItems = pick(d.AlignItems, other.AlignItems)
	r.JustifyItems = pick(d.JustifyItems, other.JustifyItems)
	r.AlignSelf = pick(d.AlignSelf, other.AlignSelf)
	r.JustifySelf = pick(d.JustifySelf, other.JustifySelf)
	r.AlignContent = pick(d.AlignContent, other.AlignContent)
	r.JustifyContent = pick(d.JustifyContent, other.JustifyContent)
	r.Margin = pick(d.Margin, other.Margin)
	r.Padding = pick(d.Padding, other.Padding)
	r.Border = pick(d.Border, other.Border)
	r.FlexDirection = pick(d.FlexDirection, other.FlexDirection)
	r.FlexWrap = pick(d.FlexWrap, other.FlexWrap)
	r.FlexGrow = pick(d.FlexGrow, other.FlexGrow)
	r.FlexShrink = pick(d.FlexShrink, other.FlexShrink)
	r.FlexBasis = pick(d.FlexBasis, other.FlexBasis)
	r.RowGap = pick(d.RowGap, other.RowGap)
	r.ColumnGap = pick(d.ColumnGap, other.ColumnGap)
	r.GridAutoFlow = pick(d.GridAutoFlow, other.GridAutoFlow)
	r.GridTemplateRows = pickSlice(d.GridTemplateRows, other.GridTemplateRows)
	r.GridTemplateColumns = pickSlice(d.GridTemplateColumns, other.GridTemplateColumns)
	r.GridAutoRows = pickSlice(d.GridAutoRows, other.GridAutoRows)
	r.GridAutoColumns = pickSlice(d.GridAutoColumns, other.GridAutoColumns)
	r.GridRow = pick(d.GridRow, other.GridRow)
	r.GridColumn = pick(d.GridColumn, other.GridColumn)
	return r
}

func pick[T any](base, next *T) *T {
	if next != nil {
		return next
	}
	return base
}

// pickSlice treats a nil slice as unset. An empty non-nil slice is a set
// value ("no tracks") and overrides.
func pickSlice[T any](base, next []T) []T {
	if next != nil {
		return next
	}
	return base
}

// IsEmpty reports whether no attribute is set.
func (d Description) IsEmpty() bool {
	return d.Display == nil && d.PositionType == nil && d.Overflow == nil && d.Direction == nil &&
		d.Left == nil && d.Right == nil && d.Top == nil && d.Bottom == nil &&
		d.Width == nil && d.Height == nil && d.MinWidth == nil && d.MinHeight == nil &&
		d.MaxWidth == nil && d.MaxHeight == nil && d.AspectRatio == nil &&
		d.AlignItems == nil && d.JustifyItems == nil && d.AlignSelf == nil && d.JustifySelf == nil &&
		d.AlignContent == nil && d.JustifyContent == nil &&
		d.Margin == nil && d.Padding == nil && d.Border == nil &&
		d.FlexDirection == nil && d.FlexWrap == nil && d.FlexGrow == nil && d.FlexShrink == nil &&
		d.FlexBasis == nil && d.RowGap == nil && d.ColumnGap == nil &&
		d.GridAutoFlow == nil && d.GridTemplateRows == nil && d.GridTemplateColumns == nil &&
		d.GridAutoRows == nil && d.GridAutoColumns == nil && d.GridRow == nil && d.GridColumn == nil
}

// Style is the fully populated style handed to the host layout engine.
type Style struct {
	Display      Display
	PositionType PositionType
	Overflow     Overflow
	Direction    Direction

	Left, Right, Top, Bottom Val

	Width, Height       Val
	MinWidth, MinHeight Val
	MaxWidth, MaxHeight Val

	// AspectRatio stays optional in the concrete style: nil means none.
	AspectRatio *float64

	AlignItems     AlignItems
	JustifyItems   JustifyItems
	AlignSelf      AlignSelf
	JustifySelf    JustifySelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	Margin, Padding, Border Edges

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float64
	FlexShrink    float64
	FlexBasis     Val

	RowGap, ColumnGap Val

	GridAutoFlow        GridAutoFlow
	GridTemplateRows    []RepeatedGridTrack
	GridTemplateColumns []RepeatedGridTrack
	GridAutoRows        []GridTrack
	GridAutoColumns     []GridTrack
	GridRow             GridPlacement
	GridColumn          GridPlacement
}

// DefaultStyle returns the layout engine's default for every attribute.
func DefaultStyle() Style {
	return Style{
		Display:       DisplayFlex,
		PositionType:  PositionRelative,
		Overflow:      Overflow{X: OverflowVisible, Y: OverflowVisible},
		Direction:     DirectionInherit,
		Left:          Auto,
		Right:         Auto,
		Top:           Auto,
		Bottom:        Auto,
		Width:         Auto,
		Height:        Auto,
		MinWidth:      Auto,
		MinHeight:     Auto,
		MaxWidth:      Auto,
		MaxHeight:     Auto,
		Margin:        EdgesAll(Px(0)),
		Padding:       EdgesAll(Px(0)),
		Border:        EdgesAll(Px(0)),
		FlexDirection: FlexRow,
		FlexWrap:      NoWrap,
		FlexGrow:      0,
		FlexShrink:    1,
		FlexBasis:     Auto,
		RowGap:        Px(0),
		ColumnGap:     Px(0),
		GridAutoFlow:  GridAutoFlowRow,
		GridRow:       GridAuto(),
		GridColumn:    GridAuto(),
	}
}

// Style converts d to a concrete style, filling every unset attribute with
// its DefaultStyle value.
func (d Description) Style() Style {
	s := DefaultStyle()
	fill(&s.Display, d.Display)
	fill(&s.PositionType, d.PositionType)
	fill(&s.Overflow, d.Overflow)
	fill(&s.Direction, d.Direction)
	fill(&s.Left, d.Left)
	fill(&s.Right, d.Right)
	fill(&s.Top, d.Top)
	fill(&s.Bottom, d.Bottom)
	fill(&s.Width, d.Width)
	fill(&s.Height, d.Height)
	fill(&s.MinWidth, d.MinWidth)
	fill(&s.MinHeight, d.MinHeight)
	fill(&s.MaxWidth, d.MaxWidth)
	fill(&s.MaxHeight, d.MaxHeight)
	if d.AspectRatio != nil {
		s.AspectRatio = Ptr(*d.AspectRatio)
	}
	fill(&s.AlignItems, d.AlignItems)
	fill(&s.JustifyItems, d.JustifyItems)
	fill(&s.AlignSelf, d.AlignSelf)
	fill(&s.JustifySelf, d.JustifySelf)
	fill(&s.AlignContent, d.AlignContent)
	fill(&s.JustifyContent, d.JustifyContent)
	fill(&s.Margin, d.Margin)
	fill(&s.Padding, d.Padding)
	fill(&s.Border, d.Border)
	fill(&s.FlexDirection, d.FlexDirection)
	fill(&s.FlexWrap, d.FlexWrap)
	fill(&s.FlexGrow, d.FlexGrow)
	fill(&s.FlexShrink, d.FlexShrink)
	fill(&s.FlexBasis, d.FlexBasis)
	fill(&s.RowGap, d.RowGap)
	fill(&s.ColumnGap, d.ColumnGap)
	fill(&s.GridAutoFlow, d.GridAutoFlow)
	s.GridTemplateRows = append([]RepeatedGridTrack(nil), d.GridTemplateRows...)
	s.GridTemplateColumns = append([]RepeatedGridTrack(nil), d.GridTemplateColumns...)
	s.GridAutoRows = append([]GridTrack(nil), d.GridAutoRows...)
	s.GridAutoColumns = append([]GridTrack(nil), d.GridAutoColumns...)
	fill(&s.GridRow, d.GridRow)
	fill(&s.GridColumn, d.GridColumn)
	return s
}

func fill[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
