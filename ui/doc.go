// Package ui builds HUD node trees declaratively and resolves their styles.
//
// A layout is described as a tree of named, tagged nodes, either as a
// literal or as a flat script with explicit nesting:
//
//	tree := ui.BuildTree(ui.Branch("root", nil,
//		ui.Leaf("play", "btn"),
//		ui.Leaf("quit", "btn"),
//	))
//
// Style rules are attached to a [GuiBuilder] globally, by node name, or by
// tag. Each node's effective style is the cascade
//
//	theme -> tag rules (in the node's tag order) -> name rule
//
// where a later rule overrides an earlier one on every attribute it sets and
// unset attributes never override anything.
//
//	b := ui.NewGuiBuilder(tree).
//		StyleAll(ui.Description{Width: ui.Ptr(ui.Percent(50))}).
//		StyleByTag("btn", ui.Description{Width: ui.Ptr(ui.Px(100))})
//
// [Emit] materializes the tree into any host implementing [Sink], and the
// returned [Session] attaches host payloads to nodes selected by name or tag
// before committing the resolved styles:
//
//	ui.Emit(b, sink).
//		AttachByTag("btn", ButtonMarker{}).
//		Commit()
//
// The package never computes box sizes or positions; the concrete [Style] is
// handed to the host's layout engine as is.
package ui
