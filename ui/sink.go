package ui

// Sink is the scene graph capability emission writes into. H is the host's
// node handle: a scene node ID, an ECS entity, or anything comparable.
//
// The host owns node lifetimes. A handle may stop being Alive at any time;
// emission skips such nodes instead of failing.
type Sink[H comparable] interface {
	// CreateNode creates one parentless node and returns its handle.
	CreateNode() H
	// SetParent makes parent the only parent of child. A later call re-parents.
	SetParent(child, parent H)
	// AttachData stores payload on h, replacing any payload of the same
	// dynamic type.
	AttachData(h H, payload any)
	// SetStyle replaces the style of h.
	SetStyle(h H, style Style)
	// Alive reports whether h still refers to a live node.
	Alive(h H) bool
}
