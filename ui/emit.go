package ui

import "slices"

// EmittedNode binds one LayoutNode to the host node created for it and to
// the description resolved for it at emission time.
type EmittedNode[H comparable] struct {
	Name   string
	Tags   []string
	Handle H
	Style  Description
	// Parent is the handle of the parent's host node. Valid when HasParent.
	Parent    H
	HasParent bool
	// Depth is 0 for the root.
	Depth int
}

// HasTag reports whether tag is one of the node's tags.
func (e EmittedNode[H]) HasTag(tag string) bool {
	return containsTag(e.Tags, tag)
}

type pending[H comparable] struct {
	node      *LayoutNode
	parent    H
	hasParent bool
	depth     int
}

// Emit walks the builder's tree breadth-first and creates one host node per
// layout node in sink. A node's host node, and its link to its parent, exist
// before any of its children are created; siblings are created in
// declaration order. Styles are resolved but not written: call
// Session.Commit once payloads are attached.
func Emit[H comparable](b GuiBuilder, sink Sink[H]) *Session[H] {
	nodes := make([]EmittedNode[H], 0, b.root.Len())
	queue := []pending[H]{{node: b.root}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		style := b.Resolve(p.node)
		h := sink.CreateNode()
		if p.hasParent {
			sink.SetParent(h, p.parent)
		}
		for _, c := range p.node.children {
			queue = append(queue, pending[H]{node: c, parent: h, hasParent: true, depth: p.depth + 1})
		}
		nodes = append(nodes, EmittedNode[H]{
			Name:      p.node.name,
			Tags:      slices.Clone(p.node.tags),
			Handle:    h,
			Style:     style,
			Parent:    p.parent,
			HasParent: p.hasParent,
			Depth:     p.depth,
		})
	}
	return &Session[H]{nodes: nodes, sink: sink}
}
