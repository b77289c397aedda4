package ui

import (
	"fmt"
	"slices"
)

// MaxDepth bounds the nesting of a layout literal. Deeper trees are treated
// as a construction bug.
const MaxDepth = 256

// Spec is one node of a declarative layout literal. Build literals with Leaf
// and Branch, then convert them with BuildTree.
type Spec struct {
	Name     string
	Tags     []string
	Children []Spec
}

// Leaf returns a childless node literal.
func Leaf(name string, tags ...string) Spec {
	return Spec{Name: name, Tags: tags}
}

// Branch returns a node literal with children.
func Branch(name string, tags []string, children ...Spec) Spec {
	return Spec{Name: name, Tags: tags, Children: children}
}

// Tags is a readability helper for Branch literals: Branch("menu", Tags("column"), ...).
func Tags(tags ...string) []string {
	return tags
}

// LayoutNode is one immutable node of a layout tree. Names and tags are
// selector keys, not identities: duplicates are legal.
type LayoutNode struct {
	name     string
	tags     []string
	children []*LayoutNode
}

// BuildTree copies a layout literal into a LayoutNode tree. The literal can
// be reused or modified afterwards without affecting the tree.
// Panics if the literal nests deeper than MaxDepth.
func BuildTree(spec Spec) *LayoutNode {
	return buildNode(spec, 0)
}

func buildNode(spec Spec, depth int) *LayoutNode {
	if depth >= MaxDepth {
		panic(fmt.Sprintf("ui: layout nested deeper than %d (at node %q)", MaxDepth, spec.Name))
	}
	n := &LayoutNode{
		name: spec.Name,
		tags: append([]string(nil), spec.Tags...),
	}
	if len(spec.Children) > 0 {
		n.children = make([]*LayoutNode, len(spec.Children))
		for i, c := range spec.Children {
			n.children[i] = buildNode(c, depth+1)
		}
	}
	return n
}

// Name returns the node's name.
func (n *LayoutNode) Name() string { return n.name }

// Tags returns the node's tags in declaration order. The returned slice MUST
// NOT be mutated.
func (n *LayoutNode) Tags() []string { return n.tags }

// Children returns the node's children. The returned slice MUST NOT be mutated.
func (n *LayoutNode) Children() []*LayoutNode { return n.children }

// HasTag reports whether tag is one of the node's tags.
func (n *LayoutNode) HasTag(tag string) bool {
	return containsTag(n.tags, tag)
}

// Len returns the number of nodes in the subtree rooted at n.
func (n *LayoutNode) Len() int {
	count := 1
	for _, c := range n.children {
		count += c.Len()
	}
	return count
}

// Walk calls fn for n and every descendant in depth-first pre-order, passing
// the depth relative to n.
func (n *LayoutNode) Walk(fn func(node *LayoutNode, depth int)) {
	n.walk(fn, 0)
}

func (n *LayoutNode) walk(fn func(*LayoutNode, int), depth int) {
	fn(n, depth)
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

func (n *LayoutNode) String() string {
	return fmt.Sprintf("%s%v (%d children)", n.name, n.tags, len(n.children))
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// --- Script builder ---

type scriptEntry struct {
	indent int
	name   string
	tags   []string
}

// LayoutScript describes a tree as a flat list of nodes with explicit
// nesting calls:
//
//	tree := ui.StartLayout().
//		Node("root").
//		StartChildren().
//		Node("menu", "column").
//		Finish()
//
// A LayoutScript is a value: each call returns the updated script and
// leaves the receiver untouched, so a shared prefix can be branched.
type LayoutScript struct {
	entries []scriptEntry
	indent  int
}

// StartLayout returns an empty LayoutScript.
func StartLayout() LayoutScript {
	return LayoutScript{}
}

// Node appends a node at the current nesting depth.
func (s LayoutScript) Node(name string, tags ...string) LayoutScript {
	s.entries = append(slices.Clip(s.entries), scriptEntry{
		indent: s.indent,
		name:   name,
		tags:   append([]string(nil), tags...),
	})
	return s
}

// StartChildren nests subsequent nodes under the last node.
// Panics if no node was added since the previous StartChildren.
func (s LayoutScript) StartChildren() LayoutScript {
	last := -1
	if len(s.entries) > 0 {
		last = s.entries[len(s.entries)-1].indent
	}
	if s.indent > last {
		panic("ui: StartChildren needs a node to nest under; add at least one node between calls")
	}
	s.indent++
	return s
}

// EndChildren returns to the parent's nesting depth.
// Panics when already at depth zero.
func (s LayoutScript) EndChildren() LayoutScript {
	if s.indent <= 0 {
		panic("ui: EndChildren below depth zero; a layout has a single root")
	}
	s.indent--
	return s
}

// Finish converts the script into a LayoutNode tree. Unclosed StartChildren
// calls are closed implicitly.
// Panics if the script is empty or does not describe exactly one root.
func (s LayoutScript) Finish() *LayoutNode {
	if len(s.entries) == 0 {
		panic("ui: Finish on an empty layout")
	}
	if s.entries[0].indent != 0 {
		panic("ui: layout must start with a root node")
	}
	root := &LayoutNode{name: s.entries[0].name, tags: s.entries[0].tags}
	// stack[i] is the most recent node at indent i.
	stack := []*LayoutNode{root}
	for _, e := range s.entries[1:] {
		if e.indent == 0 {
			panic(fmt.Sprintf("ui: second root %q; a layout has a single root", e.name))
		}
		if e.indent > len(stack) {
			panic(fmt.Sprintf("ui: node %q nested more than one level below its parent", e.name))
		}
		if e.indent >= MaxDepth {
			panic(fmt.Sprintf("ui: layout nested deeper than %d (at node %q)", MaxDepth, e.name))
		}
		n := &LayoutNode{name: e.name, tags: e.tags}
		parent := stack[e.indent-1]
		parent.children = append(parent.children, n)
		stack = append(stack[:e.indent], n)
	}
	return root
}
