package ui

import "maps"

// GuiBuilder pairs a layout tree with three stores of style rules: a theme
// applied to every node, rules keyed by node name, and rules keyed by tag.
//
// GuiBuilder is a value. Every Style* call returns an updated builder and
// leaves the receiver untouched, so a partially configured builder can be
// shared and extended in different directions.
type GuiBuilder struct {
	root   *LayoutNode
	theme  Description
	byName map[string]Description
	byTag  map[string]Description
}

// NewGuiBuilder returns a builder for root with no style rules.
// Panics if root is nil.
func NewGuiBuilder(root *LayoutNode) GuiBuilder {
	if root == nil {
		panic("ui: NewGuiBuilder with nil root")
	}
	return GuiBuilder{root: root}
}

// Root returns the layout tree.
func (b GuiBuilder) Root() *LayoutNode { return b.root }

// Theme returns the rule applied to every node.
func (b GuiBuilder) Theme() Description { return b.theme }

// NameRule returns the rule for nodes called name, if any.
func (b GuiBuilder) NameRule(name string) (Description, bool) {
	d, ok := b.byName[name]
	return d, ok
}

// TagRule returns the rule for nodes tagged tag, if any.
func (b GuiBuilder) TagRule(tag string) (Description, bool) {
	d, ok := b.byTag[tag]
	return d, ok
}

// StyleAll merges d into the theme.
func (b GuiBuilder) StyleAll(d Description) GuiBuilder {
	b.theme = b.theme.Merge(d)
	return b
}

// StyleByName merges d into the rule for nodes called name, creating the
// rule if it does not exist yet. Every node with that name matches.
func (b GuiBuilder) StyleByName(name string, d Description) GuiBuilder {
	b.byName = mergeRule(b.byName, name, d)
	return b
}

// StyleByTag merges d into the rule for nodes tagged tag, creating the rule
// if it does not exist yet. Tag rules and name rules live in separate
// tables even when a tag and a name share the same string.
func (b GuiBuilder) StyleByTag(tag string, d Description) GuiBuilder {
	b.byTag = mergeRule(b.byTag, tag, d)
	return b
}

// mergeRule copies rules before writing so builder values never alias.
func mergeRule(rules map[string]Description, key string, d Description) map[string]Description {
	next := maps.Clone(rules)
	if next == nil {
		next = make(map[string]Description, 1)
	}
	if existing, ok := next[key]; ok {
		next[key] = existing.Merge(d)
	} else {
		next[key] = d
	}
	return next
}

// Resolve computes the effective description of n: the theme, then each tag
// rule in the order the node lists its tags, then the name rule. Later rules
// win on every attribute they set.
func (b GuiBuilder) Resolve(n *LayoutNode) Description {
	d := b.theme
	for _, tag := range n.tags {
		if rule, ok := b.byTag[tag]; ok {
			d = d.Merge(rule)
		}
	}
	if rule, ok := b.byName[n.name]; ok {
		d = d.Merge(rule)
	}
	return d
}
