package sprig

import (
	"github.com/phanxgames/sprig/ui"
)

// Interactive is a HUD payload that makes a node receive pointer events.
type Interactive struct{}

// UISink adapts a Scene to ui.Sink. Handles are node IDs.
type UISink struct {
	scene *Scene
}

var _ ui.Sink[uint32] = UISink{}

// UISink returns a sink that materializes emitted UI trees as HUD nodes.
func (s *Scene) UISink() UISink {
	return UISink{scene: s}
}

// CreateNode creates a HUD node under the HUD root and returns its ID.
// SetParent moves it under its real parent.
func (k UISink) CreateNode() uint32 {
	n := NewUINode("")
	k.scene.Spawn(n, k.scene.hud)
	return n.ID
}

// SetParent moves child under parent. Unknown handles are ignored.
func (k UISink) SetParent(child, parent uint32) {
	c, ok := k.scene.Lookup(child)
	if !ok {
		return
	}
	p, ok := k.scene.Lookup(parent)
	if !ok {
		return
	}
	p.AddChild(c)
}

// AttachData stores payload as a component. An Interactive payload also
// turns on hit testing for the node.
func (k UISink) AttachData(h uint32, payload any) {
	n, ok := k.scene.Lookup(h)
	if !ok {
		return
	}
	if _, ok := payload.(Interactive); ok {
		n.Interactable = true
	}
	n.SetComponent(payload)
}

// SetStyle stores the concrete style used by the HUD layout pass.
func (k UISink) SetStyle(h uint32, style ui.Style) {
	n, ok := k.scene.Lookup(h)
	if !ok {
		return
	}
	n.Style = style
	k.scene.debugLogEmission(n)
}

// Alive reports whether h names a live node.
func (k UISink) Alive(h uint32) bool {
	_, ok := k.scene.Lookup(h)
	return ok
}

// Mount emits b into the scene's HUD, names every node after its layout
// node and returns the open session. Callers attach payloads, then Commit.
func (s *Scene) Mount(b ui.GuiBuilder) *ui.Session[uint32] {
	sess := ui.Emit(b, s.UISink())
	for _, n := range sess.Nodes() {
		if node, ok := s.Lookup(n.Handle); ok {
			node.Name = n.Name
		}
	}
	return sess
}
