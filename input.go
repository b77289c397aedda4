package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sprig/ui"
)

// pointerState tracks the mouse between frames.
type pointerState struct {
	down    bool
	button  MouseButton
	hitNode *Node
	lastX   float64
	lastY   float64
}

// inputState is the scene's pointer bookkeeping.
type inputState struct {
	pointer pointerState
	// devices enables reading the real mouse. App turns it on when a window
	// is running; headless scenes rely on injected events only.
	devices     bool
	injectQueue []syntheticPointerEvent
	hitBuf      []*Node
}

// SetDeviceInput enables or disables polling the real mouse in Update.
func (s *Scene) SetDeviceInput(enabled bool) {
	s.input.devices = enabled
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable nodes to buf. Invisible subtrees are skipped, as are
// world subtrees with Interactable=false. HUD nodes are always descended
// into so that a button's label does not hide the button.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Type == NodeTypeUI {
		if n.Style.Display == ui.DisplayNone {
			return buf
		}
		if n.Interactable {
			buf = append(buf, n)
		}
	} else {
		if !n.Interactable {
			return buf
		}
		if n.Type != NodeTypeContainer {
			buf = append(buf, n)
		}
	}
	for _, child := range sortedChildren(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// nodeContains reports whether the point hits n. HUD nodes test their
// screen-space layout box; sprites and meshes test their local bounds.
func nodeContains(n *Node, sx, sy, wx, wy float64) bool {
	switch n.Type {
	case NodeTypeUI:
		return n.Layout.Width > 0 && n.Layout.Height > 0 && n.Layout.Contains(sx, sy)
	case NodeTypeSprite:
		lx, ly := n.WorldToLocal(wx, wy)
		return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
	case NodeTypeMesh:
		lx, ly := n.WorldToLocal(wx, wy)
		return meshBounds(n).Contains(lx, ly)
	}
	return false
}

// hitTest finds the topmost interactable node under the pointer. The HUD is
// drawn last, so it is tested first.
func (s *Scene) hitTest(sx, sy, wx, wy float64) *Node {
	for _, root := range []*Node{s.hud, s.root} {
		s.input.hitBuf = collectInteractable(root, s.input.hitBuf[:0])
		for i := len(s.input.hitBuf) - 1; i >= 0; i-- {
			n := s.input.hitBuf[i]
			if nodeContains(n, sx, sy, wx, wy) {
				return n
			}
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update. Injected events take priority
// over the real mouse, one per frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.input.devices {
		return
	}
	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// screenToWorld converts screen coordinates to world coordinates using the
// primary camera.
func (s *Scene) screenToWorld(sx, sy float64) (float64, float64) {
	if cam := s.PrimaryCamera(); cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}

// processPointer runs the press/release state machine for the mouse.
func (s *Scene) processPointer(sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.input.pointer
	wx, wy := s.screenToWorld(sx, sy)

	switch {
	case pressed && !ps.down:
		target := s.hitTest(sx, sy, wx, wy)
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.fire(EventPress, target, sx, sy, wx, wy, button)
	case !pressed && ps.down:
		target := s.hitTest(sx, sy, wx, wy)
		s.fire(EventRelease, target, sx, sy, wx, wy, ps.button)
		if ps.hitNode != nil && ps.hitNode == target {
			s.fire(EventClick, target, sx, sy, wx, wy, ps.button)
		}
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX, ps.lastY = sx, sy
}

// fire invokes node callbacks and forwards the event to the entity store.
func (s *Scene) fire(t EventType, n *Node, sx, sy, wx, wy float64, button MouseButton) {
	if n == nil {
		return
	}
	ctx := PointerContext{Node: n, EntityID: n.EntityID, GlobalX: wx, GlobalY: wy, Button: button}
	if n.Type == NodeTypeUI {
		ctx.GlobalX, ctx.GlobalY = sx, sy
		ctx.LocalX, ctx.LocalY = sx-n.Layout.X, sy-n.Layout.Y
	} else {
		ctx.LocalX, ctx.LocalY = n.WorldToLocal(wx, wy)
	}
	switch t {
	case EventPress:
		if n.OnPress != nil {
			n.OnPress(ctx)
		}
	case EventClick:
		if n.OnClick != nil {
			n.OnClick(ctx)
		}
	}
	if s.store == nil {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     t,
		EntityID: n.EntityID,
		NodeID:   n.ID,
		NodeName: n.Name,
		GlobalX:  ctx.GlobalX,
		GlobalY:  ctx.GlobalY,
		Button:   button,
	})
}
