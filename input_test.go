package sprig

import (
	"testing"

	"github.com/phanxgames/sprig/ui"
)

// hudButton adds a fixed-size interactive HUD node at the top-left.
func hudButton(s *Scene, name string, w, h float64) *Node {
	n := NewUINode(name)
	n.Style = ui.Description{Width: ui.Ptr(ui.Px(w)), Height: ui.Ptr(ui.Px(h))}.Style()
	n.Interactable = true
	return s.Spawn(n, s.HUD())
}

func TestClickOnHUDNode(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	btn := hudButton(s, "btn", 50, 20)
	store := &recordingStore{}
	s.SetEntityStore(store)

	var pressed, clicked int
	btn.OnPress = func(PointerContext) { pressed++ }
	btn.OnClick = func(ctx PointerContext) {
		clicked++
		if ctx.LocalX != 10 || ctx.LocalY != 5 {
			t.Errorf("local = (%v,%v), want (10,5)", ctx.LocalX, ctx.LocalY)
		}
	}

	s.InjectClick(10, 5)
	s.Update(0)
	s.Update(0)

	if pressed != 1 || clicked != 1 {
		t.Fatalf("pressed=%d clicked=%d, want 1/1", pressed, clicked)
	}
	var kinds []EventType
	for _, e := range store.events {
		kinds = append(kinds, e.Type)
		if e.NodeID != btn.ID || e.NodeName != "btn" {
			t.Errorf("event for %q (%d), want btn", e.NodeName, e.NodeID)
		}
	}
	want := []EventType{EventPress, EventRelease, EventClick}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestClickMissesNonInteractiveHUD(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	n := hudButton(s, "panel", 50, 20)
	n.Interactable = false
	var hit bool
	n.OnClick = func(PointerContext) { hit = true }

	s.InjectClick(10, 5)
	s.Update(0)
	s.Update(0)
	if hit {
		t.Error("non-interactive node received a click")
	}
}

func TestHUDChildDoesNotShadowButton(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	btn := hudButton(s, "btn", 50, 20)
	label := NewUINode("label")
	s.Spawn(label, btn)

	var clicked bool
	btn.OnClick = func(PointerContext) { clicked = true }
	s.InjectClick(25, 10)
	s.Update(0)
	s.Update(0)
	if !clicked {
		t.Error("label swallowed the button click")
	}
}

func TestReleaseElsewhereIsNotAClick(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	btn := hudButton(s, "btn", 50, 20)
	var clicked bool
	btn.OnClick = func(PointerContext) { clicked = true }

	s.InjectPress(10, 10)
	s.InjectRelease(150, 90)
	s.Update(0)
	s.Update(0)
	if clicked {
		t.Error("click fired although release was outside")
	}
}

func TestClickWorldSpriteThroughCamera(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 200, Height: 200})
	cam.X, cam.Y = 0, 0
	spr := s.Spawn(NewSprite("spr", 20, 20, ColorWhite), nil)
	spr.SetPosition(-10, -10)

	var clicked bool
	spr.OnClick = func(PointerContext) { clicked = true }
	s.InjectClick(100, 100) // viewport center is world origin
	s.Update(0)
	s.Update(0)
	if !clicked {
		t.Error("sprite under the camera center was not clicked")
	}
}

func TestHUDTakesPriorityOverWorld(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	spr := s.Spawn(NewSprite("spr", 200, 100, ColorWhite), nil)
	btn := hudButton(s, "btn", 50, 20)

	var world, hud bool
	spr.OnClick = func(PointerContext) { world = true }
	btn.OnClick = func(PointerContext) { hud = true }
	s.InjectClick(5, 5)
	s.Update(0)
	s.Update(0)
	if !hud || world {
		t.Errorf("hud=%v world=%v, want HUD only", hud, world)
	}
}

func TestClickNodeTargetsLayoutCenter(t *testing.T) {
	s := NewScene()
	s.SetViewport(200, 100)
	btn := hudButton(s, "btn", 40, 20)
	s.Update(0) // lay out

	var clicked bool
	btn.OnClick = func(PointerContext) { clicked = true }
	s.ClickNode(btn)
	if s.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d, want 2", s.PendingInput())
	}
	s.Update(0)
	s.Update(0)
	if !clicked {
		t.Error("ClickNode did not click the node")
	}
	if s.PendingInput() != 0 {
		t.Error("queue not drained")
	}
}

func TestEventTypeString(t *testing.T) {
	for e, want := range map[EventType]string{
		EventPress:    "press",
		EventRelease:  "release",
		EventClick:    "click",
		EventType(99): "unknown",
	} {
		if got := e.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", e, got, want)
		}
	}
}
