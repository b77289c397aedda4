package sprig

// syntheticPointerEvent is one queued pointer event in screen coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed by the next Update.
func (s *Scene) InjectPress(x, y float64) {
	s.input.injectQueue = append(s.input.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.input.injectQueue = append(s.input.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// ClickNode queues a click at the center of n's HUD layout box, or at its
// world origin projected through the primary camera.
func (s *Scene) ClickNode(n *Node) {
	if n.Type == NodeTypeUI {
		r := n.Layout
		s.InjectClick(r.X+r.Width/2, r.Y+r.Height/2)
		return
	}
	x, y := n.WorldPosition()
	if cam := s.PrimaryCamera(); cam != nil {
		x, y = cam.WorldToScreen(x, y)
	}
	s.InjectClick(x, y)
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.input.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// processPointer. Reports whether an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.input.injectQueue) == 0 {
		return false
	}
	evt := s.input.injectQueue[0]
	copy(s.input.injectQueue, s.input.injectQueue[1:])
	s.input.injectQueue = s.input.injectQueue[:len(s.input.injectQueue)-1]

	s.processPointer(evt.screenX, evt.screenY, evt.pressed, evt.button)
	return true
}
