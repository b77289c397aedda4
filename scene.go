package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	NodeID   uint32
	NodeName string
	GlobalX  float64
	GlobalY  float64
	Button   MouseButton
}

// Scene is the top-level object that owns the world tree, the HUD tree,
// cameras, lights and input state.
type Scene struct {
	root  *Node
	hud   *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before the world is drawn.
	ClearColor Color

	cameras   []*Camera
	lights    []*Light
	animators []Animator

	// nodes indexes every node registered with the scene by ID.
	nodes map[uint32]*Node

	viewW, viewH float64

	input  inputState
	script *ScriptRunner

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string
	shots         []string
}

// NewScene creates a new scene with pre-created world and HUD roots.
func NewScene() *Scene {
	root := NewContainer("root")
	hud := NewUINode("hud")
	s := &Scene{
		root:  root,
		hud:   hud,
		nodes: make(map[uint32]*Node),
	}
	s.Register(root)
	s.Register(hud)
	return s
}

// Root returns the world root container. World nodes are drawn through the
// primary camera.
func (s *Scene) Root() *Node {
	return s.root
}

// HUD returns the HUD root. HUD nodes are laid out from their ui.Style and
// drawn in screen space on top of the world.
func (s *Scene) HUD() *Node {
	return s.hud
}

// Register indexes n so that Lookup can resolve its ID. Registering a node
// does not add it to the tree.
func (s *Scene) Register(n *Node) *Node {
	s.nodes[n.ID] = n
	return n
}

// Spawn registers n and adds it under parent, or under the world root when
// parent is nil.
func (s *Scene) Spawn(n *Node, parent *Node) *Node {
	s.Register(n)
	if parent == nil {
		parent = s.root
	}
	parent.AddChild(n)
	return n
}

// Lookup returns the live node with the given ID. Disposed nodes are
// dropped from the index and reported as absent.
func (s *Scene) Lookup(id uint32) (*Node, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, false
	}
	if n.disposed {
		delete(s.nodes, id)
		return nil, false
	}
	return n, true
}

// Each calls fn for every live registered node carrying a component of
// type T.
func Each[T any](s *Scene, fn func(n *Node, c T)) {
	for _, n := range s.nodes {
		if n.disposed {
			continue
		}
		if c, ok := Component[T](n); ok {
			fn(n, c)
		}
	}
}

// Update advances cameras, animators, node callbacks and input by dt seconds.
func (s *Scene) Update(dt float64) {
	for _, cam := range s.cameras {
		cam.update(float32(dt))
	}
	s.updateAnimators(float32(dt))
	updateNodes(s.root, dt)
	updateNodes(s.hud, dt)

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if s.viewW > 0 && s.viewH > 0 {
		LayoutHUD(s.hud, s.viewW, s.viewH)
	}
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
}

// SetViewport sets the screen size used for HUD layout before the first
// Draw. Headless scenes call it once; Draw keeps it in sync afterwards.
func (s *Scene) SetViewport(w, h float64) {
	s.viewW, s.viewH = w, h
}

// Viewport returns the current screen size.
func (s *Scene) Viewport() (w, h float64) {
	return s.viewW, s.viewH
}

func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		updateNodes(c, dt)
	}
}

// Draw renders the world through the primary camera, then the lights, then
// the HUD in screen space.
func (s *Scene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.viewW, s.viewH = float64(b.Dx()), float64(b.Dy())
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	view := identityTransform
	if cam := s.PrimaryCamera(); cam != nil {
		view = cam.computeViewMatrix()
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawWorld(screen, s.root, view)
	s.drawLights(screen, view)

	LayoutHUD(s.hud, s.viewW, s.viewH)
	s.drawHUD(screen, s.hud, 1)
	s.flushScreenshots(screen)
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// PrimaryCamera returns the first camera, or nil.
func (s *Scene) PrimaryCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth and child count warnings are printed.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
