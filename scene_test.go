package sprig

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || s.HUD() == nil {
		t.Fatal("roots not created")
	}
	if s.HUD().Type != NodeTypeUI {
		t.Errorf("HUD type = %d, want NodeTypeUI", s.HUD().Type)
	}
	if _, ok := s.Lookup(s.Root().ID); !ok {
		t.Error("root not registered")
	}
}

func TestSceneSpawnAndLookup(t *testing.T) {
	s := NewScene()
	n := s.Spawn(NewContainer("n"), nil)
	if n.Parent != s.Root() {
		t.Error("Spawn with nil parent should use the world root")
	}
	got, ok := s.Lookup(n.ID)
	if !ok || got != n {
		t.Fatal("Lookup failed")
	}

	n.Dispose()
	if _, ok := s.Lookup(n.ID); ok {
		t.Error("disposed node still resolves")
	}
	if _, ok := s.nodes[n.ID]; ok {
		t.Error("disposed node not dropped from the index")
	}
}

func TestSceneLookupUnknown(t *testing.T) {
	if _, ok := NewScene().Lookup(1 << 30); ok {
		t.Error("unknown ID resolved")
	}
}

type recordingStore struct {
	events []InteractionEvent
}

func (r *recordingStore) EmitEvent(e InteractionEvent) {
	r.events = append(r.events, e)
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	if s.store != store {
		t.Error("store not set")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug not enabled")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug not disabled")
	}
}

func TestEachVisitsComponentHolders(t *testing.T) {
	s := NewScene()
	a := s.Spawn(NewContainer("a"), nil)
	b := s.Spawn(NewContainer("b"), nil)
	s.Spawn(NewContainer("c"), nil)
	a.SetComponent(score{Points: 1})
	b.SetComponent(score{Points: 2})
	gone := s.Spawn(NewContainer("gone"), nil)
	gone.SetComponent(score{Points: 100})
	gone.Dispose()

	total := 0
	Each(s, func(n *Node, c score) { total += c.Points })
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

func TestSceneUpdateRunsOnUpdate(t *testing.T) {
	s := NewScene()
	var worldDT, hudDT float64
	n := s.Spawn(NewContainer("n"), nil)
	n.OnUpdate = func(dt float64) { worldDT = dt }
	h := s.Spawn(NewUINode("h"), s.HUD())
	h.OnUpdate = func(dt float64) { hudDT = dt }

	s.Update(0.25)
	if worldDT != 0.25 || hudDT != 0.25 {
		t.Errorf("dt = %v/%v, want 0.25", worldDT, hudDT)
	}
}

func TestSceneLights(t *testing.T) {
	s := NewScene()
	l := s.AddLight(NewLight(1, 2, 50))
	if len(s.Lights()) != 1 || !l.Enabled || l.Intensity != 1 {
		t.Fatalf("light not added with defaults: %+v", l)
	}
	s.RemoveLight(l)
	if len(s.Lights()) != 0 {
		t.Error("light not removed")
	}
}

func TestLightFollowsTarget(t *testing.T) {
	target := NewContainer("t")
	target.SetPosition(100, 100)
	updateWorldTransform(target, identityTransform, 1, false)

	l := NewLight(5, -5, 10)
	l.Target = target
	if x, y := l.worldPosition(); x != 105 || y != 95 {
		t.Errorf("light at (%v,%v), want (105,95)", x, y)
	}
	target.Dispose()
	if x, y := l.worldPosition(); x != 5 || y != -5 {
		t.Errorf("light at (%v,%v), want its own offset once the target is gone", x, y)
	}
}
