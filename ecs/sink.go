package ecs

import (
	"reflect"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/sprig/ui"
)

// NodeData links an emitted UI entity into its tree.
type NodeData struct {
	Parent    donburi.Entity
	HasParent bool
	Children  []donburi.Entity
}

// Extras holds payloads that are not Bundles, keyed by dynamic type.
type Extras map[reflect.Type]any

var (
	// NodeComponent is present on every entity created by a Sink.
	NodeComponent = donburi.NewComponentType[NodeData]()
	// StyleComponent holds the style written on Commit.
	StyleComponent = donburi.NewComponentType[ui.Style]()
	// ExtrasComponent holds plain payloads.
	ExtrasComponent = donburi.NewComponentType[Extras]()
)

// Bundle is a payload that knows how to insert itself into an entity.
type Bundle interface {
	Insert(entry *donburi.Entry)
}

type componentBundle[T any] struct {
	ct    *donburi.ComponentType[T]
	value T
}

// Component returns a Bundle that adds ct to the entity, if missing, and
// sets it to value.
func Component[T any](ct *donburi.ComponentType[T], value T) Bundle {
	return componentBundle[T]{ct: ct, value: value}
}

func (b componentBundle[T]) Insert(entry *donburi.Entry) {
	if !entry.HasComponent(b.ct) {
		entry.AddComponent(b.ct)
	}
	b.ct.SetValue(entry, b.value)
}

// Sink materializes emitted UI trees as entities in a donburi world.
type Sink struct {
	world donburi.World
}

var _ ui.Sink[donburi.Entity] = (*Sink)(nil)

// NewSink returns a sink writing into world.
func NewSink(world donburi.World) *Sink {
	return &Sink{world: world}
}

// CreateNode creates an entity carrying NodeComponent.
func (s *Sink) CreateNode() donburi.Entity {
	return s.world.Create(NodeComponent)
}

// SetParent links child under parent, unlinking it from any previous parent.
func (s *Sink) SetParent(child, parent donburi.Entity) {
	if !s.world.Valid(child) || !s.world.Valid(parent) {
		return
	}
	c := NodeComponent.Get(s.world.Entry(child))
	if c.HasParent && s.world.Valid(c.Parent) {
		old := NodeComponent.Get(s.world.Entry(c.Parent))
		old.Children = without(old.Children, child)
	}
	p := NodeComponent.Get(s.world.Entry(parent))
	p.Children = append(p.Children, child)
	c.Parent = parent
	c.HasParent = true
}

func without(list []donburi.Entity, e donburi.Entity) []donburi.Entity {
	out := list[:0]
	for _, x := range list {
		if x != e {
			out = append(out, x)
		}
	}
	return out
}

// AttachData inserts Bundles directly and stores any other payload in
// ExtrasComponent, one per dynamic type.
func (s *Sink) AttachData(h donburi.Entity, payload any) {
	if !s.world.Valid(h) {
		return
	}
	entry := s.world.Entry(h)
	if b, ok := payload.(Bundle); ok {
		b.Insert(entry)
		return
	}
	if !entry.HasComponent(ExtrasComponent) {
		entry.AddComponent(ExtrasComponent)
	}
	m := ExtrasComponent.Get(entry)
	if *m == nil {
		*m = make(Extras)
	}
	(*m)[reflect.TypeOf(payload)] = payload
}

// SetStyle writes style into StyleComponent.
func (s *Sink) SetStyle(h donburi.Entity, style ui.Style) {
	if !s.world.Valid(h) {
		return
	}
	Component(StyleComponent, style).Insert(s.world.Entry(h))
}

// Alive reports whether h is a live entity.
func (s *Sink) Alive(h donburi.Entity) bool {
	return s.world.Valid(h)
}

// Parent returns e's parent entity.
func Parent(world donburi.World, e donburi.Entity) (donburi.Entity, bool) {
	if !world.Valid(e) {
		return donburi.Null, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(NodeComponent) {
		return donburi.Null, false
	}
	d := NodeComponent.Get(entry)
	return d.Parent, d.HasParent
}

// Children returns e's children in link order.
func Children(world donburi.World, e donburi.Entity) []donburi.Entity {
	if !world.Valid(e) {
		return nil
	}
	entry := world.Entry(e)
	if !entry.HasComponent(NodeComponent) {
		return nil
	}
	return NodeComponent.Get(entry).Children
}

// Style returns the committed style of e.
func Style(world donburi.World, e donburi.Entity) (ui.Style, bool) {
	if !world.Valid(e) {
		return ui.Style{}, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(StyleComponent) {
		return ui.Style{}, false
	}
	return StyleComponent.GetValue(entry), true
}

// Extra returns the plain payload of type T stored on e.
func Extra[T any](world donburi.World, e donburi.Entity) (T, bool) {
	var zero T
	if !world.Valid(e) {
		return zero, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(ExtrasComponent) {
		return zero, false
	}
	v, ok := ExtrasComponent.GetValue(entry)[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Roots returns every UI entity without a parent.
func Roots(world donburi.World) []donburi.Entity {
	var roots []donburi.Entity
	donburi.NewQuery(filter.Contains(NodeComponent)).Each(world, func(entry *donburi.Entry) {
		if !NodeComponent.Get(entry).HasParent {
			roots = append(roots, entry.Entity())
		}
	})
	return roots
}

// Walk visits e and its descendants depth-first.
func Walk(world donburi.World, e donburi.Entity, fn func(e donburi.Entity, depth int)) {
	walk(world, e, 0, fn)
}

func walk(world donburi.World, e donburi.Entity, depth int, fn func(donburi.Entity, int)) {
	if !world.Valid(e) {
		return
	}
	fn(e, depth)
	for _, c := range Children(world, e) {
		walk(world, c, depth+1, fn)
	}
}
