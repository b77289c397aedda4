package sprig

import "reflect"

// componentSet stores at most one payload per dynamic type.
type componentSet map[reflect.Type]any

// SetComponent stores payload on the node, replacing any payload of the same
// dynamic type. Nil payloads are ignored.
func (n *Node) SetComponent(payload any) {
	if payload == nil || n.disposed {
		return
	}
	if n.components == nil {
		n.components = make(componentSet, 2)
	}
	n.components[reflect.TypeOf(payload)] = payload
}

// RemoveComponent drops the payload of the same dynamic type as sample.
func (n *Node) RemoveComponent(sample any) {
	delete(n.components, reflect.TypeOf(sample))
}

// NumComponents returns the number of payloads stored on the node.
func (n *Node) NumComponents() int {
	return len(n.components)
}

// Component returns the payload of type T stored on n.
func Component[T any](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	v, ok := n.components[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// HasComponent reports whether a payload of type T is stored on n.
func HasComponent[T any](n *Node) bool {
	_, ok := Component[T](n)
	return ok
}
