// Package uitest provides an in-memory ui.Sink that records every call.
package uitest

import (
	"fmt"
	"reflect"

	"github.com/phanxgames/sprig/ui"
)

// Op names one recorded sink call.
type Op uint8

const (
	OpCreate Op = iota
	OpParent
	OpAttach
	OpStyle
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpParent:
		return "parent"
	case OpAttach:
		return "attach"
	case OpStyle:
		return "style"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Call is one recorded sink call. Other is the parent for OpParent.
type Call struct {
	Op      Op
	Handle  int
	Other   int
	Payload any
}

// Node is the recorder's view of one created node.
type Node struct {
	Parent    int
	HasParent bool
	Style     ui.Style
	Styled    int // number of SetStyle calls
	Data      map[reflect.Type]any
}

// Recorder implements ui.Sink[int]. Handles are 1, 2, 3... in creation order.
type Recorder struct {
	Calls []Call
	nodes map[int]*Node
	dead  map[int]bool
	next  int
}

var _ ui.Sink[int] = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{nodes: make(map[int]*Node), dead: make(map[int]bool)}
}

func (r *Recorder) CreateNode() int {
	r.next++
	r.nodes[r.next] = &Node{Data: make(map[reflect.Type]any)}
	r.Calls = append(r.Calls, Call{Op: OpCreate, Handle: r.next})
	return r.next
}

func (r *Recorder) SetParent(child, parent int) {
	r.Calls = append(r.Calls, Call{Op: OpParent, Handle: child, Other: parent})
	if n, ok := r.nodes[child]; ok {
		n.Parent = parent
		n.HasParent = true
	}
}

func (r *Recorder) AttachData(h int, payload any) {
	r.Calls = append(r.Calls, Call{Op: OpAttach, Handle: h, Payload: payload})
	if n, ok := r.nodes[h]; ok {
		n.Data[reflect.TypeOf(payload)] = payload
	}
}

func (r *Recorder) SetStyle(h int, style ui.Style) {
	r.Calls = append(r.Calls, Call{Op: OpStyle, Handle: h})
	if n, ok := r.nodes[h]; ok {
		n.Style = style
		n.Styled++
	}
}

func (r *Recorder) Alive(h int) bool {
	_, ok := r.nodes[h]
	return ok && !r.dead[h]
}

// Kill marks h destroyed, as if the host removed the node.
func (r *Recorder) Kill(h int) {
	r.dead[h] = true
}

// Node returns the recorded state of h, or nil.
func (r *Recorder) Node(h int) *Node {
	return r.nodes[h]
}

// Count returns the number of recorded calls of op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// AttachedTo returns the handles that received payload, in call order.
func (r *Recorder) AttachedTo(payload any) []int {
	var out []int
	for _, c := range r.Calls {
		if c.Op == OpAttach && reflect.DeepEqual(c.Payload, payload) {
			out = append(out, c.Handle)
		}
	}
	return out
}

// Data returns the payload of type T stored on h. When T is an interface,
// a payload whose dynamic type implements T is returned; if several do,
// which one is unspecified.
func Data[T any](r *Recorder, h int) (T, bool) {
	var zero T
	n := r.nodes[h]
	if n == nil {
		return zero, false
	}
	t := reflect.TypeFor[T]()
	if v, ok := n.Data[t]; ok {
		return v.(T), true
	}
	if t.Kind() != reflect.Interface {
		return zero, false
	}
	for dt, v := range n.Data {
		if dt.Implements(t) {
			return v.(T), true
		}
	}
	return zero, false
}
