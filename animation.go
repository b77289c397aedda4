package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is anything advanced once per frame by dt seconds.
type Animator interface {
	Update(dt float32)
	Finished() bool
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor) and call Update(dt) each frame, or hand it to Scene.Animate.
// If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Finished reports whether every tween in the group has completed.
func (g *TweenGroup) Finished() bool { return g.Done }

func newGroup(node *Node, fn ease.TweenFunc, duration float32, pairs ...tweenField) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: node}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(p.from), float32(p.to), duration, fn)
		g.fields[i] = p.field
	}
	return g
}

// tweenField binds one animated field to its start and end values.
type tweenField struct {
	field    *float64
	from, to float64
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, fn, duration,
		tweenField{&node.X, node.X, toX},
		tweenField{&node.Y, node.Y, toY})
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, fn, duration,
		tweenField{&node.ScaleX, node.ScaleX, toSX},
		tweenField{&node.ScaleY, node.ScaleY, toSY})
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, fn, duration,
		tweenField{&node.Color.R, node.Color.R, to.R},
		tweenField{&node.Color.G, node.Color.G, to.G},
		tweenField{&node.Color.B, node.Color.B, to.B},
		tweenField{&node.Color.A, node.Color.A, to.A})
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, fn, duration, tweenField{&node.Alpha, node.Alpha, to})
}

// TweenRotation animates node.Rotation.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, fn, duration, tweenField{&node.Rotation, node.Rotation, to})
}

// Yoyo plays a field back and forth between two values forever. It never
// finishes unless its node is disposed.
type Yoyo struct {
	tween    *gween.Tween
	field    *float64
	target   *Node
	from, to float64
	duration float32
	fn       ease.TweenFunc
	forward  bool
	done     bool
}

// NewYoyo oscillates *field between from and to, taking duration seconds
// for each leg. node is marked dirty on every update.
func NewYoyo(node *Node, field *float64, from, to float64, duration float32, fn ease.TweenFunc) *Yoyo {
	return &Yoyo{
		tween:    gween.New(float32(from), float32(to), duration, fn),
		field:    field,
		target:   node,
		from:     from,
		to:       to,
		duration: duration,
		fn:       fn,
		forward:  true,
	}
}

// Update advances the current leg, turning around at either end.
func (y *Yoyo) Update(dt float32) {
	if y.done {
		return
	}
	if y.target != nil && y.target.IsDisposed() {
		y.done = true
		return
	}
	val, finished := y.tween.Update(dt)
	*y.field = float64(val)
	if finished {
		y.forward = !y.forward
		if y.forward {
			y.tween = gween.New(float32(y.from), float32(y.to), y.duration, y.fn)
		} else {
			y.tween = gween.New(float32(y.to), float32(y.from), y.duration, y.fn)
		}
	}
	if y.target != nil {
		y.target.MarkDirty()
	}
}

// Finished reports whether the yoyo's node has been disposed.
func (y *Yoyo) Finished() bool { return y.done }

// Animate registers a on the scene. Scene.Update advances it and drops it
// once it finishes.
func (s *Scene) Animate(a Animator) Animator {
	s.animators = append(s.animators, a)
	return a
}

// updateAnimators advances every animator and compacts out finished ones.
func (s *Scene) updateAnimators(dt float32) {
	live := s.animators[:0]
	for _, a := range s.animators {
		a.Update(dt)
		if !a.Finished() {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(s.animators); i++ {
		s.animators[i] = nil
	}
	s.animators = live
}
