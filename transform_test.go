package sprig

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertMatrix(t *testing.T, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if !approxEqual(got[i], want[i], epsilon) {
			t.Fatalf("matrix = %v, want %v", got, want)
		}
	}
}

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("n")
	assertMatrix(t, computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("n")
	n.X, n.Y = 10, 20
	assertMatrix(t, computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("n")
	n.ScaleX, n.ScaleY = 2, 3
	assertMatrix(t, computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("n")
	n.Rotation = math.Pi / 2
	x, y := transformPoint(computeLocalTransform(n), 1, 0)
	if !approxEqual(x, 0, epsilon) || !approxEqual(y, 1, epsilon) {
		t.Errorf("(1,0) rotated = (%f,%f), want (0,1)", x, y)
	}
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("n")
	n.PivotX, n.PivotY = 5, 5
	n.X, n.Y = 5, 5
	n.Rotation = math.Pi
	// The pivot stays put under rotation.
	x, y := transformPoint(computeLocalTransform(n), 5, 5)
	if !approxEqual(x, 5, epsilon) || !approxEqual(y, 5, epsilon) {
		t.Errorf("pivot moved to (%f,%f)", x, y)
	}
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 0}
	b := [6]float64{1, 0, 0, 1, 0, 5}
	assertMatrix(t, multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 10, 5})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 1, -1, 3, 7, -4}
	assertMatrix(t, multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	assertMatrix(t, invertAffine([6]float64{0, 0, 0, 0, 3, 4}), identityTransform)
}

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("p")
	parent.SetPosition(100, 0)
	parent.SetScale(2, 2)
	child := NewContainer("c")
	child.SetPosition(10, 10)
	parent.AddChild(child)

	updateWorldTransform(parent, identityTransform, 1, false)
	x, y := child.WorldPosition()
	if x != 120 || y != 20 {
		t.Errorf("child world = (%v,%v), want (120,20)", x, y)
	}
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("p")
	parent.Alpha = 0.5
	child := NewContainer("c")
	child.Alpha = 0.5
	parent.AddChild(child)

	updateWorldTransform(parent, identityTransform, 1, false)
	if child.worldAlpha != 0.25 {
		t.Errorf("worldAlpha = %v, want 0.25", child.worldAlpha)
	}
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	n := NewContainer("n")
	updateWorldTransform(n, identityTransform, 1, false)
	n.X = 50 // no setter, so not dirty
	updateWorldTransform(n, identityTransform, 1, false)
	if x, _ := n.WorldPosition(); x != 0 {
		t.Errorf("clean node recomputed: x = %v", x)
	}
	n.MarkDirty()
	updateWorldTransform(n, identityTransform, 1, false)
	if x, _ := n.WorldPosition(); x != 50 {
		t.Errorf("dirty node not recomputed: x = %v", x)
	}
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewContainer("p")
	child := NewContainer("c")
	parent.AddChild(child)
	updateWorldTransform(parent, identityTransform, 1, false)

	parent.SetPosition(7, 0)
	updateWorldTransform(parent, identityTransform, 1, false)
	if x, _ := child.WorldPosition(); x != 7 {
		t.Errorf("child x = %v, want 7", x)
	}
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(30, -10)
	n.SetRotation(0.7)
	n.SetScale(1.5, 0.5)
	updateWorldTransform(n, identityTransform, 1, false)

	wx, wy := transformPoint(n.worldTransform, 4, 9)
	lx, ly := n.WorldToLocal(wx, wy)
	if !approxEqual(lx, 4, 1e-6) || !approxEqual(ly, 9, 1e-6) {
		t.Errorf("roundtrip = (%f,%f), want (4,9)", lx, ly)
	}
}

func TestSettersDirty(t *testing.T) {
	n := NewContainer("n")
	for name, set := range map[string]func(){
		"SetPosition": func() { n.SetPosition(1, 1) },
		"SetScale":    func() { n.SetScale(2, 2) },
		"SetRotation": func() { n.SetRotation(1) },
	} {
		n.transformDirty = false
		set()
		if !n.transformDirty {
			t.Errorf("%s did not mark dirty", name)
		}
	}
}
