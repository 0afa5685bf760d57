package mathutil

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %v", got)
	}
	if got := (Vec3{3, 4, 0}).Len(); got != 5 {
		t.Errorf("Len: got %v", got)
	}
	if got := (Vec3{1.7, 2.2, -3.5}).Floor(); got != (Vec3{1, 2, -4}) {
		t.Errorf("Floor: got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec3{3, -4, 12}.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Normalize not unit: len=%.15g", n.Len())
	}

	// Zero-length input yields the zero vector, not NaN.
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("Normalize(zero): got %v", got)
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp mid: got %v", got)
	}
	if got := Lerp(2, 4, -1); got != 2 {
		t.Errorf("Lerp t<0 must clamp to a: got %v", got)
	}
	if got := Lerp(2, 4, 7); got != 4 {
		t.Errorf("Lerp t>1 must clamp to b: got %v", got)
	}
}
