package mathutil

import "testing"

func TestMat3MulIdentity(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := Mat3Mul(m, Mat3Identity()); got != m {
		t.Errorf("m × I: got %v", got)
	}
	if got := Mat3Mul(Mat3Identity(), m); got != m {
		t.Errorf("I × m: got %v", got)
	}
}

func TestMulVec3(t *testing.T) {
	m := Mat3{0, 1, 0, 0, 0, 1, 1, 0, 0} // cyclic permutation
	if got := m.MulVec3(Vec3{1, 2, 3}); got != (Vec3{2, 3, 1}) {
		t.Errorf("MulVec3: got %v", got)
	}
}

func TestTranspose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	want := Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}
	if got := m.Transpose(); got != want {
		t.Errorf("Transpose: got %v", got)
	}
}
