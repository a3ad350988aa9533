package math3d

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got := a.Add(b); got != V3(5, -3, 9) {
		t.Errorf("Add = %v, want (5, -3, 9)", got)
	}
	if got := a.Sub(b); got != V3(-3, 7, -3) {
		t.Errorf("Sub = %v, want (-3, 7, -3)", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale = %v, want (2, 4, 6)", got)
	}
	if got := a.Dot(b); got != 1*4+2*-5+3*6 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"parallel", V3(2, 4, 6), V3(1, 2, 3), V3(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Cross(tc.b)
			if got != tc.expected {
				t.Errorf("Cross = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	a := V3(1.5, -2.25, 0.75)
	b := V3(-0.5, 3, 8)
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-9 {
		t.Errorf("cross product not orthogonal to a: dot = %v", c.Dot(a))
	}
	if math.Abs(c.Dot(b)) > 1e-9 {
		t.Errorf("cross product not orthogonal to b: dot = %v", c.Dot(b))
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", V3(5, 0, 0)},
		{"diagonal", V3(1, 1, 1)},
		{"negative", V3(-3, 4, -12)},
		{"tiny", V3(1e-8, -2e-8, 3e-8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Errorf("normalized length = %v, want 1", n.Len())
			}
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		if got := Zero3().Normalize(); got != Zero3() {
			t.Errorf("Normalize(zero) = %v, want zero vector", got)
		}
	})
}

func TestVec3Distance(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 3)
	if got := a.Distance(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -20, 30)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"midpoint", 0.5, V3(5, -10, 15)},
		{"extrapolate past", 2, V3(20, -40, 60)},
		{"extrapolate before", -1, V3(-10, 20, -30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Lerp(b, tc.t); got != tc.expected {
				t.Errorf("Lerp(t=%v) = %v, want %v", tc.t, got, tc.expected)
			}
		})
	}
}

func TestVec3ArrayRoundTrip(t *testing.T) {
	v := V3(1.25, -2.5, 3.75)
	if got := V3FromArray(v.Array()); got != v {
		t.Errorf("round trip = %v, want %v", got, v)
	}

	arr := [3]float64{7, 8, 9}
	if got := V3FromArray(arr).Array(); got != arr {
		t.Errorf("array order not preserved: %v, want %v", got, arr)
	}
}
