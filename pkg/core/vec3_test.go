package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", NewVec3(2, 4, 8).Divide(2), NewVec3(1, 2, 4)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Lerp start", a.Lerp(b, 0), a},
		{"Lerp end", a.Lerp(b, 1), b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_Reductions(t *testing.T) {
	v := NewVec3(3, 4, 12)

	if v.Dot(NewVec3(1, 1, 1)) != 19 {
		t.Errorf("Expected dot 19, got %f", v.Dot(NewVec3(1, 1, 1)))
	}
	if v.LengthSquared() != 169 {
		t.Errorf("Expected squared length 169, got %f", v.LengthSquared())
	}
	if v.Length() != 13 {
		t.Errorf("Expected length 13, got %f", v.Length())
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}

	if !NewVec3(0, 0, 0).Normalize().Equals(NewVec3(0, 0, 0)) {
		t.Error("Zero vector should normalize to zero, not NaN")
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{"Zero", NewVec3(0, 0, 0), true},
		{"Tiny", NewVec3(1e-9, -1e-9, 5e-10), true},
		{"One component large", NewVec3(1e-9, 1e-3, 0), false},
		{"Unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.vector.NearZero() != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.vector, !tt.expected, tt.expected)
			}
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Infinite component should not be finite")
	}
}

func TestReflect(t *testing.T) {
	// 45 degree incidence onto a floor
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	reflected := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestRefract_Snell(t *testing.T) {
	// Air to glass at 45 degrees: sin(theta_t) = sin(45°) / 1.5
	uv := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)

	refracted := Refract(uv, n, 1.0/1.5)

	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Refracted unit vector should stay unit length, got %f", refracted.Length())
	}

	sinT := refracted.X
	expected := math.Sin(math.Pi/4) / 1.5
	if math.Abs(sinT-expected) > 1e-9 {
		t.Errorf("Expected sin(theta_t)=%f, got %f", expected, sinT)
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray should continue through the surface, got %v", refracted)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)

	refracted := Refract(uv, n, 1.0/1.5)
	if refracted.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Normal incidence should not bend, got %v", refracted)
	}
}
