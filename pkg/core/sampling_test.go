package core

import (
	"math"
	"testing"
)

func TestRandomInUnitSphere_InsideSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Sample %d outside unit sphere: %v (|p|²=%f)", i, p, p.LengthSquared())
		}
	}
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(7)

	var mean Vec3
	const n = 5000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
		mean = mean.Add(v)
	}

	// Uniform directions should average out near the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Unit vectors look biased, mean %v", mean)
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	sampler := NewSeededSampler(3)
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 500; i++ {
			v := RandomOnHemisphere(normal, sampler)
			if v.Dot(normal) < 0 {
				t.Fatalf("Direction %v not in hemisphere of %v", v, normal)
			}
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(11)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie on z=0, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Disk sample outside unit disk: %v", p)
		}
	}
}

func TestRandomInt_Range(t *testing.T) {
	sampler := NewSeededSampler(5)
	seen := map[int]bool{}

	for i := 0; i < 300; i++ {
		n := RandomInt(sampler, 0, 2)
		if n < 0 || n > 2 {
			t.Fatalf("RandomInt out of range: %d", n)
		}
		seen[n] = true
	}

	if len(seen) != 3 {
		t.Errorf("Expected all three axes to be chosen, saw %v", seen)
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)

	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Samplers with equal seeds should produce equal sequences")
		}
	}
}
