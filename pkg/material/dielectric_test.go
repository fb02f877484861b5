package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRayAtTime(core.NewVec3(0, 1, 0), rayDirection, 0.25)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000; seed++ {
		result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}

		expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
		if result.Attenuation != expectedAttenuation {
			t.Fatalf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
		}
		if result.Scattered.Time != ray.Time {
			t.Fatalf("Scattered ray should keep time %f, got %f", ray.Time, result.Scattered.Time)
		}

		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	// At 45° air->glass the Schlick reflectance is about 5%, so 1000 tries should see one
	if !hasReflection {
		t.Error("Expected to see Fresnel reflection in at least some cases")
	}
}

func TestDielectricRefractionDirection(t *testing.T) {
	glass := NewDielectric(1.5)
	incoming := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), incoming)
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	// A sample above the reflectance always chooses refraction
	result, _ := glass.Scatter(ray, hit, fixedSampler{value: 0.999})

	sinT := result.Scattered.Direction.Normalize().X
	expected := math.Sin(math.Pi/4) / 1.5
	if math.Abs(sinT-expected) > 1e-9 {
		t.Errorf("Snell's law violated: expected sin(theta_t)=%f, got %f", expected, sinT)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at a shallow angle
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 10; i++ {
		result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(int64(i)))
		if !scattered {
			t.Error("Dielectric should always scatter")
		}

		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %+v", result.Scattered.Direction)
		}

		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence (0°) - should be low for air->glass
	r0 := Reflectance(1.0, 1.0/1.5)
	if r0 < 0.03 || r0 > 0.06 {
		t.Errorf("Normal incidence reflectance = %.3f, expected ~0.04", r0)
	}

	// Grazing incidence (90°) - should be close to 1
	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("Reflectance should increase with angle: R(0°)=%.3f, R(45°)=%.3f, R(90°)=%.3f", r0, r45, r90)
	}
}
