package scene

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

func TestBuiltinScenes_ValidCameras(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewBuiltin(name, core.NewSeededSampler(1))
			if err != nil {
				t.Fatalf("NewBuiltin(%q): %v", name, err)
			}
			if s.Name != name {
				t.Errorf("scene name = %q, want %q", s.Name, name)
			}
			if err := s.Camera.Validate(); err != nil {
				t.Errorf("camera invalid: %v", err)
			}
		})
	}
}

func TestNewBuiltin_Unknown(t *testing.T) {
	_, err := NewBuiltin("cornell", core.NewSeededSampler(1))
	if errors.Cause(err) != ErrUnknownScene {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestTwoSpheresScene(t *testing.T) {
	s := NewTwoSpheresScene()
	if s.GetPrimitiveCount() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", s.GetPrimitiveCount())
	}

	world := s.BuildWorld(core.NewSeededSampler(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := world.Hit(ray, core.NewInterval(0.001, 1000))
	if !ok || hit.T < 0.49 || hit.T > 0.51 {
		t.Errorf("Expected the center sphere at t=0.5, got %v %v", hit, ok)
	}
}

func TestRandomSpheresScene(t *testing.T) {
	s := NewRandomSpheresScene(core.NewSeededSampler(42))

	// Ground + three large spheres + up to 22x22 small ones
	if n := s.GetPrimitiveCount(); n < 4+400 || n > 4+22*22 {
		t.Errorf("unexpected shape count %d", n)
	}

	moving := 0
	for _, shape := range s.Shapes {
		if sphere, ok := shape.(*geometry.Sphere); ok && sphere.IsMoving() {
			moving++
		}
	}
	if moving == 0 {
		t.Error("Expected some moving spheres")
	}

	// Same seed, same scene
	again := NewRandomSpheresScene(core.NewSeededSampler(42))
	if again.GetPrimitiveCount() != s.GetPrimitiveCount() {
		t.Errorf("scene not reproducible: %d vs %d shapes", again.GetPrimitiveCount(), s.GetPrimitiveCount())
	}
}
