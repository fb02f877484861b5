package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Shapes     []geometry.Shape // Objects in the scene, each with its material attached
	Camera     renderer.CameraConfig
	Background renderer.Background
}

// newScene creates an empty scene with the default camera and sky
func newScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Camera:     renderer.DefaultCameraConfig(),
		Background: renderer.DefaultBackground(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// BuildWorld creates the acceleration structure the renderer queries
func (s *Scene) BuildWorld(sampler core.Sampler) *geometry.BVH {
	return geometry.NewBVH(s.Shapes, sampler)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
