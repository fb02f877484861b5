package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const sampleScene = `
name: glass-demo
description: A glass ball on a gray floor
camera:
  image_width: 200
  samples_per_pixel: 10
  vfov: 30
  look_from: [0, 1, 4]
  look_at: [0, 0, 0]
background:
  top: [0.1, 0.1, 0.3]
  bottom: [1, 1, 1]
materials:
  floor:
    type: lambertian
    albedo: [0.5, 0.5, 0.5]
  glass:
    type: dielectric
    refractive_index: 1.5
  steel:
    type: metal
    albedo: [0.8, 0.8, 0.8]
    fuzz: 2
spheres:
  - center: [0, -1000, 0]
    radius: 1000
    material: floor
  - center: [0, 1, 0]
    radius: 1
    material: glass
  - center: [2, 0.5, 0]
    center2: [2, 1, 0]
    radius: 0.5
    material: steel
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Name != "glass-demo" {
		t.Errorf("name = %q", s.Name)
	}

	wantCamera := renderer.DefaultCameraConfig()
	wantCamera.ImageWidth = 200
	wantCamera.SamplesPerPixel = 10
	wantCamera.VFov = 30
	wantCamera.LookFrom = core.NewVec3(0, 1, 4)
	wantCamera.LookAt = core.NewVec3(0, 0, 0)
	if diff := cmp.Diff(wantCamera, s.Camera); diff != "" {
		t.Errorf("camera mismatch (-want +got):\n%s", diff)
	}

	wantBackground := renderer.Background{Top: core.NewVec3(0.1, 0.1, 0.3), Bottom: core.NewVec3(1, 1, 1)}
	if diff := cmp.Diff(wantBackground, s.Background); diff != "" {
		t.Errorf("background mismatch (-want +got):\n%s", diff)
	}

	if len(s.Shapes) != 3 {
		t.Fatalf("Expected 3 spheres, got %d", len(s.Shapes))
	}
	moving := s.Shapes[2].(*geometry.Sphere)
	if !moving.IsMoving() {
		t.Error("Expected third sphere to move")
	}
	metal, ok := moving.Material.(*material.Metal)
	if !ok {
		t.Fatalf("Expected metal material, got %T", moving.Material)
	}
	if metal.Fuzzness != 1 {
		t.Errorf("fuzz should be clamped to 1, got %f", metal.Fuzzness)
	}
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(empty): %v", err)
	}
	if len(s.Shapes) != 0 {
		t.Errorf("Expected no shapes, got %d", len(s.Shapes))
	}
	if diff := cmp.Diff(renderer.DefaultCameraConfig(), s.Camera); diff != "" {
		t.Errorf("empty scene should use the default camera (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		cause error
	}{
		{
			name:  "zero radius",
			yaml:  "materials: {m: {type: lambertian, albedo: [1,1,1]}}\nspheres: [{center: [0,0,0], radius: 0, material: m}]",
			cause: ErrInvalidScene,
		},
		{
			name:  "unknown material",
			yaml:  "spheres: [{center: [0,0,0], radius: 1, material: nope}]",
			cause: ErrInvalidScene,
		},
		{
			name:  "short vector",
			yaml:  "materials: {m: {type: lambertian, albedo: [1,1]}}",
			cause: ErrInvalidScene,
		},
		{
			name:  "unknown material type",
			yaml:  "materials: {m: {type: plastic}}",
			cause: ErrInvalidScene,
		},
		{
			name:  "zero samples",
			yaml:  "camera: {samples_per_pixel: 0}",
			cause: renderer.ErrInvalidSamples,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if errors.Cause(err) != tt.cause {
				t.Errorf("Parse() error = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("camera: {zoom: 2}")); err == nil {
		t.Error("Expected error for unknown camera key")
	}
}

func TestLoadFile_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lonely_ball.yaml")
	content := "materials: {m: {type: lambertian, albedo: [1,0,0]}}\nspheres: [{center: [0,0,-1], radius: 0.5, material: m}]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Name != "lonely_ball" {
		t.Errorf("name = %q, want lonely_ball", s.Name)
	}
	if len(s.Shapes) != 1 {
		t.Errorf("Expected 1 shape, got %d", len(s.Shapes))
	}
}
