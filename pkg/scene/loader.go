package scene

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrInvalidScene is returned for scene files that parse but describe an impossible scene
var ErrInvalidScene = errors.New("invalid scene")

// sceneFile is the YAML layout of a scene file
type sceneFile struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description"`
	Camera      cameraBlock             `yaml:"camera"`
	Background  *backgroundBlock        `yaml:"background"`
	Materials   map[string]materialSpec `yaml:"materials"`
	Spheres     []sphereSpec            `yaml:"spheres"`
}

// cameraBlock overrides individual default camera settings
type cameraBlock struct {
	AspectRatio     *float64  `yaml:"aspect_ratio"`
	ImageWidth      *int      `yaml:"image_width"`
	SamplesPerPixel *int      `yaml:"samples_per_pixel"`
	MaxDepth        *int      `yaml:"max_depth"`
	VFov            *float64  `yaml:"vfov"`
	LookFrom        []float64 `yaml:"look_from"`
	LookAt          []float64 `yaml:"look_at"`
	VUp             []float64 `yaml:"vup"`
	DefocusAngle    *float64  `yaml:"defocus_angle"`
	FocusDist       *float64  `yaml:"focus_dist"`
}

type backgroundBlock struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

type materialSpec struct {
	Type            string    `yaml:"type"`
	Albedo          []float64 `yaml:"albedo"`
	Fuzz            float64   `yaml:"fuzz"`
	RefractiveIndex float64   `yaml:"refractive_index"`
}

type sphereSpec struct {
	Center   []float64 `yaml:"center"`
	Center2  []float64 `yaml:"center2"` // Optional end position for motion blur
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// LoadFile reads a YAML scene file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scene file")
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse builds a scene from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse scene yaml")
	}

	s := newScene(file.Name)
	if err := file.Camera.apply(s); err != nil {
		return nil, err
	}
	if err := s.Camera.Validate(); err != nil {
		return nil, err
	}

	if file.Background != nil {
		top, err := toVec3(file.Background.Top, "background.top")
		if err != nil {
			return nil, err
		}
		bottom, err := toVec3(file.Background.Bottom, "background.bottom")
		if err != nil {
			return nil, err
		}
		s.Background.Top, s.Background.Bottom = top, bottom
	}

	materials := make(map[string]material.Material, len(file.Materials))
	for name, spec := range file.Materials {
		m, err := spec.build(name)
		if err != nil {
			return nil, err
		}
		materials[name] = m
	}

	for i, spec := range file.Spheres {
		sphere, err := spec.build(i, materials)
		if err != nil {
			return nil, err
		}
		s.Add(sphere)
	}

	return s, nil
}

func (c cameraBlock) apply(s *Scene) error {
	cfg := &s.Camera
	if c.AspectRatio != nil {
		cfg.AspectRatio = *c.AspectRatio
	}
	if c.ImageWidth != nil {
		cfg.ImageWidth = *c.ImageWidth
	}
	if c.SamplesPerPixel != nil {
		cfg.SamplesPerPixel = *c.SamplesPerPixel
	}
	if c.MaxDepth != nil {
		cfg.MaxDepth = *c.MaxDepth
	}
	if c.VFov != nil {
		cfg.VFov = *c.VFov
	}
	if c.DefocusAngle != nil {
		cfg.DefocusAngle = *c.DefocusAngle
	}
	if c.FocusDist != nil {
		cfg.FocusDist = *c.FocusDist
	}

	vectors := []struct {
		value []float64
		field string
		dst   *core.Vec3
	}{
		{c.LookFrom, "camera.look_from", &cfg.LookFrom},
		{c.LookAt, "camera.look_at", &cfg.LookAt},
		{c.VUp, "camera.vup", &cfg.VUp},
	}
	for _, v := range vectors {
		if v.value == nil {
			continue
		}
		vec, err := toVec3(v.value, v.field)
		if err != nil {
			return err
		}
		*v.dst = vec
	}
	return nil
}

func (m materialSpec) build(name string) (material.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		albedo, err := toVec3(m.Albedo, "materials."+name+".albedo")
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := toVec3(m.Albedo, "materials."+name+".albedo")
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, m.Fuzz), nil
	case "dielectric":
		if !(m.RefractiveIndex > 0) {
			return nil, errors.Wrapf(ErrInvalidScene, "materials.%s.refractive_index must be positive", name)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	}
	return nil, errors.Wrapf(ErrInvalidScene, "materials.%s has unknown type %q", name, m.Type)
}

func (sp sphereSpec) build(index int, materials map[string]material.Material) (geometry.Shape, error) {
	center, err := toVec3(sp.Center, "spheres[].center")
	if err != nil {
		return nil, errors.Wrapf(err, "sphere %d", index)
	}
	if sp.Radius == 0 || math.IsNaN(sp.Radius) || math.IsInf(sp.Radius, 0) {
		return nil, errors.Wrapf(ErrInvalidScene, "sphere %d has radius %v", index, sp.Radius)
	}
	m, ok := materials[sp.Material]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScene, "sphere %d references unknown material %q", index, sp.Material)
	}

	if sp.Center2 == nil {
		return geometry.NewSphere(center, sp.Radius, m), nil
	}
	center2, err := toVec3(sp.Center2, "spheres[].center2")
	if err != nil {
		return nil, errors.Wrapf(err, "sphere %d", index)
	}
	return geometry.NewMovingSphere(center, center2, sp.Radius, m), nil
}

func toVec3(values []float64, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, errors.Wrapf(ErrInvalidScene, "%s needs 3 components, got %d", field, len(values))
	}
	v := core.NewVec3(values[0], values[1], values[2])
	if !v.IsFinite() {
		return core.Vec3{}, errors.Wrapf(ErrInvalidScene, "%s is not finite", field)
	}
	return v, nil
}
