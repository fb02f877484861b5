package scene

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in scene nor a file
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	description string
	build       func(sampler core.Sampler) *Scene
}

var builtinScenes = map[string]builtinScene{
	"sky": {
		description: "Empty world showing only the background gradient",
		build:       func(core.Sampler) *Scene { return newScene("sky") },
	},
	"two-spheres": {
		description: "Diffuse sphere resting on a large ground sphere",
		build:       func(core.Sampler) *Scene { return NewTwoSpheresScene() },
	},
	"materials": {
		description: "Diffuse, hollow glass and metal spheres with depth of field",
		build:       func(core.Sampler) *Scene { return NewMaterialsScene() },
	},
	"random-spheres": {
		description: "Field of small random spheres, some in motion, around three large ones",
		build:       NewRandomSpheresScene,
	},
}

// BuiltinNames returns the built-in scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltin creates a built-in scene. The sampler drives any random placement.
func NewBuiltin(name string, sampler core.Sampler) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", name)
	}
	return builtin.build(sampler), nil
}

// NewTwoSpheresScene creates a small sphere at (0,0,-1) above a ground sphere
// seen through the default camera
func NewTwoSpheresScene() *Scene {
	s := newScene("two-spheres")
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	return s
}

// NewMaterialsScene creates one sphere per material. The glass sphere is hollow:
// a second glass sphere with negative radius flips the inner surface.
func NewMaterialsScene() *Scene {
	s := newScene("materials")
	s.Camera.VFov = 20
	s.Camera.LookFrom = core.NewVec3(-2, 2, 1)
	s.Camera.LookAt = core.NewVec3(0, 0, -1)
	s.Camera.DefocusAngle = 10.0
	s.Camera.FocusDist = 3.4

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.50)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), -0.4, materialLeft),
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialRight),
	)
	return s
}

// NewRandomSpheresScene creates the grid of random small spheres. Diffuse
// spheres bounce upward during the shutter interval.
func NewRandomSpheresScene(sampler core.Sampler) *Scene {
	s := newScene("random-spheres")
	s.Camera.VFov = 20
	s.Camera.LookFrom = core.NewVec3(13, 2, 3)
	s.Camera.LookAt = core.NewVec3(0, 0, 0)
	s.Camera.DefocusAngle = 0.6
	s.Camera.FocusDist = 10.0

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3InRange(sampler, 0, 1).MultiplyVec(core.RandomVec3InRange(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomInRange(sampler, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3InRange(sampler, 0.5, 1)
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s
}
