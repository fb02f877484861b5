package renderer

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting their own surface
const shadowAcneEpsilon = 0.001

var logger = log.New("renderer")

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Shape
	config     CameraConfig
	camera     *Camera
	background Background
	sampler    core.Sampler
}

// NewRaytracer creates a new raytracer. The sampler is owned by the raytracer
// for the duration of a render.
func NewRaytracer(world geometry.Shape, config CameraConfig, background Background, sampler core.Sampler) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid camera configuration")
	}
	if world == nil {
		world = geometry.NewHittableList()
	}

	return &Raytracer{
		world:      world,
		config:     config,
		camera:     NewCamera(config),
		background: background,
		sampler:    sampler,
	}, nil
}

// Camera returns the camera built from the configuration
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RayColor returns the radiance carried back along a ray with at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int) core.Vec3 {
	color, _, _ := rt.tracePath(r, depth)
	return color
}

// tracePath follows a path iteratively, carrying the product of attenuations
// gathered so far. It also reports how the path ended and how many world
// queries it made.
func (rt *Raytracer) tracePath(r core.Ray, depth int) (core.Vec3, pathOutcome, int) {
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.NewInterval(shadowAcneEpsilon, math.Inf(1))
	segments := 0

	for {
		// If we've exceeded the ray bounce limit, no more light is gathered
		if depth <= 0 {
			return core.Vec3{}, pathDepthExhausted, segments
		}

		segments++
		hit, isHit := rt.world.Hit(r, rayT)
		if !isHit {
			return throughput.MultiplyVec(rt.background.Color(r)), pathEscaped, segments
		}

		// Surfaces without a material absorb everything
		if hit.Material == nil {
			return core.Vec3{}, pathAbsorbed, segments
		}

		scatter, didScatter := hit.Material.Scatter(r, hit, rt.sampler)
		if !didScatter {
			return core.Vec3{}, pathAbsorbed, segments
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
		depth--
	}
}

// Render traces every pixel and streams the quantized colors to sink
func (rt *Raytracer) Render(sink PixelSink) (RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	samples := rt.config.SamplesPerPixel
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
	}
	start := time.Now()

	if err := sink.Begin(width, height); err != nil {
		return stats, errors.Wrap(err, "begin image")
	}

	pixelSamplesScale := 1.0 / float64(samples)
	for j := 0; j < height; j++ {
		logger.Debugf("Scanlines remaining: %d", height-j)

		for i := 0; i < width; i++ {
			pixelColor := core.Vec3{}
			for sample := 0; sample < samples; sample++ {
				ray := rt.camera.GetRay(i, j, rt.sampler)
				color, outcome, segments := rt.tracePath(ray, rt.config.MaxDepth)
				stats.record(outcome, segments)
				pixelColor = pixelColor.Add(color)
			}

			r, g, b := QuantizeColor(pixelColor.Multiply(pixelSamplesScale))
			if err := sink.WritePixel(r, g, b); err != nil {
				return stats, errors.Wrapf(err, "write pixel (%d, %d)", i, j)
			}
			stats.TotalPixels++
		}
	}

	if err := sink.Finish(); err != nil {
		return stats, errors.Wrap(err, "finish image")
	}

	stats.Duration = time.Since(start)
	logger.Infof("Rendered %dx%d at %d spp in %s (%d samples, %.2f bounces/sample)",
		width, height, samples, stats.Duration, stats.TotalSamples, stats.AverageBounces())

	return stats, nil
}
