package renderer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

var (
	ErrInvalidAspect  = errors.New("aspect ratio must be positive")
	ErrInvalidWidth   = errors.New("image width must be positive")
	ErrInvalidSamples = errors.New("samples per pixel must be positive")
	ErrInvalidDepth   = errors.New("max depth must not be negative")
	ErrInvalidFov     = errors.New("vertical field of view must be in (0, 180) degrees")
	ErrInvalidFocus   = errors.New("focus distance must be positive")
	ErrInvalidDefocus = errors.New("defocus angle must be in [0, 180) degrees")
	ErrDegenerateView = errors.New("camera view basis is degenerate")
)

// CameraConfig contains all camera and sampling parameters
type CameraConfig struct {
	AspectRatio     float64 // Ideal width / height
	ImageWidth      int     // Rendered image width in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth

	VFov         float64   // Vertical field of view in degrees
	LookFrom     core.Vec3 // Camera position
	LookAt       core.Vec3 // Point the camera looks at
	VUp          core.Vec3 // Camera-relative up direction
	DefocusAngle float64   // Variation angle of rays through each pixel, 0 disables depth of field
	FocusDist    float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns a camera at the origin looking down -Z with a
// viewport two units tall at unit distance
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       1,
	}
}

// ImageHeight returns floor(width / aspect), never less than 1
func (c CameraConfig) ImageHeight() int {
	height := int(float64(c.ImageWidth) / c.AspectRatio)
	if height < 1 {
		return 1
	}
	return height
}

// Validate checks that the configuration describes a renderable camera
func (c CameraConfig) Validate() error {
	switch {
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return errors.Wrapf(ErrInvalidAspect, "aspect ratio %v", c.AspectRatio)
	case c.ImageWidth <= 0:
		return errors.Wrapf(ErrInvalidWidth, "image width %d", c.ImageWidth)
	case c.SamplesPerPixel <= 0:
		return errors.Wrapf(ErrInvalidSamples, "samples per pixel %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return errors.Wrapf(ErrInvalidDepth, "max depth %d", c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return errors.Wrapf(ErrInvalidFov, "vfov %v", c.VFov)
	case !(c.FocusDist > 0):
		return errors.Wrapf(ErrInvalidFocus, "focus distance %v", c.FocusDist)
	case !(c.DefocusAngle >= 0 && c.DefocusAngle < 180):
		return errors.Wrapf(ErrInvalidDefocus, "defocus angle %v", c.DefocusAngle)
	}

	forward := c.LookFrom.Subtract(c.LookAt)
	if forward.NearZero() {
		return errors.Wrapf(ErrDegenerateView, "look from %v equals look at %v", c.LookFrom, c.LookAt)
	}
	if c.VUp.Cross(forward).NearZero() {
		return errors.Wrapf(ErrDegenerateView, "up vector %v is parallel to the view direction", c.VUp)
	}
	return nil
}
