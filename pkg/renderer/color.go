package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2. Non-positive components map to zero.
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// QuantizeColor converts an averaged linear color to 8-bit gamma-corrected components
func QuantizeColor(c core.Vec3) (r, g, b uint8) {
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

func quantize(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(linearToGamma(linear)))
}
