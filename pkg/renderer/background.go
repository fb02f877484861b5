package renderer

import "github.com/df07/go-weekend-raytracer/pkg/core"

// Background is the vertical sky gradient returned for rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color straight up
	Bottom core.Vec3 // Color straight down
}

// DefaultBackground returns the white to light blue sky
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, a)
}
