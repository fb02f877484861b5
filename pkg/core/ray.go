package core

// Ray represents a ray with an origin, a direction and the time at which it was cast
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64 // Shutter time in [0,1], used by moving shapes
}

// NewRay creates a new ray cast at time 0
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a new ray cast at the given shutter time
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
