package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval.
// A negative radius flips the normals inward, which is useful for hollow glass.
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Radius   float64
	Material material.Material

	motion      core.Vec3 // Center displacement between time 0 and time 1
	boundingBox core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:      center,
		Radius:      radius,
		Material:    material,
		boundingBox: core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0
// to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))

	return &Sphere{
		Center:      center1,
		Radius:      radius,
		Material:    material,
		motion:      center2.Subtract(center1),
		boundingBox: core.NewAABBUnion(box1, box2),
	}
}

// IsMoving reports whether the sphere center changes over time
func (s *Sphere) IsMoving() bool {
	return s.motion != core.Vec3{}
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients with b = 2*halfB
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the radius normalizes without a square root
	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.boundingBox
}
