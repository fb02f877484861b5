package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Hit reports the nearest intersection whose parameter lies strictly inside
// rayT. The returned normal always opposes the ray direction.
// BoundingBox bounds the shape over the whole shutter interval.
type Shape interface {
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
