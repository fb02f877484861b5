package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// HittableList tests every shape in turn. It is the reference the BVH must agree with.
type HittableList struct {
	Shapes      []Shape
	boundingBox core.AABB
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{boundingBox: core.EmptyAABB}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the bounding box
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.boundingBox = core.NewAABBUnion(l.boundingBox, shape.BoundingBox())
}

// Hit returns the closest hit across all shapes
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all shape bounding boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.boundingBox
}
