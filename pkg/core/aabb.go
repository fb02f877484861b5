package core

import "math"

// AABB represents an axis-aligned bounding box as three per-axis slabs
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains no points
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from three intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB with a and b as extrema, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Y: Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Z: Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	}
}

// NewAABBUnion returns an AABB that bounds both boxes
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// Axis returns the slab for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method.
//
// Zero direction components produce infinite slab distances, and a ray origin
// lying exactly on a slab plane produces NaN. Both are handled by the ordered
// comparisons below: a NaN bound never tightens the running interval.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invD := 1 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		outer, inner := aabb.Axis(axis), other.Axis(axis)
		if inner.IsEmpty() {
			continue
		}
		if inner.Min < outer.Min || inner.Max > outer.Max {
			return false
		}
	}
	return true
}

// IsEmpty reports whether any slab is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)/2,
		(aabb.Y.Min+aabb.Y.Max)/2,
		(aabb.Z.Min+aabb.Z.Max)/2,
	)
}
