package geometry

import (
	"sort"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

var bvhLogger = log.New("bvh")

// bvhChild references either another node or, for leaves, a shape
type bvhChild struct {
	index int
	leaf  bool
}

// bvhNode is an arena entry. Its bounding box is the union of both children.
type bvhNode struct {
	boundingBox core.AABB
	left, right bvhChild
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int // Internal nodes in the arena
	Shapes   int // Primitives referenced by the tree
	MaxDepth int // Longest root-to-node path
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes are stored in a flat slice and reference each other by index.
type BVH struct {
	nodes  []bvhNode
	shapes []Shape
	root   int // -1 for an empty hierarchy
	stats  BVHStats
}

// NewBVH constructs a BVH from a slice of shapes.
//
// The split axis at every level is drawn from sampler, so two builds over the
// same shapes can produce different trees. Every tree answers queries identically.
func NewBVH(shapes []Shape, sampler core.Sampler) *BVH {
	bvh := &BVH{root: -1}
	if len(shapes) == 0 {
		return bvh
	}

	// Make a copy of the shapes slice to avoid reordering the caller's scene
	bvh.shapes = make([]Shape, len(shapes))
	copy(bvh.shapes, shapes)
	bvh.nodes = make([]bvhNode, 0, len(shapes))
	bvh.stats.Shapes = len(shapes)

	start := time.Now()
	bvh.root = bvh.build(0, len(shapes), 0, sampler)
	bvhLogger.Debugf("BVH build time: %s, nodes: %d, shapes: %d, maxDepth: %d, center: %v",
		time.Since(start), bvh.stats.Nodes, bvh.stats.Shapes, bvh.stats.MaxDepth,
		bvh.BoundingBox().Center())

	return bvh
}

// build creates the node covering shapes[start:end) and returns its arena index
func (bvh *BVH) build(start, end, depth int, sampler core.Sampler) int {
	if depth > bvh.stats.MaxDepth {
		bvh.stats.MaxDepth = depth
	}

	axis := core.RandomInt(sampler, 0, 2)
	less := func(a, b Shape) bool {
		return a.BoundingBox().Axis(axis).Min < b.BoundingBox().Axis(axis).Min
	}

	// Reserve the slot first; children are appended after it
	index := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{})
	bvh.stats.Nodes++

	var node bvhNode
	switch span := end - start; span {
	case 1:
		node.left = bvhChild{index: start, leaf: true}
		node.right = node.left
	case 2:
		node.left = bvhChild{index: start, leaf: true}
		node.right = bvhChild{index: start + 1, leaf: true}
		if !less(bvh.shapes[start], bvh.shapes[start+1]) {
			node.left, node.right = node.right, node.left
		}
	default:
		sub := bvh.shapes[start:end]
		sort.Slice(sub, func(i, j int) bool {
			return less(sub[i], sub[j])
		})

		mid := start + span/2
		node.left = bvhChild{index: bvh.build(start, mid, depth+1, sampler)}
		node.right = bvhChild{index: bvh.build(mid, end, depth+1, sampler)}
	}

	node.boundingBox = core.NewAABBUnion(bvh.childBox(node.left), bvh.childBox(node.right))
	bvh.nodes[index] = node
	return index
}

func (bvh *BVH) childBox(child bvhChild) core.AABB {
	if child.leaf {
		return bvh.shapes[child.index].BoundingBox()
	}
	return bvh.nodes[child.index].boundingBox
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if bvh.root < 0 {
		return nil, false
	}
	return bvh.hitNode(bvh.root, ray, rayT)
}

// hitNode tests the left subtree, then the right subtree limited to anything
// closer than the left hit
func (bvh *BVH) hitNode(index int, ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.boundingBox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := bvh.hitChild(node.left, ray, rayT)

	// Single-shape nodes reference the same shape twice
	if node.right == node.left {
		return leftHit, hitLeft
	}

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}

	if rightHit, hitRight := bvh.hitChild(node.right, ray, rightT); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

func (bvh *BVH) hitChild(child bvhChild, ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if child.leaf {
		return bvh.shapes[child.index].Hit(ray, rayT)
	}
	return bvh.hitNode(child.index, ray, rayT)
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.root < 0 {
		return core.EmptyAABB
	}
	return bvh.nodes[bvh.root].boundingBox
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	return bvh.stats
}
