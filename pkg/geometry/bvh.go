package geometry

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// errInvalidBVHNode marks a node shape that construction never produces
var errInvalidBVHNode = errors.New("bvh: node must have two children or a shape")

// bvhNode is either an internal node with two children or a leaf with a shape
type bvhNode struct {
	bbox  core.AABB
	left  *bvhNode
	right *bvhNode
	shape Shape // nil for internal nodes
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable once built and safe for concurrent Hit calls.
type BVH struct {
	root *bvhNode
}

// NewBVH constructs a BVH from a slice of shapes. random picks the split
// axis at every level; seed it to get the same tree on every run.
func NewBVH(shapes []Shape, random *rand.Rand) *BVH {
	// Copy so sorting never reorders the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{root: buildBVH(shapesCopy, 0, len(shapesCopy), random)}
}

// buildBVH recursively builds the subtree over shapes[start:end]
func buildBVH(shapes []Shape, start, end int, random *rand.Rand) *bvhNode {
	axis := core.Axis(random.Intn(3))

	switch size := end - start; size {
	case 0:
		sentinel := emptyShape{}
		return &bvhNode{bbox: sentinel.BoundingBox(), shape: sentinel}
	case 1:
		return newLeaf(shapes[start])
	case 2:
		left := newLeaf(shapes[start])
		right := newLeaf(shapes[start+1])
		return &bvhNode{bbox: left.bbox.Union(right.bbox), left: left, right: right}
	default:
		sortShapesByAxis(shapes[start:end], axis)

		mid := start + size/2
		left := buildBVH(shapes, start, mid, random)
		right := buildBVH(shapes, mid, end, random)
		return &bvhNode{bbox: left.bbox.Union(right.bbox), left: left, right: right}
	}
}

func newLeaf(shape Shape) *bvhNode {
	return &bvhNode{bbox: shape.BoundingBox(), shape: shape}
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along the axis
func sortShapesByAxis(shapes []Shape, axis core.Axis) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Axis(axis).Min < shapes[j].BoundingBox().Axis(axis).Min
	})
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return bvh.root.hit(ray, rayT)
}

// hit returns the nearest hit in this subtree. Leaves skip their own box
// test because the parent already passed it.
func (n *bvhNode) hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if n.left == nil && n.right == nil {
		if n.shape == nil {
			panic(errInvalidBVHNode)
		}
		return n.shape.Hit(ray, rayT)
	}
	if n.left == nil || n.right == nil {
		panic(errInvalidBVHNode)
	}

	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.left.hit(ray, rayT)
	if !hitLeft {
		return n.right.hit(ray, rayT)
	}

	// Only a strictly closer hit on the right can win
	rayT.Max = leftHit.T
	if rightHit, hitRight := n.right.hit(ray, rayT); hitRight {
		return rightHit, true
	}
	return leftHit, true
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.root.bbox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	TotalShapes int // Leaves holding a real shape (the empty sentinel is not counted)
	MaxDepth    int
	AvgDepth    float64
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	collectStats(bvh.root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *bvhNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.shape != nil {
		stats.LeafNodes++
		if _, sentinel := node.shape.(emptyShape); !sentinel {
			stats.TotalShapes++
		}
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	if node.left != nil {
		collectStats(node.left, depth+1, stats)
	}
	if node.right != nil {
		collectStats(node.right, depth+1, stats)
	}
}
