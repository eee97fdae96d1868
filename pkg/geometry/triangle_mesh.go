package geometry

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TriangleMesh is an indexed set of triangles sharing one material.
// It keeps its own BVH so a mesh is a single shape to the scene's BVH.
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
}

// NewTriangleMesh creates a mesh from vertices and face indices, each group
// of three indices forming one counter-clockwise triangle. random picks the
// split axes of the mesh's BVH.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material, random *rand.Rand) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	triangles := make([]Shape, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range []int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i/3, index, len(vertices))
			}
		}

		// Degenerate faces have no plane to hit
		edge1 := vertices[i1].Subtract(vertices[i0])
		edge2 := vertices[i2].Subtract(vertices[i0])
		if edge1.Cross(edge2).NearZero() {
			continue
		}

		triangles = append(triangles, NewTriangleFromVertices(vertices[i0], vertices[i1], vertices[i2], mat))
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles, random),
	}, nil
}

// GetTriangleCount returns the number of non-degenerate triangles in the mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// Hit tests if a ray intersects any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return tm.bvh.Hit(ray, rayT)
}

// BoundingBox returns the bounding box of all triangles
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}
