package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals  []core.Tuple // Optional per-vertex normals; produces smooth triangles
	Material *material.Material
}

// NewTriangleMesh creates a group of triangles from vertices and face indices.
// Each consecutive three indices form one triangle.
func NewTriangleMesh(vertices []core.Tuple, faces []int, options *TriangleMeshOptions) (*Group, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	if options != nil && options.Normals != nil && len(options.Normals) != len(vertices) {
		return nil, fmt.Errorf("got %d normals for %d vertices", len(options.Normals), len(vertices))
	}

	triangles := make([]Shape, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		idx := [3]int{faces[i], faces[i+1], faces[i+2]}
		for _, j := range idx {
			if j < 0 || j >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range", i/3, j)
			}
		}

		triangle, err := newMeshTriangle(vertices, idx, options)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i/3, err)
		}
		if options != nil && options.Material != nil {
			triangle.SetMaterial(*options.Material)
		}
		triangles = append(triangles, triangle)
	}

	group := NewGroup()
	group.AddChild(triangles...)
	return group, nil
}

func newMeshTriangle(vertices []core.Tuple, idx [3]int, options *TriangleMeshOptions) (Shape, error) {
	p1, p2, p3 := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]
	if options != nil && options.Normals != nil {
		n := options.Normals
		smooth, err := NewSmoothTriangle(p1, p2, p3, n[idx[0]], n[idx[1]], n[idx[2]])
		if err != nil {
			return nil, err
		}
		return smooth, nil
	}

	flat, err := NewTriangle(p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return flat, nil
}
