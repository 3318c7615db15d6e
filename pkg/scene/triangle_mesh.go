package scene

import (
	"math"

	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// meshDivideThreshold is the leaf size used when partitioning meshes
const meshDivideThreshold = 4

// NewTriangleMeshScene creates a flat-shaded box and pyramid next to a
// smooth-shaded icosphere, all built from triangle meshes
func NewTriangleMeshScene() (*Preset, error) {
	b := newBuilder()
	b.add(geometry.NewPlane(), core.Identity(), matte(core.NewColor(0.7, 0.7, 0.7)))

	red := mirror(0.3)
	red.Color = core.NewColor(0.8, 0.2, 0.2)
	red.Diffuse = 0.6
	blue := matte(core.NewColor(0.2, 0.3, 0.8))
	gold := mirror(0.4)
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Diffuse = 0.6

	box, err := createBoxMesh(red)
	b.check(err)
	if box != nil {
		b.addComposite(box, core.Chain(core.RotationY(math.Pi/6), core.Translation(-2, 0.5, 0)))
	}

	pyramid, err := createPyramidMesh(1.5, 2.0, blue)
	b.check(err)
	if pyramid != nil {
		b.addComposite(pyramid, core.RotationY(math.Pi/4))
	}

	sphere, err := createIcosphereMesh(2, gold)
	b.check(err)
	if sphere != nil {
		b.addComposite(sphere, core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(2, 0.8, 0)))
	}

	b.world.AddLight(lights.NewPointLight(core.Point(-5, 8, -6), core.White))

	return b.finish(standardView(core.Point(0, 2.5, -6.5), core.Point(0, 0.8, 0)))
}

// createBoxMesh creates a unit box centered at the origin from 12 triangles
func createBoxMesh(m material.Material) (*geometry.Group, error) {
	vertices := []core.Tuple{
		core.Point(-0.5, -0.5, -0.5), // 0: left-bottom-back
		core.Point(+0.5, -0.5, -0.5), // 1: right-bottom-back
		core.Point(+0.5, +0.5, -0.5), // 2: right-top-back
		core.Point(-0.5, +0.5, -0.5), // 3: left-top-back
		core.Point(-0.5, -0.5, +0.5), // 4: left-bottom-front
		core.Point(+0.5, -0.5, +0.5), // 5: right-bottom-front
		core.Point(+0.5, +0.5, +0.5), // 6: right-top-front
		core.Point(-0.5, +0.5, +0.5), // 7: left-top-front
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // Z-
		4, 6, 5, 4, 7, 6, // Z+
		0, 3, 7, 0, 7, 4, // X-
		1, 5, 6, 1, 6, 2, // X+
		0, 4, 5, 0, 5, 1, // Y-
		3, 2, 6, 3, 6, 7, // Y+
	}

	return newDividedMesh(vertices, faces, nil, m)
}

// createPyramidMesh creates a square pyramid standing on y=0
func createPyramidMesh(baseSize, height float64, m material.Material) (*geometry.Group, error) {
	h := baseSize * 0.5

	vertices := []core.Tuple{
		core.Point(-h, 0, -h),    // 0: left-back
		core.Point(+h, 0, -h),    // 1: right-back
		core.Point(+h, 0, +h),    // 2: right-front
		core.Point(-h, 0, +h),    // 3: left-front
		core.Point(0, height, 0), // 4: apex
	}

	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}

	return newDividedMesh(vertices, faces, nil, m)
}

// icosahedron returns the 12 vertices and 20 faces of a regular icosahedron
func icosahedron() ([]core.Tuple, []int) {
	phi := math.Phi

	vertices := []core.Tuple{
		core.Point(-1, phi, 0), core.Point(1, phi, 0), core.Point(-1, -phi, 0), core.Point(1, -phi, 0),
		core.Point(0, -1, phi), core.Point(0, 1, phi), core.Point(0, -1, -phi), core.Point(0, 1, -phi),
		core.Point(phi, 0, -1), core.Point(phi, 0, 1), core.Point(-phi, 0, -1), core.Point(-phi, 0, 1),
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return vertices, faces
}

// unitSpherePoint projects a point onto the unit sphere
func unitSpherePoint(p core.Tuple) core.Tuple {
	v := core.Vector(p.X, p.Y, p.Z).MustNormalize()
	return core.Point(v.X, v.Y, v.Z)
}

// subdivide splits every face into four, pushing the new vertices onto the unit sphere
func subdivide(vertices []core.Tuple, faces []int) ([]core.Tuple, []int) {
	midpoints := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		pa, pb := vertices[a], vertices[b]
		vertices = append(vertices, unitSpherePoint(core.Point((pa.X+pb.X)/2, (pa.Y+pb.Y)/2, (pa.Z+pb.Z)/2)))
		midpoints[key] = len(vertices) - 1
		return len(vertices) - 1
	}

	result := make([]int, 0, len(faces)*4)
	for i := 0; i < len(faces); i += 3 {
		a, b, c := faces[i], faces[i+1], faces[i+2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		result = append(result,
			a, ab, ca,
			b, bc, ab,
			c, ca, bc,
			ab, bc, ca)
	}
	return vertices, result
}

// createIcosphereMesh creates a smooth-shaded unit sphere by subdividing an
// icosahedron the given number of times
func createIcosphereMesh(subdivisions int, m material.Material) (*geometry.Group, error) {
	vertices, faces := icosahedron()
	vertices = lo.Map(vertices, func(p core.Tuple, _ int) core.Tuple {
		return unitSpherePoint(p)
	})
	for i := 0; i < subdivisions; i++ {
		vertices, faces = subdivide(vertices, faces)
	}

	// On a unit sphere the normal is the position itself
	normals := lo.Map(vertices, func(p core.Tuple, _ int) core.Tuple {
		return core.Vector(p.X, p.Y, p.Z)
	})

	return newDividedMesh(vertices, faces, normals, m)
}

// newDividedMesh builds a mesh and partitions it into a bounding hierarchy
func newDividedMesh(vertices []core.Tuple, faces []int, normals []core.Tuple, m material.Material) (*geometry.Group, error) {
	mesh, err := geometry.NewTriangleMesh(vertices, faces, &geometry.TriangleMeshOptions{
		Normals:  normals,
		Material: &m,
	})
	if err != nil {
		return nil, err
	}
	mesh.Divide(meshDivideThreshold)
	return mesh, nil
}
