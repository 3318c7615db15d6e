package geometry

import (
	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Computations holds everything the shading pipeline needs about a hit
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Tuple // World-space hit point
	OverPoint  core.Tuple // Point nudged along the normal, origin for shadow and reflection rays
	UnderPoint core.Tuple // Point nudged into the surface, origin for refraction rays
	EyeV       core.Tuple // Toward the eye
	NormalV    core.Tuple // Surface normal, flipped to face the eye
	ReflectV   core.Tuple // Ray direction reflected around the normal
	Inside     bool       // True when the hit is on the inside of the surface
	N1, N2     float64    // Refractive indices of the media being exited and entered
}

// PrepareComputations derives shading data for hit. xs is the full, sorted
// intersection list for the ray and is used to work out n1 and n2.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = NormalAt(hit.Object, comps.Point, hit)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the intersections in order, tracking which objects
// the ray is currently inside, to find the media on either side of hit
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = material.Vacuum, material.Vacuum
	var containers []Shape

	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := lo.IndexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick returns the fraction of light reflected at this hit
func (c Computations) Schlick() float64 {
	return material.Reflectance(c.EyeV.Dot(c.NormalV), c.N1, c.N2)
}
