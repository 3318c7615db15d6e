package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflection model for one light at a surface point.
// The ambient term always contributes; diffuse and specular are dropped when the
// point is in shadow or the light is behind the surface.
func Lighting(m material.Material, object material.ObjectSpace, light PointLight,
	point, eyev, normalv core.Tuple, inShadow bool) core.Color {

	surface := m.ColorAt(object, point)
	effective := surface.Blend(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		// Light sits on the surface point; there is no direction to shade with
		return ambient
	}

	// Cosine of the angle between light and normal. Zero covers grazing light
	// and the zero normal at a cone apex; neither gets diffuse or specular.
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal <= 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
