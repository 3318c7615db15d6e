package material

import "math"

// Common refractive indices
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.5
	Diamond = 2.417
)

// Reflectance calculates the fraction of light reflected at a boundary using
// Schlick's approximation. cosI is the cosine between the eye vector and the
// normal, n1 and n2 the indices on the incoming and outgoing sides.
// Total internal reflection returns 1.
func Reflectance(cosI, n1, n2 float64) float64 {
	cos := cosI

	if n1 > n2 {
		ratio := n1 / n2
		sin2T := ratio * ratio * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
