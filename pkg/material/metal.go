package material

import (
	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
)

// Metal is a specular reflector with an adjustable fuzz: 0 is a perfect
// mirror, 1 scatters widely around the reflection direction.
type Metal struct {
	Albedo color.HasReflectance
	Fuzz   float64
}

// NewMetal builds a Metal material, clamping fuzz to [0,1].
func NewMetal(albedo color.HasReflectance, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming direction about the hit normal and
// perturbs it by Fuzz times a unit-ball sample.
func (m *Metal) Scatter(rayIn geometry.Ray, hit geometry.HitRecord, rng geometry.Random) geometry.ScatterResult {
	reflected := reflect(rayIn.Direction, hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(rng.UnitBall().Multiply(m.Fuzz))
	}

	scattered := geometry.NewRay(hit.Point, reflected, rayIn.Wavelength, rayIn.Time)
	return geometry.ScatterResult{
		Attenuation: float64(m.Albedo.Reflect(float32(rayIn.Wavelength))),
		Scattered:   scattered,
		Reflects:    true,
	}
}

// reflect computes r = v - 2*dot(v,n)*n.
func reflect(v, n geometry.Vec3) geometry.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

var _ geometry.Material = (*Metal)(nil)
