// Package material implements the renderer's scatter/emit models:
// Lambertian diffuse, fuzzed specular Metal, dispersive Dielectric
// glass, and DiffuseLight emitters.
package material

import (
	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
)

// zeroDirectionEpsilon bounds how short a sampled scatter direction may
// be before it's treated as degenerate and resampled.
const zeroDirectionEpsilon = 1e-8

// maxResampleAttempts caps the zero-direction resample loop; a second
// rejection is astronomically unlikely, so this is purely a safety net
// against an unbounded loop.
const maxResampleAttempts = 8

// Lambertian is a perfectly diffuse material. Its reflectance may be a
// plain RGB color or a full Spectrum — anything implementing
// color.HasReflectance.
type Lambertian struct {
	Albedo color.HasReflectance
}

// NewLambertian builds a Lambertian material from its reflectance source.
func NewLambertian(albedo color.HasReflectance) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter samples a direction by adding a unit-ball vector to the hit
// normal, resampling on the rare case the result lands too close to
// zero, and attenuates by the albedo's reflectance at the ray's
// wavelength.
func (l *Lambertian) Scatter(rayIn geometry.Ray, hit geometry.HitRecord, rng geometry.Random) geometry.ScatterResult {
	direction := hit.Normal.Add(rng.UnitBall())
	for attempt := 0; direction.Length() < zeroDirectionEpsilon && attempt < maxResampleAttempts; attempt++ {
		direction = hit.Normal.Add(rng.UnitBall())
	}
	if direction.Length() < zeroDirectionEpsilon {
		direction = hit.Normal
	}

	scattered := geometry.NewRay(hit.Point, direction, rayIn.Wavelength, rayIn.Time)
	return geometry.ScatterResult{
		Attenuation: float64(l.Albedo.Reflect(float32(rayIn.Wavelength))),
		Scattered:   scattered,
		Reflects:    true,
	}
}

var _ geometry.Material = (*Lambertian)(nil)
