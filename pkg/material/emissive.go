package material

import (
	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
)

// DiffuseLight is a material that only emits; it terminates every ray
// that hits it rather than scattering.
type DiffuseLight struct {
	Light color.HasReflectance
}

// NewDiffuseLight builds a DiffuseLight from its emission source.
func NewDiffuseLight(light color.HasReflectance) *DiffuseLight {
	return &DiffuseLight{Light: light}
}

// Scatter reports the light's emittance at the ray's wavelength and
// terminates the path (Reflects stays false).
func (e *DiffuseLight) Scatter(rayIn geometry.Ray, hit geometry.HitRecord, rng geometry.Random) geometry.ScatterResult {
	return geometry.ScatterResult{
		Emittance: float64(e.Light.Reflect(float32(rayIn.Wavelength))),
	}
}

var _ geometry.Material = (*DiffuseLight)(nil)
