package material

import (
	"math"

	"github.com/cbro/rayer-go/pkg/geometry"
)

// Dielectric is a dispersive transparent material (glass). Its
// refractive index varies with wavelength per a three-term Sellmeier
// equation; reflection vs. refraction is chosen stochastically via the
// Schlick approximation to Fresnel reflectance.
type Dielectric struct {
	B1, B2, B3 float64
	C1, C2, C3 float64 // pre-scaled by 1e6, wavelengths in nm
}

// NewDielectric builds a Dielectric from its Sellmeier coefficients.
func NewDielectric(b1, b2, b3, c1, c2, c3 float64) *Dielectric {
	return &Dielectric{B1: b1, B2: b2, B3: b3, C1: c1, C2: c2, C3: c3}
}

// Named Sellmeier coefficient sets for common optical glasses, with c_k
// pre-scaled by 1e6 as the equation expects.
var (
	BAF10 = &Dielectric{B1: 1.5851495, B2: 0.143559385, B3: 1.08521269, C1: 9266.81282, C2: 42448.9805, C3: 105613573}
	SF11  = &Dielectric{B1: 1.73759695, B2: 0.313747346, B3: 1.89878101, C1: 13188.707, C2: 62306.8142, C3: 155236290}
	SF66  = &Dielectric{B1: 2.0245976, B2: 0.470187196, B3: 2.59970433, C1: 14705.3225, C2: 69299.8276, C3: 161817601}
)

// refractiveIndex evaluates the three-term Sellmeier equation at
// wavelength wl (nm).
func (d *Dielectric) refractiveIndex(wl float64) float64 {
	wl2 := wl * wl
	n2 := 1.0 +
		d.B1*wl2/(wl2-d.C1) +
		d.B2*wl2/(wl2-d.C2) +
		d.B3*wl2/(wl2-d.C3)
	return math.Sqrt(n2)
}

// Scatter picks a surface-relative normal and index ratio depending on
// whether the ray is entering or exiting the medium, attempts Snell
// refraction, and falls back to reflection on total internal
// reflection or a Schlick-weighted coin flip.
func (d *Dielectric) Scatter(rayIn geometry.Ray, hit geometry.HitRecord, rng geometry.Random) geometry.ScatterResult {
	n := d.refractiveIndex(rayIn.Wavelength)

	var normal geometry.Vec3
	var ratio, cosine float64
	dirLen := rayIn.Direction.Length()
	if rayIn.Direction.Dot(hit.Normal) > 0 {
		// exiting the medium
		normal = hit.Normal.Negate()
		ratio = n
		cosine = n * rayIn.Direction.Dot(hit.Normal) / dirLen
	} else {
		// entering the medium
		normal = hit.Normal
		ratio = 1 / n
		cosine = -rayIn.Direction.Dot(hit.Normal) / dirLen
	}

	unitDir := rayIn.Direction.Normalize()
	dt := unitDir.Dot(normal)
	disc := 1 - ratio*ratio*(1-dt*dt)

	var direction geometry.Vec3
	if disc <= 0 || schlick(cosine, n) > rng.Float64() {
		direction = reflect(rayIn.Direction, hit.Normal)
	} else {
		direction = unitDir.Subtract(normal.Multiply(dt)).Multiply(ratio).Subtract(normal.Multiply(math.Sqrt(disc)))
	}

	scattered := geometry.NewRay(hit.Point, direction, rayIn.Wavelength, rayIn.Time)
	return geometry.ScatterResult{
		Attenuation: 1.0,
		Scattered:   scattered,
		Reflects:    true,
	}
}

// schlick approximates Fresnel reflectance: r0 + (1-r0)(1-cosine)^5,
// with r0 = ((1-n)/(1+n))^2.
func schlick(cosine, n float64) float64 {
	r0 := (1 - n) / (1 + n)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

var _ geometry.Material = (*Dielectric)(nil)
