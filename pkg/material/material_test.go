package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/random"
)

func TestLambertianAttenuationMatchesReflectance(t *testing.T) {
	albedo := color.RGB{R: 0.5, G: 0.5, B: 0.5}
	lam := NewLambertian(albedo)
	rng := random.New(1)

	hit := geometry.HitRecord{Point: geometry.NewVec3(0, 0, 0), Normal: geometry.NewVec3(0, 1, 0)}
	rayIn := geometry.NewRay(geometry.NewVec3(0, -1, 0), geometry.NewVec3(0, 1, 0), 500, 0)

	result := lam.Scatter(rayIn, hit, rng)
	require.True(t, result.Reflects, "expected Lambertian to reflect")
	want := float64(albedo.Reflect(500))
	assert.InDelta(t, want, result.Attenuation, 1e-6)
}

func TestLambertianScatteredOriginIsHitPoint(t *testing.T) {
	lam := NewLambertian(color.RGB{R: 1, G: 1, B: 1})
	rng := random.New(2)
	hit := geometry.HitRecord{Point: geometry.NewVec3(1, 2, 3), Normal: geometry.NewVec3(0, 1, 0)}
	rayIn := geometry.NewRay(geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 1, 0), 500, 0)

	result := lam.Scatter(rayIn, hit, rng)
	assert.True(t, result.Scattered.Origin.Equals(hit.Point), "scattered origin = %v, want %v", result.Scattered.Origin, hit.Point)
}

func TestMetalZeroFuzzIsPerfectMirror(t *testing.T) {
	metal := NewMetal(color.RGB{R: 0.8, G: 0.8, B: 0.8}, 0)
	rng := random.New(3)

	hit := geometry.HitRecord{Point: geometry.NewVec3(0, 0, 0), Normal: geometry.NewVec3(0, 1, 0)}
	rayIn := geometry.NewRay(geometry.NewVec3(1, -1, 0), geometry.NewVec3(1, -1, 0).Normalize(), 500, 0)

	result := metal.Scatter(rayIn, hit, rng)
	want := reflect(rayIn.Direction, hit.Normal)
	assert.True(t, result.Scattered.Direction.Equals(want), "reflected direction = %v, want %v", result.Scattered.Direction, want)
}

func TestMetalFuzzClampedToUnitInterval(t *testing.T) {
	m := NewMetal(color.RGB{R: 1, G: 1, B: 1}, 5)
	assert.Equal(t, 1.0, m.Fuzz)
	m2 := NewMetal(color.RGB{R: 1, G: 1, B: 1}, -5)
	assert.Equal(t, 0.0, m2.Fuzz)
}

func TestDielectricAttenuationIsOne(t *testing.T) {
	rng := random.New(7)
	hit := geometry.HitRecord{Point: geometry.NewVec3(0, 0, 0), Normal: geometry.NewVec3(0, 1, 0)}
	rayIn := geometry.NewRay(geometry.NewVec3(0, 1, 0), geometry.NewVec3(0, -1, 0), 550, 0)

	result := BAF10.Scatter(rayIn, hit, rng)
	assert.Equal(t, 1.0, result.Attenuation)
	assert.True(t, result.Reflects, "expected Dielectric to always produce a scattered ray")
}

func TestDielectricRefractiveIndexPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		wl := 380 + rng.Float64()*400
		for _, glass := range []*Dielectric{BAF10, SF11, SF66} {
			n := glass.refractiveIndex(wl)
			require.Falsef(t, n <= 1.0 || math.IsNaN(n), "refractiveIndex(%v) = %v, want > 1 and finite", wl, n)
		}
	}
}

func TestDielectricGrazingIncidenceCanTotallyInternallyReflect(t *testing.T) {
	rng := random.New(21)
	// A ray inside the glass hitting the surface at a steep grazing
	// angle always totally internally reflects (the Snell discriminant is
	// negative), so the scattered ray turns back below the surface.
	hit := geometry.HitRecord{Point: geometry.NewVec3(0, 0, 0), Normal: geometry.NewVec3(0, 1, 0)}
	rayIn := geometry.NewRay(geometry.NewVec3(0, 0, 0), geometry.NewVec3(0.999, 0.001, 0).Normalize(), 550, 0)

	result := SF11.Scatter(rayIn, hit, rng)
	assert.Negative(t, result.Scattered.Direction.Dot(hit.Normal), "expected total internal reflection back below the surface")
}

func TestDiffuseLightEmitsAndDoesNotReflect(t *testing.T) {
	light := NewDiffuseLight(color.RGB{R: 1, G: 0.9, B: 0.8})
	rng := random.New(4)
	hit := geometry.HitRecord{}
	rayIn := geometry.NewRay(geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 1, 0), 500, 0)

	result := light.Scatter(rayIn, hit, rng)
	assert.False(t, result.Reflects, "expected DiffuseLight to never reflect")
	want := float64(light.Light.Reflect(500))
	assert.InDelta(t, want, result.Emittance, 1e-6)
}
