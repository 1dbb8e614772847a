// Package integrator implements the renderer's path evaluator: an
// iterative, bounded-depth walk of the scene's BVH that accumulates a
// scalar reflectance contribution for a single ray at a single
// wavelength.
package integrator

import (
	"math"

	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
)

// MaxDepth bounds the number of bounces a path may take before it is
// silently terminated, guaranteeing O(1) stack usage per ray.
const MaxDepth = 50

// skyEpsilon keeps the hit-test lower bound away from the origin to
// avoid immediate self-intersection ("shadow acne").
const skyEpsilon = 0.001

var (
	skyWhite = color.RGB{R: 1, G: 1, B: 1}
	skyBlue  = color.RGB{R: 0.5, G: 0.7, B: 1.0}
)

// PathTracer evaluates single-wavelength radiance along a ray by
// iteratively bouncing it through the scene, rather than recursing —
// this bounds stack depth at MaxDepth regardless of path length.
type PathTracer struct {
	// RenderSky controls whether rays that escape the scene pick up a
	// simple sky gradient or contribute nothing.
	RenderSky bool
}

// NewPathTracer builds a PathTracer.
func NewPathTracer(renderSky bool) *PathTracer {
	return &PathTracer{RenderSky: renderSky}
}

// Trace walks ray through world up to MaxDepth bounces, returning the
// accumulated scalar reflectance at ray's wavelength.
func (pt *PathTracer) Trace(ray geometry.Ray, world geometry.Hitable, rng geometry.Random) float64 {
	res := 0.0
	attenuation := 1.0

	for bounce := 0; bounce < MaxDepth; bounce++ {
		hit, ok := world.Hit(ray, skyEpsilon, math.Inf(1))
		if !ok {
			if pt.RenderSky {
				t := 0.5 * (ray.Direction.Normalize().Y + 1)
				sky := lerpReflectance(skyWhite, skyBlue, t, float32(ray.Wavelength))
				res += sky * attenuation
			}
			return res
		}

		mat := hit.Texture.Value(hit.UV)
		sr := mat.Scatter(ray, hit, rng)
		res += sr.Emittance * attenuation
		if !sr.Reflects {
			return res
		}

		attenuation *= sr.Attenuation
		ray = sr.Scattered
	}

	return res
}

// lerpReflectance linearly blends two reflectance sources at wl and
// interpolation factor t.
func lerpReflectance(a, b color.HasReflectance, t float64, wl float32) float64 {
	av, bv := float64(a.Reflect(wl)), float64(b.Reflect(wl))
	return av*(1-t) + bv*t
}
