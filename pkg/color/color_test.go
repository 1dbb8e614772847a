package color

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Universal property 1: X/Y/Z are non-negative over [380,780]nm and
// never exceed the equal-energy whitepoint (1,1,1).
func TestXYZFromWavelengthBounds(t *testing.T) {
	for wl := 380; wl <= 780; wl++ {
		xyz := FromWavelength(float32(wl))
		assert.GreaterOrEqualf(t, xyz.X, float32(0), "X negative at %dnm", wl)
		assert.GreaterOrEqualf(t, xyz.Y, float32(0), "Y negative at %dnm", wl)
		assert.GreaterOrEqualf(t, xyz.Z, float32(0), "Z negative at %dnm", wl)
		assert.LessOrEqualf(t, xyz.X, float32(1), "X exceeds whitepoint at %dnm", wl)
		assert.LessOrEqualf(t, xyz.Y, float32(1), "Y exceeds whitepoint at %dnm", wl)
		assert.LessOrEqualf(t, xyz.Z, float32(1), "Z exceeds whitepoint at %dnm", wl)
	}
}

// S6: rgb_to_spectrum(0.5,0.5,0.5).reflect(500) ~= 0.5 +-0.001.
func TestSmitsGrey(t *testing.T) {
	got := RGB{R: 0.5, G: 0.5, B: 0.5}.Reflect(500)
	assert.InDelta(t, 0.5, got, 0.001)
}

// Universal property 3: grey RGB reflects ~= its intensity at every wl.
func TestSmitsGreyAllWavelengths(t *testing.T) {
	for _, intensity := range []float32{0.0, 0.3, 0.5, 0.7, 1.0} {
		grey := RGB{R: intensity, G: intensity, B: intensity}
		for wl := 380; wl <= 780; wl++ {
			got := grey.Reflect(float32(wl))
			assert.InDeltaf(t, intensity, got, 0.001, "wl=%d intensity=%v", wl, intensity)
		}
	}
}

// Universal property 2: reflectance stays within [min-0.01, max+0.01] of
// the RGB components, for random RGB triples across the visible range.
func TestSmitsReflectanceStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		r := float32(rng.Float64())
		g := float32(rng.Float64())
		b := float32(rng.Float64())
		rgb := RGB{R: r, G: g, B: b}

		minVal := min(r, min(g, b))
		maxVal := max(r, max(g, b))

		for wl := 380; wl <= 780; wl += 5 {
			got := rgb.Reflect(float32(wl))
			assert.GreaterOrEqualf(t, got, minVal-0.01, "wl=%d rgb=%v got=%v", wl, rgb, got)
			assert.LessOrEqualf(t, got, maxVal+0.01, "wl=%d rgb=%v got=%v", wl, rgb, got)
		}
	}
}

func TestSpectrumReflectClampsToEndBins(t *testing.T) {
	var s Spectrum
	s[0] = 0.1
	s[len(s)-1] = 0.9

	assert.Equal(t, float32(0.1), s.Reflect(0))
	assert.Equal(t, float32(0.9), s.Reflect(10000))
}

func TestSpectrumAddAndScale(t *testing.T) {
	var a, b Spectrum
	a[3] = 1.0
	b[3] = 2.0

	sum := a.Add(b)
	assert.Equal(t, float32(3.0), sum[3])

	scaled := sum.Scale(2)
	assert.Equal(t, float32(6.0), scaled[3])

	a.AddAssign(b)
	assert.Equal(t, float32(3.0), a[3])
}
