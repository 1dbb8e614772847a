package camera

import (
	"math"
	"testing"

	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/random"
)

func TestGetRayOriginAtLookFromWhenApertureZero(t *testing.T) {
	cam := New(
		geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 0, -1), geometry.NewVec3(0, 1, 0),
		90, 1, 0, 1, 0, 1,
	)
	rng := random.New(1)
	ray := cam.GetRay(0.5, 0.5, 550, rng)
	if !ray.Origin.Equals(geometry.NewVec3(0, 0, 0)) {
		t.Errorf("origin = %v, want {0,0,0} with zero aperture", ray.Origin)
	}
}

func TestGetRayCentersLookDirectionAtMidScreen(t *testing.T) {
	cam := New(
		geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 0, -1), geometry.NewVec3(0, 1, 0),
		90, 1, 0, 1, 0, 1,
	)
	rng := random.New(2)
	ray := cam.GetRay(0.5, 0.5, 550, rng)
	dir := ray.Direction.Normalize()
	want := geometry.NewVec3(0, 0, -1)
	if dir.Subtract(want).Length() > 1e-9 {
		t.Errorf("direction at screen center = %v, want %v", dir, want)
	}
}

func TestGetRayTimeWithinShutterInterval(t *testing.T) {
	cam := New(
		geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 0, -1), geometry.NewVec3(0, 1, 0),
		90, 1, 0.1, 1, 0.25, 0.75,
	)
	rng := random.New(3)
	for i := 0; i < 50; i++ {
		ray := cam.GetRay(0.3, 0.6, 550, rng)
		if ray.Time < 0.25 || ray.Time > 0.75 {
			t.Fatalf("ray.Time = %v, want within [0.25, 0.75]", ray.Time)
		}
	}
}

func TestGetRayWavelengthPreserved(t *testing.T) {
	cam := New(geometry.NewVec3(0, 0, 0), geometry.NewVec3(0, 0, -1), geometry.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 1)
	rng := random.New(4)
	ray := cam.GetRay(0.1, 0.9, 612.5, rng)
	if math.Abs(ray.Wavelength-612.5) > 1e-9 {
		t.Errorf("wavelength = %v, want 612.5", ray.Wavelength)
	}
}
