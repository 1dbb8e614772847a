// Package camera implements the renderer's thin-lens camera: ray
// generation from screen coordinates with depth-of-field and a motion
// shutter interval.
package camera

import (
	"math"

	"github.com/cbro/rayer-go/pkg/geometry"
)

// Camera is an immutable thin-lens camera. Its basis and focal-plane
// vectors are derived once at construction from the standard
// look-from/look-at/up/vfov/aspect/aperture/focus-distance parameters.
type Camera struct {
	origin          geometry.Vec3
	lowerLeftCorner geometry.Vec3
	horizontal      geometry.Vec3
	vertical        geometry.Vec3
	u, v            geometry.Vec3
	lensRadius      float64
	time0, time1    float64
}

// New builds a Camera. vfov is the vertical field of view in degrees;
// aspect is width/height; aperture is the lens diameter (0 disables
// depth of field); focusDist is the distance to the focal plane;
// [time0,time1] is the shutter interval rays are drawn from.
func New(lookFrom, lookAt, up geometry.Vec3, vfov, aspect, aperture, focusDist, time0, time1 float64) *Camera {
	lensRadius := aperture / 2
	theta := vfov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := lookFrom.
		Subtract(u.Multiply(halfWidth * focusDist)).
		Subtract(v.Multiply(halfHeight * focusDist)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDist),
		vertical:        v.Multiply(2 * halfHeight * focusDist),
		u:               u,
		v:               v,
		lensRadius:      lensRadius,
		time0:           time0,
		time1:           time1,
	}
}

// GetRay generates a ray through screen coordinates (s,t) ∈ [0,1]² at
// wavelength wl, jittering the origin across the lens via rng's unit
// disk sample and the shutter time uniformly across [time0,time1].
func (c *Camera) GetRay(s, t, wl float64, rng geometry.Random) geometry.Ray {
	rd := rng.UnitDisk().Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	ti := rng.Range(c.time0, c.time1)
	return geometry.NewRay(origin, direction, wl, ti)
}
