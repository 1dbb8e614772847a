package geometry

// Ray is a half-line with an origin and a direction. Direction is not
// required to be unit length. Wavelength and shutter time ride along so
// every downstream intersection/scatter call has them without threading
// extra arguments. InvDirection and Sign are precomputed once at
// construction so every slab test downstream amortises the division.
type Ray struct {
	Origin    Vec3
	Direction Vec3

	// Wavelength in nanometres this ray carries a spectral sample for.
	Wavelength float64

	// Time is the shutter-relative sample time in [0,1], used to
	// interpolate moving primitives (see primitive.Sphere).
	Time float64

	InvDirection Vec3
	Sign         [3]bool
}

// NewRay builds a ray for wavelength wl at shutter time ti, precomputing
// the reciprocal direction and sign table used by AABB slab tests.
func NewRay(origin, direction Vec3, wl, ti float64) Ray {
	inv := Vec3{X: 1 / direction.X, Y: 1 / direction.Y, Z: 1 / direction.Z}
	return Ray{
		Origin:       origin,
		Direction:    direction,
		Wavelength:   wl,
		Time:         ti,
		InvDirection: inv,
		Sign:         [3]bool{inv.X < 0, inv.Y < 0, inv.Z < 0},
	}
}

// NewRayTo builds a ray from origin towards target, normalizing the
// direction.
func NewRayTo(origin, target Vec3, wl, ti float64) Ray {
	return NewRay(origin, target.Subtract(origin).Normalize(), wl, ti)
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
