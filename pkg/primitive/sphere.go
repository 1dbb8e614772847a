// Package primitive implements the renderer's geometric primitives:
// spheres (possibly moving across a shutter interval), triangles and
// triangle meshes, and the Translate/RotateY/Scale decorators.
package primitive

import (
	"math"

	"github.com/cbro/rayer-go/pkg/geometry"
)

// Sphere is a sphere that may move linearly between Center0 (at Time0)
// and Center1 (at Time1) across the camera's shutter interval — used
// for motion blur. A negative Radius inverts the surface normal,
// producing an inward-facing surface (hollow glass).
type Sphere struct {
	Center0, Center1 geometry.Vec3
	Time0, Time1     float64
	Radius           float64
	Tex               geometry.Texture
}

// NewStationarySphere builds a sphere that does not move.
func NewStationarySphere(center geometry.Vec3, radius float64, tex geometry.Texture) *Sphere {
	return &Sphere{Center0: center, Center1: center, Time0: 0, Time1: 1, Radius: radius, Tex: tex}
}

// NewMovingSphere builds a sphere whose center interpolates linearly
// between center0 (at time0) and center1 (at time1).
func NewMovingSphere(center0, center1 geometry.Vec3, time0, time1, radius float64, tex geometry.Texture) *Sphere {
	return &Sphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Tex: tex}
}

// centerAt linearly interpolates the sphere's center at shutter time ti.
func (s *Sphere) centerAt(ti float64) geometry.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	frac := (ti - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// BoundingBox returns the box containing the sphere across its entire
// shutter interval (the union of both endpoint positions), so a moving
// sphere's BVH entry never needs to be rebuilt mid-render.
func (s *Sphere) BoundingBox() geometry.AABB {
	r := math.Abs(s.Radius)
	offset := geometry.NewVec3(r, r, r)
	box0 := geometry.NewAABB(s.Center0.Subtract(offset), s.Center0.Add(offset))
	box1 := geometry.NewAABB(s.Center1.Subtract(offset), s.Center1.Add(offset))
	return box0.Union(box1)
}

// Hit solves the ray/sphere quadratic at the ray's shutter time,
// preferring the smaller root, and derives (u,v) from the hit normal
// per the spherical mapping u=1-(atan2(n.z,n.x)+pi)/2pi,
// v=(asin(n.y)+pi/2)/pi.
func (s *Sphere) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - a*c
	if discriminant <= 0 {
		return geometry.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	t := (-b - sqrtD) / a
	if t <= tMin || t >= tMax {
		t = (-b + sqrtD) / a
		if t <= tMin || t >= tMax {
			return geometry.HitRecord{}, false
		}
	}

	p := ray.At(t)
	normal := p.Subtract(center).Multiply(1 / s.Radius)

	u := 1 - (math.Atan2(normal.Z, normal.X)+math.Pi)/(2*math.Pi)
	v := (math.Asin(clamp(normal.Y, -1, 1)) + math.Pi/2) / math.Pi

	return geometry.HitRecord{
		T:       t,
		Point:   p,
		Normal:  normal,
		UV:      geometry.NewVec2(u, v),
		Texture: s.Tex,
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ geometry.Hitable = (*Sphere)(nil)
