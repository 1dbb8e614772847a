package primitive

import (
	"math"

	"github.com/cbro/rayer-go/pkg/geometry"
)

// Translate wraps a child Hitable, offsetting it by Offset. The ray is
// translated into the child's local frame, intersected, and the hit
// point is translated back.
type Translate struct {
	Child  geometry.Hitable
	Offset geometry.Vec3
	bbox   geometry.AABB
}

// NewTranslate builds a Translate decorator, precomputing the child's
// translated bounding box.
func NewTranslate(child geometry.Hitable, offset geometry.Vec3) *Translate {
	childBox := child.BoundingBox()
	return &Translate{
		Child:  child,
		Offset: offset,
		bbox:   geometry.NewAABB(childBox.Low().Add(offset), childBox.High().Add(offset)),
	}
}

// BoundingBox returns the precomputed translated bounding box.
func (t *Translate) BoundingBox() geometry.AABB { return t.bbox }

// Hit subtracts Offset from the ray origin, intersects the child, then
// adds Offset back into the returned hit point.
func (t *Translate) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	localOrigin := ray.Origin.Subtract(t.Offset)
	localRay := geometry.NewRay(localOrigin, ray.Direction, ray.Wavelength, ray.Time)

	rec, ok := t.Child.Hit(localRay, tMin, tMax)
	if !ok {
		return geometry.HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// RotateY wraps a child Hitable, rotating it around the Y axis by the
// angle passed to NewRotateY. Only the angle's sin/cos are stored,
// precomputed once at construction.
type RotateY struct {
	Child             geometry.Hitable
	SinTheta, CosTheta float64
	bbox              geometry.AABB
}

// NewRotateY builds a RotateY decorator for the given angle in radians,
// precomputing the rotated bounding box from the child's eight corners.
func NewRotateY(child geometry.Hitable, thetaRadians float64) *RotateY {
	sinTheta, cosTheta := math.Sin(thetaRadians), math.Cos(thetaRadians)
	childBox := child.BoundingBox()

	low, high := childBox.Low(), childBox.High()
	rotated := geometry.Empty()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, low.X, high.X)
				y := lerpCorner(j, low.Y, high.Y)
				z := lerpCorner(k, low.Z, high.Z)
				corner := geometry.NewVec3(x, y, z).RotateY(sinTheta, cosTheta)
				rotated = rotated.Union(geometry.NewAABBFromPoints(corner))
			}
		}
	}

	return &RotateY{Child: child, SinTheta: sinTheta, CosTheta: cosTheta, bbox: rotated}
}

func lerpCorner(i int, low, high float64) float64 {
	if i == 0 {
		return low
	}
	return high
}

// BoundingBox returns the precomputed rotated bounding box.
func (r *RotateY) BoundingBox() geometry.AABB { return r.bbox }

// Hit rotates the ray into the child's local frame, intersects, then
// rotates the returned point and normal back.
func (r *RotateY) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	localOrigin := ray.Origin.RotateYInverse(r.SinTheta, r.CosTheta)
	localDirection := ray.Direction.RotateYInverse(r.SinTheta, r.CosTheta)
	localRay := geometry.NewRay(localOrigin, localDirection, ray.Wavelength, ray.Time)

	rec, ok := r.Child.Hit(localRay, tMin, tMax)
	if !ok {
		return geometry.HitRecord{}, false
	}
	rec.Point = rec.Point.RotateY(r.SinTheta, r.CosTheta)
	rec.Normal = rec.Normal.RotateY(r.SinTheta, r.CosTheta)
	return rec, true
}

// Scale wraps a child Hitable, scaling it componentwise by Factor.
type Scale struct {
	Child  geometry.Hitable
	Factor geometry.Vec3
	bbox   geometry.AABB
}

// NewScale builds a Scale decorator, precomputing the scaled bounding box.
func NewScale(child geometry.Hitable, factor geometry.Vec3) *Scale {
	childBox := child.BoundingBox()
	return &Scale{
		Child:  child,
		Factor: factor,
		bbox:   geometry.NewAABB(childBox.Low().MultiplyVec(factor), childBox.High().MultiplyVec(factor)),
	}
}

// BoundingBox returns the precomputed scaled bounding box.
func (s *Scale) BoundingBox() geometry.AABB { return s.bbox }

// Hit inverse-scales the ray, intersects the child, then scales the
// returned point and rescales/renormalizes the normal.
func (s *Scale) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	invFactor := geometry.NewVec3(1/s.Factor.X, 1/s.Factor.Y, 1/s.Factor.Z)
	localOrigin := ray.Origin.MultiplyVec(invFactor)
	localDirection := ray.Direction.MultiplyVec(invFactor)
	localRay := geometry.NewRay(localOrigin, localDirection, ray.Wavelength, ray.Time)

	rec, ok := s.Child.Hit(localRay, tMin, tMax)
	if !ok {
		return geometry.HitRecord{}, false
	}
	rec.Point = rec.Point.MultiplyVec(s.Factor)
	rec.Normal = rec.Normal.MultiplyVec(invFactor).Normalize()
	return rec, true
}

var (
	_ geometry.Hitable = (*Translate)(nil)
	_ geometry.Hitable = (*RotateY)(nil)
	_ geometry.Hitable = (*Scale)(nil)
)
