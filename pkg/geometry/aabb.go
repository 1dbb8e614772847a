package geometry

import "math"

// wiggleFactor is added to tMax before the early-rejection comparison in
// Hit/Intersects2 so grazing rays aren't lost to float rounding at the
// box boundary.
const wiggleFactor = 1e-4

// AABB is an axis-aligned bounding box, stored as its two corner points.
// Bounds[0] is conventionally the low corner and Bounds[1] the high
// corner, but Hit/Intersects2 never assume that directly — they always
// go through the ray's precomputed Sign table, so a box built with
// swapped corners still intersects correctly.
type AABB struct {
	Bounds [2]Vec3
}

// Empty returns the AABB that acts as the identity element for Union:
// +Inf low, -Inf high, so merging it with any box yields that box.
func Empty() AABB {
	inf := math.Inf(1)
	return AABB{Bounds: [2]Vec3{
		{X: inf, Y: inf, Z: inf},
		{X: -inf, Y: -inf, Z: -inf},
	}}
}

// NewAABB builds an AABB from explicit low/high corners.
func NewAABB(low, high Vec3) AABB {
	return AABB{Bounds: [2]Vec3{low, high}}
}

// NewAABBFromPoints returns the tightest AABB containing all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return Empty()
	}
	low, high := points[0], points[0]
	for _, p := range points[1:] {
		low = Vec3{X: math.Min(low.X, p.X), Y: math.Min(low.Y, p.Y), Z: math.Min(low.Z, p.Z)}
		high = Vec3{X: math.Max(high.X, p.X), Y: math.Max(high.Y, p.Y), Z: math.Max(high.Z, p.Z)}
	}
	return NewAABB(low, high)
}

// Low returns the box's low corner.
func (a AABB) Low() Vec3 { return a.Bounds[0] }

// High returns the box's high corner.
func (a AABB) High() Vec3 { return a.Bounds[1] }

// IsEmpty holds iff any low component exceeds the corresponding high
// component — true for Empty() and for any box degenerated by Union with
// mismatched axes.
func (a AABB) IsEmpty() bool {
	return a.Bounds[0].X > a.Bounds[1].X ||
		a.Bounds[0].Y > a.Bounds[1].Y ||
		a.Bounds[0].Z > a.Bounds[1].Z
}

// Union returns the AABB bounding both a and other.
func (a AABB) Union(other AABB) AABB {
	return NewAABB(
		Vec3{
			X: math.Min(a.Bounds[0].X, other.Bounds[0].X),
			Y: math.Min(a.Bounds[0].Y, other.Bounds[0].Y),
			Z: math.Min(a.Bounds[0].Z, other.Bounds[0].Z),
		},
		Vec3{
			X: math.Max(a.Bounds[1].X, other.Bounds[1].X),
			Y: math.Max(a.Bounds[1].Y, other.Bounds[1].Y),
			Z: math.Max(a.Bounds[1].Z, other.Bounds[1].Z),
		},
	)
}

// Center returns the box's midpoint.
func (a AABB) Center() Vec3 {
	return a.Bounds[0].Add(a.Bounds[1]).Multiply(0.5)
}

// Size returns the box's extent along each axis.
func (a AABB) Size() Vec3 {
	return a.Bounds[1].Subtract(a.Bounds[0])
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent,
// breaking ties x > y > z.
func (a AABB) LongestAxis() int {
	size := a.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

// axisBounds returns (min, max) of this box along axis, selected via the
// ray's sign table so the near plane is always Bounds[sign].
func (a AABB) axisBounds(axis int, sign bool) (near, far float64) {
	lo := a.Bounds[0].Axis(axis)
	hi := a.Bounds[1].Axis(axis)
	if sign {
		return hi, lo
	}
	return lo, hi
}

// Hit performs the branchless slab test against ray over [tMin, tMax],
// returning the entry time and whether the box was hit at all. The sign
// table picks the near/far plane per axis so the same code path handles
// rays pointing in either direction along any axis.
func (a AABB) Hit(ray Ray, tMin, tMax float64) (float64, bool) {
	for axis := 0; axis < 3; axis++ {
		near, far := a.axisBounds(axis, ray.Sign[axis])
		invDir := ray.InvDirection.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (near - origin) * invDir
		t1 := (far - origin) * invDir

		if t0 > tMin {
			tMin = t0
		}
		t1 += wiggleFactor
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return 0, false
		}
	}
	return tMin, true
}

// Intersects2 tests the ray against two sibling boxes in one call,
// returning exactly what a.Hit and b.Hit return. Go has no portable
// 4-wide float SIMD intrinsic, so this is two scalar Hit calls; no
// loads are shared between them.
func Intersects2(ray Ray, a, b AABB, tMin, tMax float64) (ta float64, aHit bool, tb float64, bHit bool) {
	ta, aHit = a.Hit(ray, tMin, tMax)
	tb, bHit = b.Hit(ray, tMin, tMax)
	return
}
