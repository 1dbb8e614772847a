package primitive

import (
	"math"

	"github.com/cbro/rayer-go/pkg/geometry"
)

// Triangle is a flat-shaded or smooth-shaded triangle with per-vertex
// normals and UVs, intersected via Möller-Trumbore.
type Triangle struct {
	V0, V1, V2 geometry.Vec3
	N0, N1, N2 geometry.Vec3
	UV0, UV1, UV2 geometry.Vec2
	Tex        geometry.Texture
}

// NewTriangle builds a Triangle from its three vertices, per-vertex
// normals and per-vertex UVs.
func NewTriangle(v0, v1, v2, n0, n1, n2 geometry.Vec3, uv0, uv1, uv2 geometry.Vec2, tex geometry.Texture) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, N0: n0, N1: n1, N2: n2, UV0: uv0, UV1: uv1, UV2: uv2, Tex: tex}
}

// BoundingBox returns the tightest box containing all three vertices.
func (tri *Triangle) BoundingBox() geometry.AABB {
	return geometry.NewAABBFromPoints(tri.V0, tri.V1, tri.V2)
}

// Hit implements Möller-Trumbore. Barycentric weights (u,v,w) are
// mixed into the interpolated normal/UV as (v,u,w) against
// (N0,N1,N2)/(UV0,UV1,UV2) respectively — this swaps u and v relative
// to the textbook mapping. It is preserved intentionally, matching the
// renderer this was ported from.
func (tri *Triangle) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	edge1 := tri.V1.Subtract(tri.V0)
	edge2 := tri.V2.Subtract(tri.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < degenerateDetEpsilon {
		return geometry.HitRecord{}, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Subtract(tri.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return geometry.HitRecord{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || v > 1 {
		return geometry.HitRecord{}, false
	}

	w := 1 - u - v
	if w < 0 || w > 1 {
		return geometry.HitRecord{}, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= tMin || t >= tMax {
		return geometry.HitRecord{}, false
	}

	normal := tri.N0.Multiply(v).Add(tri.N1.Multiply(u)).Add(tri.N2.Multiply(w)).Normalize()
	uv := tri.UV0.Multiply(v).Add(tri.UV1.Multiply(u)).Add(tri.UV2.Multiply(w))
	p := ray.At(t)

	return geometry.HitRecord{T: t, Point: p, Normal: normal, UV: uv, Texture: tri.Tex}, true
}

// degenerateDetEpsilon rejects a near-zero Möller-Trumbore determinant,
// which indicates the ray lies in (or nearly in) the triangle's plane.
const degenerateDetEpsilon = 1e-12

var _ geometry.Hitable = (*Triangle)(nil)
