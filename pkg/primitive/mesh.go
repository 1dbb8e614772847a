package primitive

import (
	"github.com/cbro/rayer-go/pkg/accel"
	"github.com/cbro/rayer-go/pkg/geometry"
)

// Mesh is a triangle soup wrapped in its own BVH, exposing Hitable
// through delegation so a Mesh nests transparently inside a larger
// scene BVH.
type Mesh struct {
	bvh *accel.BVH[*Triangle]
}

// NewMesh builds a Mesh from a slice of triangles.
func NewMesh(triangles []*Triangle) *Mesh {
	return &Mesh{bvh: accel.Build(triangles)}
}

// BoundingBox delegates to the mesh's internal BVH.
func (m *Mesh) BoundingBox() geometry.AABB {
	return m.bvh.BoundingBox()
}

// Hit delegates to the mesh's internal BVH.
func (m *Mesh) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

// NewPolygon builds a fan of flat-shaded triangles from an ordered ring
// of coplanar points sharing a single normal, with texture coordinates
// pinned to (0,0) — a convenience constructor carried over from the
// renderer this was ported from, used by NewBox below and available
// directly for hand-authored scene geometry.
func NewPolygon(points []geometry.Vec3, normal geometry.Vec3, tex geometry.Texture) []*Triangle {
	if len(points) < 3 {
		return nil
	}
	uv := geometry.NewVec2(0, 0)
	triangles := make([]*Triangle, 0, len(points)-2)
	for i := 1; i < len(points)-1; i++ {
		triangles = append(triangles, NewTriangle(
			points[0], points[i], points[i+1],
			normal, normal, normal,
			uv, uv, uv,
			tex,
		))
	}
	return triangles
}

// NewBox builds an axis-aligned cuboid from its low and high corners as
// a 12-triangle Mesh (6 quads, each a 2-triangle polygon fan), with
// texture coordinates pinned to (0,0) on every face.
func NewBox(low, high geometry.Vec3, tex geometry.Texture) *Mesh {
	l, h := low, high
	var triangles []*Triangle

	triangles = append(triangles, NewPolygon([]geometry.Vec3{
		l, geometry.NewVec3(l.X, h.Y, l.Z), geometry.NewVec3(l.X, h.Y, h.Z), geometry.NewVec3(l.X, l.Y, h.Z),
	}, geometry.NewVec3(-1, 0, 0), tex)...)

	triangles = append(triangles, NewPolygon([]geometry.Vec3{
		l, geometry.NewVec3(h.X, l.Y, l.Z), geometry.NewVec3(h.X, l.Y, h.Z), geometry.NewVec3(l.X, l.Y, h.Z),
	}, geometry.NewVec3(0, -1, 0), tex)...)

	triangles = append(triangles, NewPolygon([]geometry.Vec3{
		l, geometry.NewVec3(h.X, l.Y, l.Z), geometry.NewVec3(h.X, h.Y, l.Z), geometry.NewVec3(l.X, h.Y, l.Z),
	}, geometry.NewVec3(0, 0, -1), tex)...)

	triangles = append(triangles, NewPolygon([]geometry.Vec3{
		h, geometry.NewVec3(h.X, h.Y, l.Z), geometry.NewVec3(h.X, l.Y, l.Z), geometry.NewVec3(h.X, l.Y, h.Z),
	}, geometry.NewVec3(1, 0, 0), tex)...)

	triangles = append(triangles, NewPolygon([]geometry.Vec3{
		h, geometry.NewVec3(h.X, h.Y, l.Z), geometry.NewVec3(l.X, h.Y, l.Z), geometry.NewVec3(l.X, h.Y, h.Z),
	}, geometry.NewVec3(0, 1, 0), tex)...)

	triangles = append(triangles, NewPolygon([]geometry.Vec3{
		h, geometry.NewVec3(h.X, l.Y, h.Z), geometry.NewVec3(l.X, l.Y, h.Z), geometry.NewVec3(l.X, h.Y, h.Z),
	}, geometry.NewVec3(0, 0, 1), tex)...)

	return NewMesh(triangles)
}

var _ geometry.Hitable = (*Mesh)(nil)
