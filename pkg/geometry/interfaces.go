package geometry

// HitRecord describes a ray/primitive intersection: the distance along
// the ray, the hit point, the unit surface normal, texture coordinates,
// and a non-owning reference to the texture active at the hit.
type HitRecord struct {
	T       float64
	Point   Vec3
	Normal  Vec3
	UV      Vec2
	Texture Texture
}

// SetFaceNormal sets Normal to the surface's natural outward normal,
// flipped if needed so it faces against the incoming ray. Which face
// was hit is not recorded.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	if ray.Direction.Dot(outwardNormal) < 0 {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hitable is implemented by every primitive and decorator: spheres,
// triangles, meshes, Translate/RotateY/Scale wrappers, and BVH nodes
// themselves (a BVH is itself Hitable, so meshes can nest one inside a
// larger scene BVH transparently).
type Hitable interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() AABB
}

// Texture maps a (u,v) coordinate to the Material active at that point.
type Texture interface {
	Value(uv Vec2) Material
}

// ScatterResult is what a Material.Scatter call produces: a scalar
// emittance at the incoming ray's wavelength, and — unless the ray was
// absorbed — an attenuation factor and the outgoing scattered ray.
type ScatterResult struct {
	Emittance   float64
	Attenuation float64
	Scattered   Ray
	Reflects    bool
}

// Material is implemented by every surface shading model: Lambertian,
// Metal, Dielectric, DiffuseLight.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, rng Random) ScatterResult
}

// Random is the thread-local RNG contract materials and the camera
// sample against (see package random for the concrete fast
// implementation). Declaring the interface here, rather than importing
// package random, keeps geometry foundational and avoids a cycle since
// package random depends on geometry for Vec3/Vec2.
type Random interface {
	Float64() float64
	Range(lo, hi float64) float64
	UnitBall() Vec3
	UnitDisk() Vec2
}
