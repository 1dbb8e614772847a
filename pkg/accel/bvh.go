// Package accel implements the renderer's bounding-volume hierarchy: a
// flat, preorder array of nodes built top-down by median split along
// the widest centroid-extent axis, traversed iteratively with a
// bounded stack and nearer-sibling-first ordering.
package accel

import "github.com/cbro/rayer-go/pkg/geometry"

// maxStackDepth bounds the traversal stack. A median-split BVH is
// balanced to within a small constant of log2(N) deep; 64 comfortably
// covers any primitive count representable in a 32-bit index.
const maxStackDepth = 64

// node is a single BVH entry: either a Bin (interior, two children) or
// a Tip (leaf, one primitive). isLeaf discriminates the two; Go has no
// tagged union, so the fields that don't apply to a given kind are
// simply unused — a struct field is cheaper here than boxing into an
// interface per node.
type node struct {
	bbox       geometry.AABB
	isLeaf     bool
	leftLength int // Bin only: size of the left subtree in the node array
	primIndex  int // Tip only: index into BVH.items
}

// buildItem is the auxiliary per-primitive record used only during
// construction: its original index, centroid, and bounding box.
type buildItem struct {
	centroid geometry.Vec3
	bbox     geometry.AABB
	index    int
}

// BVH is a flat-array bounding volume hierarchy over a slice of
// primitives of type T. Parameterizing over T (rather than dynamically
// dispatching through geometry.Hitable per hit) lets the compiler
// devirtualize the leaf intersection call.
type BVH[T geometry.Hitable] struct {
	nodes []node
	items []T
}

// Build constructs a BVH over items via median split along the widest
// centroid-extent axis, partitioning with quickselect (not a full
// sort). Node count is exactly 2*len(items)-1 for len(items) > 0.
func Build[T geometry.Hitable](items []T) *BVH[T] {
	if len(items) == 0 {
		return &BVH[T]{}
	}

	aux := make([]buildItem, len(items))
	for i, it := range items {
		bbox := it.BoundingBox()
		aux[i] = buildItem{centroid: bbox.Center(), bbox: bbox, index: i}
	}

	nodes := make([]node, 0, 2*len(items)-1)
	build(aux, &nodes)

	return &BVH[T]{nodes: nodes, items: items}
}

// build recursively flattens aux into nodes in preorder, returning the
// merged bounding box and node count of the subtree it just appended.
func build(aux []buildItem, nodes *[]node) (geometry.AABB, int) {
	switch len(aux) {
	case 0:
		return geometry.Empty(), 0
	case 1:
		*nodes = append(*nodes, node{bbox: aux[0].bbox, isLeaf: true, primIndex: aux[0].index})
		return aux[0].bbox, 1
	}

	axis := widestCentroidAxis(aux)
	mid := len(aux) / 2
	quickSelect(aux, mid, func(b buildItem) float64 { return b.centroid.Axis(axis) })

	binIdx := len(*nodes)
	*nodes = append(*nodes, node{}) // reserved slot, backfilled below

	leftBBox, leftLen := build(aux[:mid], nodes)
	rightBBox, rightLen := build(aux[mid:], nodes)

	merged := leftBBox.Union(rightBBox)
	(*nodes)[binIdx] = node{bbox: merged, isLeaf: false, leftLength: leftLen}

	return merged, leftLen + rightLen + 1
}

// widestCentroidAxis picks the axis (0=X, 1=Y, 2=Z) with the greatest
// centroid extent across aux, breaking ties x > y > z.
func widestCentroidAxis(aux []buildItem) int {
	low, high := aux[0].centroid, aux[0].centroid
	for _, a := range aux[1:] {
		low = geometry.Vec3{
			X: min(low.X, a.centroid.X),
			Y: min(low.Y, a.centroid.Y),
			Z: min(low.Z, a.centroid.Z),
		}
		high = geometry.Vec3{
			X: max(high.X, a.centroid.X),
			Y: max(high.Y, a.centroid.Y),
			Z: max(high.Z, a.centroid.Z),
		}
	}
	extent := high.Subtract(low)
	if extent.X >= extent.Y && extent.X >= extent.Z {
		return 0
	}
	if extent.Y >= extent.Z {
		return 1
	}
	return 2
}

// NodeCount returns the number of nodes in the flat array — exactly
// 2*len(items)-1 for a non-empty BVH (testable property 6).
func (b *BVH[T]) NodeCount() int { return len(b.nodes) }

// BoundingBox returns the root node's bounding box, or an empty box for
// an empty BVH.
func (b *BVH[T]) BoundingBox() geometry.AABB {
	if len(b.nodes) == 0 {
		return geometry.Empty()
	}
	return b.nodes[0].bbox
}

// Hit walks the hierarchy iteratively, using a bounded stack and
// Intersects2 to test sibling pairs in one call, pushing the farther
// hit before the nearer so the nearer is processed next (LIFO
// nearer-first ordering). closestSoFar narrows tMax as hits are found,
// pruning any subtree whose entry time exceeds the current best.
func (b *BVH[T]) Hit(ray geometry.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	if len(b.nodes) == 0 {
		return geometry.HitRecord{}, false
	}

	var stack [maxStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	closestSoFar := tMax
	var best geometry.HitRecord
	found := false

	for sp > 0 {
		sp--
		i := stack[sp]
		n := b.nodes[i]

		if n.isLeaf {
			if rec, ok := b.items[n.primIndex].Hit(ray, tMin, closestSoFar); ok {
				closestSoFar = rec.T
				best = rec
				found = true
			}
			continue
		}

		leftIdx := i + 1
		rightIdx := leftIdx + n.leftLength

		tLeft, hitLeft, tRight, hitRight := geometry.Intersects2(
			ray, b.nodes[leftIdx].bbox, b.nodes[rightIdx].bbox, tMin, closestSoFar,
		)

		switch {
		case hitLeft && hitRight:
			if tLeft <= tRight {
				stack[sp] = rightIdx
				sp++
				stack[sp] = leftIdx
				sp++
			} else {
				stack[sp] = leftIdx
				sp++
				stack[sp] = rightIdx
				sp++
			}
		case hitLeft:
			stack[sp] = leftIdx
			sp++
		case hitRight:
			stack[sp] = rightIdx
			sp++
		}
	}

	return best, found
}

var _ geometry.Hitable = (*BVH[geometry.Hitable])(nil)
