package geometry

import (
	"math/rand"
	"testing"
)

// S4: Box([-1,-1,-1],[1,1,1]). Ray(origin=(-3,0,0), dir=(1,0,0)). Hit returns (2.0, true).
func TestAABBHitInterval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-3, 0, 0), NewVec3(1, 0, 0), 550, 0)

	got, hit := box.Hit(ray, 0, 1000)
	if !hit {
		t.Fatalf("expected a hit")
	}
	if got < 1.9999 || got > 2.0001 {
		t.Errorf("expected t=2.0, got %v", got)
	}
}

// S5: AABB empty never reports a hit for any ray.
func TestAABBEmptyNeverHits(t *testing.T) {
	empty := Empty()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		ray := NewRay(
			NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5),
			NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize(),
			550, 0,
		)
		if _, hit := empty.Hit(ray, 0, 1e9); hit {
			t.Fatalf("empty AABB reported a hit for ray %v", ray)
		}
	}
}

// Universal property 5: AABB.empty merged with any box equals that box.
func TestAABBEmptyUnionIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		low := NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)
		high := low.Add(NewVec3(rng.Float64(), rng.Float64(), rng.Float64()))
		box := NewAABB(low, high)

		merged := Empty().Union(box)
		if !merged.Low().Equals(box.Low()) || !merged.High().Equals(box.High()) {
			t.Fatalf("Empty().Union(box) != box: got %v, want %v", merged, box)
		}
	}
}

// Universal property 4: Intersects2(a, b) == (a.Hit, b.Hit) for random boxes and rays.
func TestIntersects2MatchesIndividualHits(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	randomBox := func() AABB {
		low := NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		size := NewVec3(rng.Float64(), rng.Float64(), rng.Float64())
		return NewAABB(low, low.Add(size))
	}

	for i := 0; i < 500; i++ {
		a := randomBox()
		b := randomBox()
		ray := NewRay(
			NewVec3(rng.Float64()*6-3, rng.Float64()*6-3, rng.Float64()*6-3),
			NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize(),
			550, 0,
		)

		wantTA, wantAHit := a.Hit(ray, 0, 1e9)
		wantTB, wantBHit := b.Hit(ray, 0, 1e9)
		gotTA, gotAHit, gotTB, gotBHit := Intersects2(ray, a, b, 0, 1e9)

		if gotAHit != wantAHit || gotBHit != wantBHit {
			t.Fatalf("Intersects2 hit mismatch: got (%v,%v) want (%v,%v)", gotAHit, gotBHit, wantAHit, wantBHit)
		}
		if wantAHit && gotTA != wantTA {
			t.Errorf("Intersects2 ta mismatch: got %v want %v", gotTA, wantTA)
		}
		if wantBHit && gotTB != wantTB {
			t.Errorf("Intersects2 tb mismatch: got %v want %v", gotTB, wantTB)
		}
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Errorf("expected longest axis 1 (Y), got %d", axis)
	}
}
