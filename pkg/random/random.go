// Package random provides the renderer's thread-local RNG: a fast,
// non-cryptographic source seeded from OS entropy, plus rejection
// samplers for points in the unit ball and unit disk. Every render
// worker owns one instance; state is never shared across goroutines.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cbro/rayer-go/pkg/geometry"
)

// Source is a thread-local PRNG. It wraps math/rand.Rand (itself not
// safe for concurrent use) so each render worker must own its own
// Source — never share one across goroutines, matching the
// "RNG state: thread-local; never shared" resource policy.
type Source struct {
	rng *rand.Rand
}

// New seeds a new Source from seed. Each worker owns its own Source
// rather than sharing a single global one, so no mutex is needed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewFromEntropy seeds a Source from the OS entropy source
// (crypto/rand), for production workers that don't need reproducible
// sequences; if that read fails it falls back to the wall clock. Tests
// should use New with a fixed seed instead.
func NewFromEntropy() *Source {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return New(time.Now().UnixNano())
	}
	return New(int64(binary.LittleEndian.Uint64(b[:])))
}

// Float64 returns a uniform sample in [0,1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform sample in [lo,hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// UnitBall returns a uniformly distributed point within the unit ball,
// via rejection sampling in the cube [-1,1]^3.
func (s *Source) UnitBall() geometry.Vec3 {
	for {
		p := geometry.NewVec3(
			s.Range(-1, 1),
			s.Range(-1, 1),
			s.Range(-1, 1),
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// UnitDisk returns a uniformly distributed point within the unit disk
// (z=0 plane), via rejection sampling in the square [-1,1]^2.
func (s *Source) UnitDisk() geometry.Vec2 {
	for {
		p := geometry.NewVec2(s.Range(-1, 1), s.Range(-1, 1))
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}

var _ geometry.Random = (*Source)(nil)
