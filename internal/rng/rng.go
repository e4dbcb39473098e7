package rng

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG wraps math/rand/v2 so every draw of the generator goes through
// an explicit, seedable handle. It is not safe for concurrent use;
// give each goroutine its own RNG via Split.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewUnseeded creates an RNG seeded from the process-wide source.
// Sequences are not reproducible across runs.
func NewUnseeded() *RNG {
	return New(rand.Uint64())
}

// IntN returns a random int in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Uint64 returns a random 64 bit value.
func (r *RNG) Uint64() uint64 {
	return r.r.Uint64()
}

// Split derives an independent child RNG. The child stream is fully
// determined by the parent's state at the time of the call.
func (r *RNG) Split() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(r.r.Uint64(), r.r.Uint64()))}
}

// Read fills p with random bytes so the RNG can serve as an io.Reader
// (e.g. for uuid.NewRandomFromReader). It never returns an error.
func (r *RNG) Read(p []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(p) {
		binary.LittleEndian.PutUint64(buf[:], r.r.Uint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}
