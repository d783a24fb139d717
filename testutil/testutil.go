package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint returns a pseudo-random number in [0,n). n must be > 0.
func (r *RNG) Uint(n uint) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint(r.rand.Int63n(int64(n))) //nolint:gosec // test sizes are small
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bools returns n pseudo-random bits, each set with probability density.
// Locks only once per call.
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.rand.Float64() < density
	}
	return bits
}

// Indices returns k distinct indices in [0,n) in ascending order.
// k is capped at n.
func (r *RNG) Indices(n, k int) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	k = min(k, n)
	perm := r.rand.Perm(n)[:k]
	out := make([]uint, k)
	for i, p := range perm {
		out[i] = uint(p) //nolint:gosec // Perm yields non-negative values
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Range returns a pseudo-random half-open range with begin <= end <= n.
// Empty ranges are produced too.
func (r *RNG) Range(n uint) (begin, end uint) {
	a, b := r.Uint(n+1), r.Uint(n+1)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Sizes returns the sizes worth covering for a word width of bits: the
// empty sequence, the word boundaries around one, two and three words, and
// a few odd sizes.
func Sizes(bits uint) []uint {
	return []uint{
		0, 1, 2,
		bits - 1, bits, bits + 1,
		2*bits - 1, 2 * bits, 2*bits + 1,
		3*bits + bits/2,
		134, 584,
	}
}

// OnesOf returns the indices of the true entries of bits.
func OnesOf(bits []bool) []uint {
	var out []uint
	for i, b := range bits {
		if b {
			out = append(out, uint(i)) //nolint:gosec // slice index
		}
	}
	return out
}

// Format renders bits with bit 0 as the last character.
func Format(bits []bool) string {
	out := make([]byte, len(bits))
	for i, b := range bits {
		c := byte('0')
		if b {
			c = '1'
		}
		out[len(bits)-1-i] = c
	}
	return string(out)
}
