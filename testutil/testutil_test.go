package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Uint64()

	rng.Reset()

	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestBools(t *testing.T) {
	rng := NewRNG(4711)

	assert.Len(t, rng.Bools(134, 0.5), 134)
	assert.Empty(t, OnesOf(rng.Bools(64, 0)))
	assert.Len(t, OnesOf(rng.Bools(64, 1.1)), 64)
}

func TestIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.Indices(100, 10)
	assert.Len(t, idx, 10)
	assert.IsIncreasing(t, idx)
	for _, i := range idx {
		assert.Less(t, i, uint(100))
	}

	assert.Len(t, rng.Indices(5, 10), 5)
}

func TestRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		begin, end := rng.Range(70)
		assert.LessOrEqual(t, begin, end)
		assert.LessOrEqual(t, end, uint(70))
	}

	begin, end := rng.Range(0)
	assert.Equal(t, uint(0), begin)
	assert.Equal(t, uint(0), end)
}

func TestSizes(t *testing.T) {
	sizes := Sizes(8)
	assert.Contains(t, sizes, uint(0))
	assert.Contains(t, sizes, uint(7))
	assert.Contains(t, sizes, uint(8))
	assert.Contains(t, sizes, uint(9))
}

func TestFormat(t *testing.T) {
	bits := []bool{true, false, false, true, true}

	assert.Equal(t, "11001", Format(bits))
	assert.Equal(t, []uint{0, 3, 4}, OnesOf(bits))
}
