package bitseq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitseq/internal/mem"
)

func TestHeapAllocatorStats(t *testing.T) {
	a := NewHeapAllocator[uint32]()

	x := a.Allocate(4)
	y := a.Allocate(10)
	assert.Len(t, x, 4)
	assert.Len(t, y, 10)

	a.Deallocate(x)

	assert.Equal(t, AllocatorStats{
		Allocations:   2,
		Deallocations: 1,
		WordsLive:     10,
		WordsTotal:    14,
	}, a.Stats())
	assert.Equal(t, int64(1), a.Stats().Outstanding())

	a.Deallocate(y)
	a.Deallocate(y)
	assert.Equal(t, int64(-1), a.Stats().Outstanding(), "double free shows up as a negative balance")
}

func TestAlignedAllocator(t *testing.T) {
	a := NewAlignedAllocator[uint64]()

	for _, n := range []int{1, 3, 8, 17} {
		words := a.Allocate(n)
		assert.Len(t, words, n)
		assert.True(t, mem.IsAligned(words))
		a.Deallocate(words)
	}

	empty := a.Allocate(0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	a.Deallocate(empty)

	stats := a.Stats()
	assert.Equal(t, uint64(5), stats.Allocations)
	assert.Equal(t, int64(0), stats.WordsLive)
	assert.Equal(t, int64(29), stats.WordsTotal)
}

func TestAlignedAllocatorBacksOwned(t *testing.T) {
	a := NewAlignedAllocator[uint16]()

	o, err := NewOwned(1000, WithAllocator[uint16](a))
	require.NoError(t, err)
	assert.True(t, mem.IsAligned(o.Words()))

	o.SetRange(100, 900)
	assert.Equal(t, uint(800), o.Count())

	require.NoError(t, o.ChangeSize(2000))
	assert.True(t, mem.IsAligned(o.Words()))
	assert.Equal(t, uint(800), o.Count())

	o.Release()
	assert.Equal(t, int64(0), a.Stats().Outstanding())
}

func TestAllocatorConcurrentStats(t *testing.T) {
	a := NewHeapAllocator[uint8]()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				a.Deallocate(a.Allocate(3))
			}
		}()
	}
	wg.Wait()

	stats := a.Stats()
	assert.Equal(t, uint64(800), stats.Allocations)
	assert.Equal(t, uint64(800), stats.Deallocations)
	assert.Equal(t, int64(0), stats.WordsLive)
	assert.Equal(t, int64(2400), stats.WordsTotal)
}
