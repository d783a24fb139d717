package bitseq

import (
	"sync/atomic"

	"github.com/hupe1980/bitseq/internal/mem"
)

// Allocator supplies and reclaims the word storage of an Owned sequence.
//
// Allocate must return a slice of exactly n words. Deallocate receives every
// slice returned by Allocate exactly once.
type Allocator[W Word] interface {
	Allocate(n int) []W
	Deallocate(words []W)
}

// AllocatorStats is a snapshot of an allocator's counters.
type AllocatorStats struct {
	Allocations   uint64 // blocks handed out
	Deallocations uint64 // blocks returned
	WordsLive     int64  // words currently handed out
	WordsTotal    int64  // words ever handed out
}

// Outstanding returns the number of blocks not yet returned. A negative
// value means a block was returned more than once.
func (s AllocatorStats) Outstanding() int64 {
	return int64(s.Allocations) - int64(s.Deallocations)
}

type allocCounters struct {
	allocations   atomic.Uint64
	deallocations atomic.Uint64
	wordsLive     atomic.Int64
	wordsTotal    atomic.Int64
}

func (c *allocCounters) allocated(n int) {
	c.allocations.Add(1)
	c.wordsLive.Add(int64(n))
	c.wordsTotal.Add(int64(n))
}

func (c *allocCounters) deallocated(n int) {
	c.deallocations.Add(1)
	c.wordsLive.Add(-int64(n))
}

func (c *allocCounters) stats() AllocatorStats {
	return AllocatorStats{
		Allocations:   c.allocations.Load(),
		Deallocations: c.deallocations.Load(),
		WordsLive:     c.wordsLive.Load(),
		WordsTotal:    c.wordsTotal.Load(),
	}
}

// HeapAllocator allocates word storage with make and leaves reclamation to
// the garbage collector. It only counts.
type HeapAllocator[W Word] struct {
	counters allocCounters
}

// NewHeapAllocator returns a HeapAllocator.
func NewHeapAllocator[W Word]() *HeapAllocator[W] {
	return &HeapAllocator[W]{}
}

// Allocate returns n zeroed words.
func (a *HeapAllocator[W]) Allocate(n int) []W {
	a.counters.allocated(n)
	return make([]W, n)
}

// Deallocate records the return of words.
func (a *HeapAllocator[W]) Deallocate(words []W) {
	a.counters.deallocated(len(words))
}

// Stats returns a snapshot of the allocation counters.
func (a *HeapAllocator[W]) Stats() AllocatorStats {
	return a.counters.stats()
}

// AlignedAllocator allocates word storage starting on a 64-byte boundary.
type AlignedAllocator[W Word] struct {
	counters allocCounters
}

// NewAlignedAllocator returns an AlignedAllocator.
func NewAlignedAllocator[W Word]() *AlignedAllocator[W] {
	return &AlignedAllocator[W]{}
}

// Allocate returns n zeroed, 64-byte aligned words.
func (a *AlignedAllocator[W]) Allocate(n int) []W {
	a.counters.allocated(n)
	if n == 0 {
		return []W{}
	}
	return mem.AllocAlignedSlice[W](n)
}

// Deallocate records the return of words.
func (a *AlignedAllocator[W]) Deallocate(words []W) {
	a.counters.deallocated(len(words))
}

// Stats returns a snapshot of the allocation counters.
func (a *AlignedAllocator[W]) Stats() AllocatorStats {
	return a.counters.stats()
}
