package bitseq

import "github.com/hupe1980/bitseq/internal/bitops"

// shiftWordsRight moves every bit of words n positions towards index 0,
// filling the top with zeros. n must be less than len(words)*W.
func shiftWordsRight[W Word](words []W, n uint) {
	width := wordBits[W]()
	ws, bs := n/width, n%width
	last := uint(len(words))

	if ws > 0 {
		copy(words, words[ws:])
		clear(words[last-ws:])
	}
	if bs == 0 {
		return
	}
	live := last - ws
	for i := uint(0); i+1 < live; i++ {
		words[i] = words[i]>>bs | words[i+1]<<(width-bs)
	}
	words[live-1] >>= bs
}

// shiftWordsLeft moves every bit of words n positions towards the top,
// filling index 0 upwards with zeros. n must be less than len(words)*W.
func shiftWordsLeft[W Word](words []W, n uint) {
	width := wordBits[W]()
	ws, bs := n/width, n%width
	last := uint(len(words))

	if ws > 0 {
		copy(words[ws:], words[:last-ws])
		clear(words[:ws])
	}
	if bs == 0 {
		return
	}
	for i := last - 1; i > ws; i-- {
		words[i] = words[i]<<bs | words[i-1]>>(width-bs)
	}
	words[ws] <<= bs
}

// ShiftRight moves every bit n positions towards index 0: bit i takes the
// value of bit i+n, and the top n bits become zero. n >= Len() clears the
// sequence.
func (b *Borrowed[W]) ShiftRight(n uint) {
	switch {
	case n == 0:
		return
	case n >= b.size:
		b.ResetAll()
		return
	}
	shiftWordsRight(b.words, n)
}

// ShiftLeft moves every bit n positions away from index 0: bit i takes the
// value of bit i-n, and the low n bits become zero. n >= Len() clears the
// sequence.
func (b *Borrowed[W]) ShiftLeft(n uint) {
	switch {
	case n == 0:
		return
	case n >= b.size:
		b.ResetAll()
		return
	}
	shiftWordsLeft(b.words, n)
	b.forceOverflowZeros()
}

// ShiftLeftRange shifts the bits in [first, Len()) n positions towards
// first, discarding the bits that cross it and zero-filling the top. Bits
// below first are untouched. It is used to delete n entries at first from a
// packed sequence.
//
// first must be less than Len(); otherwise ShiftLeftRange panics.
func (b *Borrowed[W]) ShiftLeftRange(n, first uint) {
	if first >= b.size {
		panic(&RangeError{Op: "shift left range", Begin: first, End: first + 1, Size: b.size})
	}
	if n == 0 {
		return
	}
	if n >= b.size-first {
		b.ResetRange(first, b.size)
		return
	}

	width := wordBits[W]()
	fw := first / width
	keep := bitops.LowMask[W](first % width)
	saved := b.words[fw] & keep

	shiftWordsRight(b.words[fw:], n)
	b.words[fw] = b.words[fw]&^keep | saved
}

// ShiftLeftRangeOne is ShiftLeftRange(1, first).
func (b *Borrowed[W]) ShiftLeftRangeOne(first uint) {
	b.ShiftLeftRange(1, first)
}
