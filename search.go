package bitseq

import (
	"iter"

	"github.com/hupe1980/bitseq/internal/bitops"
)

// FirstOne returns the index of the lowest set bit, or NotFound.
func (b *Borrowed[W]) FirstOne() uint {
	width := wordBits[W]()
	for i, w := range b.words {
		if w != 0 {
			return uint(i)*width + uint(bitops.TrailingZeros(w))
		}
	}
	return NotFound
}

// LastOne returns the index of the highest set bit, or NotFound.
func (b *Borrowed[W]) LastOne() uint {
	width := wordBits[W]()
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return uint(i)*width + width - 1 - uint(bitops.LeadingZeros(w))
		}
	}
	return NotFound
}

// NextOne returns the index of the lowest set bit above i, or NotFound.
// It returns NotFound for i >= Len()-1.
func (b *Borrowed[W]) NextOne(i uint) uint {
	if b.size == 0 || i >= b.size-1 {
		return NotFound
	}
	width := wordBits[W]()
	i++
	wi := i / width
	if w := b.words[wi] & bitops.HighMask[W](i%width); w != 0 {
		return wi*width + uint(bitops.TrailingZeros(w))
	}
	for wi++; wi < uint(len(b.words)); wi++ {
		if w := b.words[wi]; w != 0 {
			return wi*width + uint(bitops.TrailingZeros(w))
		}
	}
	return NotFound
}

// PrevOne returns the index of the highest set bit below i, or NotFound.
// It returns NotFound for i == 0 or i >= Len().
func (b *Borrowed[W]) PrevOne(i uint) uint {
	if i == 0 || i >= b.size {
		return NotFound
	}
	width := wordBits[W]()
	i--
	wi := i / width
	if w := b.words[wi] & bitops.LowMask[W](i%width+1); w != 0 {
		return wi*width + width - 1 - uint(bitops.LeadingZeros(w))
	}
	for wi > 0 {
		wi--
		if w := b.words[wi]; w != 0 {
			return wi*width + width - 1 - uint(bitops.LeadingZeros(w))
		}
	}
	return NotFound
}

// FirstZero returns the index of the lowest clear bit, or NotFound.
func (b *Borrowed[W]) FirstZero() uint {
	defer b.forceOverflowOnes().restore()

	width := wordBits[W]()
	for i, w := range b.words {
		if w != ^W(0) {
			return uint(i)*width + uint(bitops.TrailingOnes(w))
		}
	}
	return NotFound
}

// LastZero returns the index of the highest clear bit, or NotFound.
func (b *Borrowed[W]) LastZero() uint {
	defer b.forceOverflowOnes().restore()

	width := wordBits[W]()
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != ^W(0) {
			return uint(i)*width + width - 1 - uint(bitops.LeadingOnes(w))
		}
	}
	return NotFound
}

// NextZero returns the index of the lowest clear bit above i, or NotFound.
// It returns NotFound for i >= Len()-1.
func (b *Borrowed[W]) NextZero(i uint) uint {
	if b.size == 0 || i >= b.size-1 {
		return NotFound
	}
	defer b.forceOverflowOnes().restore()

	width := wordBits[W]()
	i++
	wi := i / width
	if w := ^b.words[wi] & bitops.HighMask[W](i%width); w != 0 {
		return wi*width + uint(bitops.TrailingZeros(w))
	}
	for wi++; wi < uint(len(b.words)); wi++ {
		if w := b.words[wi]; w != ^W(0) {
			return wi*width + uint(bitops.TrailingOnes(w))
		}
	}
	return NotFound
}

// PrevZero returns the index of the highest clear bit below i, or NotFound.
// It returns NotFound for i == 0 or i >= Len().
func (b *Borrowed[W]) PrevZero(i uint) uint {
	if i == 0 || i >= b.size {
		return NotFound
	}
	width := wordBits[W]()
	i--
	wi := i / width
	if w := ^b.words[wi] & bitops.LowMask[W](i%width+1); w != 0 {
		return wi*width + width - 1 - uint(bitops.LeadingZeros(w))
	}
	for wi > 0 {
		wi--
		if w := b.words[wi]; w != ^W(0) {
			return wi*width + width - 1 - uint(bitops.LeadingOnes(w))
		}
	}
	return NotFound
}

// Ones iterates the indices of the set bits in ascending order.
// The sequence must not be resized while iterating.
func (b *Borrowed[W]) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := b.FirstOne(); i != NotFound; i = b.NextOne(i) {
			if !yield(i) {
				return
			}
		}
	}
}

// Zeros iterates the indices of the clear bits in ascending order.
// The sequence must not be resized while iterating.
func (b *Borrowed[W]) Zeros() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := b.FirstZero(); i != NotFound; i = b.NextZero(i) {
			if !yield(i) {
				return
			}
		}
	}
}
