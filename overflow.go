package bitseq

import "github.com/hupe1980/bitseq/internal/bitops"

// overflowMask returns the mask of the unused high bits of the last word,
// or zero when the size is a multiple of the word width.
func (b *Borrowed[W]) overflowMask() W {
	rem := b.size % wordBits[W]()
	if rem == 0 {
		return 0
	}
	return bitops.HighMask[W](rem)
}

// forceOverflowZeros re-establishes the invariant that overflow bits are zero.
func (b *Borrowed[W]) forceOverflowZeros() {
	if mask := b.overflowMask(); mask != 0 {
		b.words[len(b.words)-1] &^= mask
	}
}

// overflowGuard restores zero overflow bits after a scan that set them.
type overflowGuard[W Word] struct {
	b *Borrowed[W]
}

func (g overflowGuard[W]) restore() {
	g.b.forceOverflowZeros()
}

// forceOverflowOnes sets the overflow bits so that zero scans never report
// them. The returned guard must be restored before the sequence is observed
// again:
//
//	defer b.forceOverflowOnes().restore()
func (b *Borrowed[W]) forceOverflowOnes() overflowGuard[W] {
	if mask := b.overflowMask(); mask != 0 {
		b.words[len(b.words)-1] |= mask
	}
	return overflowGuard[W]{b: b}
}
