package bitseq

import (
	"slices"

	"github.com/hupe1980/bitseq/internal/bitops"
)

// Borrowed is a bit sequence stored in a caller supplied word buffer.
//
// The sequence never allocates or frees: the caller owns the buffer and must
// keep it alive for as long as the sequence is used. Bit i lives in word
// i/W at position i%W. Only the first ceil(Len()/W) words of the buffer are
// ever read or written; the remaining words of the buffer are headroom for
// ChangeSize.
//
// Borrowed carries every bit algorithm of the package. Fixed and Owned are
// ownership wrappers around it.
//
// Index arguments are not validated (see Hardened). An index at or beyond
// Len() either panics with a runtime bounds error or silently touches an
// overflow bit.
//
// A Borrowed is not safe for concurrent use, including concurrent reads:
// zero scans temporarily rewrite the last word.
type Borrowed[W Word] struct {
	buf   []W // full caller buffer
	words []W // buf[:ceil(size/W)]
	size  uint
}

// NewBorrowed creates a zero-filled sequence of size bits over buf.
//
// It returns ErrBufferTooSmall if buf holds fewer than ceil(size/W) words.
func NewBorrowed[W Word](buf []W, size uint) (*Borrowed[W], error) {
	b, err := borrow(buf, size, "new borrowed")
	if err != nil {
		return nil, err
	}
	b.ResetAll()
	return b, nil
}

// NewBorrowedFrom creates a sequence of size bits over buf holding a copy of
// the first min(size, src.Len()) bits of src. Any remaining bits are zero.
func NewBorrowedFrom[W Word](buf []W, size uint, src Sequence[W]) (*Borrowed[W], error) {
	b, err := borrow(buf, size, "new borrowed")
	if err != nil {
		return nil, err
	}
	b.ResetAll()
	b.copyPrefix(src.Words(), min(size, src.Len()))
	return b, nil
}

func borrow[W Word](buf []W, size uint, op string) (*Borrowed[W], error) {
	n := wordCount[W](size)
	if uint(len(buf)) < n {
		return nil, bufferTooSmall(op, n, uint(len(buf)))
	}
	return &Borrowed[W]{buf: buf, words: buf[:n], size: size}, nil
}

// Len returns the number of bits in the sequence.
func (b *Borrowed[W]) Len() uint {
	return b.size
}

// Words returns the live storage words. Bits at or beyond Len() in the last
// word are always zero.
func (b *Borrowed[W]) Words() []W {
	return b.words
}

// Test reports whether bit i is set.
func (b *Borrowed[W]) Test(i uint) bool {
	width := wordBits[W]()
	return (b.words[i/width]>>(i%width))&1 != 0
}

// Set sets bit i.
func (b *Borrowed[W]) Set(i uint) {
	width := wordBits[W]()
	b.words[i/width] |= W(1) << (i % width)
}

// SetTo sets bit i to value.
func (b *Borrowed[W]) SetTo(i uint, value bool) {
	width := wordBits[W]()
	shift := i % width
	var v W
	if value {
		v = 1
	}
	b.words[i/width] = (b.words[i/width] &^ (W(1) << shift)) | (v << shift)
}

// Reset clears bit i.
func (b *Borrowed[W]) Reset(i uint) {
	width := wordBits[W]()
	b.words[i/width] &^= W(1) << (i % width)
}

// Flip toggles bit i.
func (b *Borrowed[W]) Flip(i uint) {
	width := wordBits[W]()
	b.words[i/width] ^= W(1) << (i % width)
}

// SetAll sets every bit.
func (b *Borrowed[W]) SetAll() {
	bitops.Fill(b.words, ^W(0))
	b.forceOverflowZeros()
}

// ResetAll clears every bit.
func (b *Borrowed[W]) ResetAll() {
	clear(b.words)
}

// FlipAll toggles every bit.
func (b *Borrowed[W]) FlipAll() {
	bitops.NotWords(b.words)
	b.forceOverflowZeros()
}

// rangeMasks returns the word span of [begin, end) and the masks selecting
// the in-range bits of the first and last word. end must be > begin.
func rangeMasks[W Word](begin, end uint) (beginWord, endWord uint, first, last W) {
	width := wordBits[W]()
	beginWord, endWord = begin/width, (end-1)/width
	first = bitops.HighMask[W](begin % width)
	last = bitops.LowMask[W]((end-1)%width + 1)
	return beginWord, endWord, first, last
}

// SetRange sets the bits in [begin, end). begin == end is a no-op.
func (b *Borrowed[W]) SetRange(begin, end uint) {
	if begin == end {
		return
	}
	bw, ew, first, last := rangeMasks[W](begin, end)
	if bw == ew {
		b.words[bw] |= first & last
		return
	}
	b.words[bw] |= first
	bitops.Fill(b.words[bw+1:ew], ^W(0))
	b.words[ew] |= last
}

// ResetRange clears the bits in [begin, end). begin == end is a no-op.
func (b *Borrowed[W]) ResetRange(begin, end uint) {
	if begin == end {
		return
	}
	bw, ew, first, last := rangeMasks[W](begin, end)
	if bw == ew {
		b.words[bw] &^= first & last
		return
	}
	b.words[bw] &^= first
	clear(b.words[bw+1 : ew])
	b.words[ew] &^= last
}

// SetRangeTo sets the bits in [begin, end) to value.
func (b *Borrowed[W]) SetRangeTo(begin, end uint, value bool) {
	if value {
		b.SetRange(begin, end)
	} else {
		b.ResetRange(begin, end)
	}
}

// Count returns the number of set bits.
func (b *Borrowed[W]) Count() uint {
	return uint(bitops.PopcountWords(b.words))
}

// CountRange returns the number of set bits in [begin, end).
func (b *Borrowed[W]) CountRange(begin, end uint) uint {
	if begin >= end {
		return 0
	}
	bw, ew, first, last := rangeMasks[W](begin, end)
	if bw == ew {
		return uint(bitops.OnesCount(b.words[bw] & first & last))
	}
	n := bitops.OnesCount(b.words[bw]&first) + bitops.OnesCount(b.words[ew]&last)
	n += bitops.PopcountWords(b.words[bw+1 : ew])
	return uint(n)
}

// Any reports whether at least one bit is set.
func (b *Borrowed[W]) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// AnyRange reports whether at least one bit in [begin, end) is set.
func (b *Borrowed[W]) AnyRange(begin, end uint) bool {
	if begin >= end {
		return false
	}
	bw, ew, first, last := rangeMasks[W](begin, end)
	if bw == ew {
		return b.words[bw]&first&last != 0
	}
	if b.words[bw]&first != 0 || b.words[ew]&last != 0 {
		return true
	}
	for _, w := range b.words[bw+1 : ew] {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (b *Borrowed[W]) None() bool {
	return !b.Any()
}

// NoneRange reports whether no bit in [begin, end) is set.
func (b *Borrowed[W]) NoneRange(begin, end uint) bool {
	return !b.AnyRange(begin, end)
}

// All reports whether every bit is set. An empty sequence reports true.
func (b *Borrowed[W]) All() bool {
	defer b.forceOverflowOnes().restore()

	for _, w := range b.words {
		if w != ^W(0) {
			return false
		}
	}
	return true
}

// AllRange reports whether every bit in [begin, end) is set. An empty range
// reports true.
func (b *Borrowed[W]) AllRange(begin, end uint) bool {
	if begin >= end {
		return true
	}
	defer b.forceOverflowOnes().restore()

	bw, ew, first, last := rangeMasks[W](begin, end)
	if bw == ew {
		mask := first & last
		return b.words[bw]&mask == mask
	}
	if b.words[bw]&first != first || b.words[ew]&last != last {
		return false
	}
	for _, w := range b.words[bw+1 : ew] {
		if w != ^W(0) {
			return false
		}
	}
	return true
}

// Equal reports whether o has the same size and the same bits.
func (b *Borrowed[W]) Equal(o Sequence[W]) bool {
	if o.Len() != b.size {
		return false
	}
	return slices.Equal(b.words, o.Words())
}

// And sets b to b AND o.
//
// o must hold at least Len() bits; otherwise a *SizeError wrapping
// ErrSizeMismatch is returned and b is unchanged. Bits of a larger o beyond
// Len() are ignored.
func (b *Borrowed[W]) And(o Sequence[W]) error {
	if o.Len() < b.size {
		return sizeMismatch("and", b.size, o.Len())
	}
	bitops.AndWords(b.words, o.Words())
	return nil
}

// Or sets b to b OR o. Size rules are those of And.
func (b *Borrowed[W]) Or(o Sequence[W]) error {
	if o.Len() < b.size {
		return sizeMismatch("or", b.size, o.Len())
	}
	bitops.OrWords(b.words, o.Words())
	b.forceOverflowZeros()
	return nil
}

// Xor sets b to b XOR o. Size rules are those of And.
func (b *Borrowed[W]) Xor(o Sequence[W]) error {
	if o.Len() < b.size {
		return sizeMismatch("xor", b.size, o.Len())
	}
	bitops.XorWords(b.words, o.Words())
	b.forceOverflowZeros()
	return nil
}

// copyPrefix copies bits [0, n) of src into b. Bits at or beyond n keep
// their value.
func (b *Borrowed[W]) copyPrefix(src []W, n uint) {
	width := wordBits[W]()
	full := n / width
	copy(b.words[:full], src[:full])
	if rem := n % width; rem != 0 {
		mask := bitops.LowMask[W](rem)
		b.words[full] = b.words[full]&^mask | src[full]&mask
	}
}

// CopyFrom copies the first min(Len(), src.Len()) bits of src into b.
// Bits beyond that prefix keep their value.
func (b *Borrowed[W]) CopyFrom(src Sequence[W]) {
	b.copyPrefix(src.Words(), min(b.size, src.Len()))
}

// Move returns a sequence that takes over b's buffer and size. b is left
// empty, with no buffer.
func (b *Borrowed[W]) Move() *Borrowed[W] {
	m := &Borrowed[W]{buf: b.buf, words: b.words, size: b.size}
	*b = Borrowed[W]{}
	return m
}

// ChangeSize resizes the sequence in place within the caller buffer.
//
// Growing zero-fills the new bits; shrinking discards the bits beyond n.
// It returns ErrBufferTooSmall if the buffer cannot hold n bits.
func (b *Borrowed[W]) ChangeSize(n uint) error {
	need := wordCount[W](n)
	if need > uint(len(b.buf)) {
		return bufferTooSmall("change size", need, uint(len(b.buf)))
	}

	have := uint(len(b.words))
	b.words = b.buf[:need]
	if need > have {
		clear(b.words[have:])
	}
	b.size = n
	b.forceOverflowZeros()
	return nil
}

// Swap exchanges the bits of b and o, which must have the same size.
func (b *Borrowed[W]) Swap(o Sequence[W]) error {
	if o.Len() != b.size {
		return sizeMismatch("swap", b.size, o.Len())
	}
	other := o.Words()
	for i := range b.words {
		b.words[i], other[i] = other[i], b.words[i]
	}
	return nil
}
