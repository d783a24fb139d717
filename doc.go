// Package bitseq provides packed bit sequences for Go.
//
// A sequence stores one bit per index, packed into unsigned words of a
// caller-chosen width W (uint8 up to uint64). Wider words mean fewer
// iterations for whole-sequence operations; narrower words waste fewer
// padding bits for small sequences.
//
// # Variants
//
// Three storage strategies share one set of algorithms:
//
//	// Fixed: size known at compile time, storage inline, never allocates.
//	type Bits134 [3]uint64
//	func (Bits134) Bits() uint { return 134 }
//
//	var f bitseq.Fixed[uint64, Bits134]
//	f.SetAll()
//
//	// Borrowed: runtime size over a caller supplied buffer.
//	buf := make([]uint64, 10)
//	b, _ := bitseq.NewBorrowed(buf, 584)
//	b.SetRange(24, 32)
//
//	// Owned: runtime size, storage from an Allocator, released exactly once.
//	o, _ := bitseq.NewOwned[uint32](1000)
//	defer o.Release()
//
// All three implement Sequence.
//
// # Checked Access
//
// Index and range arguments are not validated by the variants themselves:
// an out-of-range index panics or touches a padding bit. Wrap a sequence in
// Hardened to have every index and range checked and reported as a
// *RangeError:
//
//	h := bitseq.NewHardened[uint64](b)
//	if err := h.Set(600); errors.Is(err, bitseq.ErrOutOfRange) {
//	    // rejected, b unchanged
//	}
//
// # Search
//
// FirstOne, LastOne, NextOne and PrevOne (and their zero counterparts)
// return NotFound when no qualifying bit exists. Ones and Zeros iterate:
//
//	for i := range b.Ones() {
//	    fmt.Println(i)
//	}
//
// # Numeric Conversion
//
// ToUint32 and ToUint64 weigh bit i as 10^i, not 2^i: a sequence with bits
// 0 and 2 set converts to 101. They are meant for sequences used as rows of
// decimal digits.
//
// # Concurrency
//
// Sequences are not safe for concurrent use. Even read-only zero scans
// (All, FirstZero, ...) briefly rewrite the padding bits of the last word.
// CountParallel counts a large sequence on several goroutines; the caller
// must not mutate it meanwhile.
//
// # Interop
//
// ToRoaring and FromRoaring convert to and from roaring bitmaps. The codec
// package serializes sequences into checksummed, optionally compressed
// frames.
package bitseq
