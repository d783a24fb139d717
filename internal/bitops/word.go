package bitops

import "unsafe"

// Word is the set of unsigned integer types usable as packed storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// WordBits returns the width of W in bits.
func WordBits[W Word]() uint {
	var w W
	return uint(unsafe.Sizeof(w)) * 8
}

// WordBytes returns the width of W in bytes.
func WordBytes[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// WordCount returns the number of W words needed to hold n bits.
func WordCount[W Word](n uint) uint {
	width := WordBits[W]()
	return n/width + (n%width+width-1)/width
}

// LowMask returns a word with the low n bits set. n may equal the width.
func LowMask[W Word](n uint) W {
	return ^W(0) >> (WordBits[W]() - n)
}

// HighMask returns a word with bits n..width-1 set.
// HighMask(0) is all ones and HighMask(width) is zero.
func HighMask[W Word](n uint) W {
	return ^W(0) << n
}

// OnesCount returns the number of set bits in w.
func OnesCount[W Word](w W) int {
	return kernelOnesCount(uint64(w))
}

// TrailingZeros returns the number of trailing zero bits in w.
// The result is WordBits for w == 0.
func TrailingZeros[W Word](w W) int {
	if w == 0 {
		return int(WordBits[W]())
	}
	return kernelTrailingZeros(uint64(w))
}

// LeadingZeros returns the number of leading zero bits in w, counted from
// the top bit of W. The result is WordBits for w == 0.
func LeadingZeros[W Word](w W) int {
	return kernelLeadingZeros(uint64(w)) - (64 - int(WordBits[W]()))
}

// TrailingOnes returns the number of trailing one bits in w.
func TrailingOnes[W Word](w W) int {
	return TrailingZeros(^w)
}

// LeadingOnes returns the number of leading one bits in w.
func LeadingOnes[W Word](w W) int {
	return LeadingZeros(^w)
}
