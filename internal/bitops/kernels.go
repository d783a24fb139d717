package bitops

import "math/bits"

// Kernel function pointers for the scalar word primitives.
// Generic implementations are the default; initCapabilities swaps in the
// native ones when the CPU supports them.
var (
	kernelOnesCount     = onesCountGeneric
	kernelTrailingZeros = trailingZerosGeneric
	kernelLeadingZeros  = leadingZerosGeneric
)

func useKernel(k Kernel) {
	switch k {
	case Native:
		kernelOnesCount = bits.OnesCount64
		kernelTrailingZeros = bits.TrailingZeros64
		kernelLeadingZeros = bits.LeadingZeros64
	default:
		kernelOnesCount = onesCountGeneric
		kernelTrailingZeros = trailingZerosGeneric
		kernelLeadingZeros = leadingZerosGeneric
	}
}

// ==============================================================================
// Generic implementations
// ==============================================================================

// onesCountGeneric is Kernighan's loop: each iteration clears the lowest set bit.
func onesCountGeneric(v uint64) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

func trailingZerosGeneric(v uint64) int {
	if v == 0 {
		return 64
	}
	n := 0
	// Binary search the lowest set bit, then finish bit by bit.
	if v&0xFFFFFFFF == 0 {
		n += 32
		v >>= 32
	}
	if v&0xFFFF == 0 {
		n += 16
		v >>= 16
	}
	if v&0xFF == 0 {
		n += 8
		v >>= 8
	}
	for v&1 == 0 {
		n++
		v >>= 1
	}
	return n
}

func leadingZerosGeneric(v uint64) int {
	if v == 0 {
		return 64
	}
	n := 0
	if v&0xFFFFFFFF00000000 == 0 {
		n += 32
		v <<= 32
	}
	if v&0xFFFF000000000000 == 0 {
		n += 16
		v <<= 16
	}
	if v&0xFF00000000000000 == 0 {
		n += 8
		v <<= 8
	}
	for v&(1<<63) == 0 {
		n++
		v <<= 1
	}
	return n
}
