// Package bitops provides the word-level primitives shared by every bit
// sequence variant.
//
// # Primitives
//
//   - OnesCount: population count of one word
//   - TrailingZeros / LeadingZeros and their Ones counterparts
//   - LowMask / HighMask: boundary masks for range operations
//   - AndWords, OrWords, XorWords, NotWords, PopcountWords: bulk kernels
//
// All primitives are generic over the storage word type and work relative
// to the width of that type, so a uint8 word with no bits set has eight
// leading zeros, not sixty-four.
//
// # Kernels
//
// Each primitive is backed by one of two kernels. The Native kernel uses
// math/bits, which the compiler lowers to POPCNT/LZCNT/TZCNT on x86-64 and
// CNT/CLZ on ARM64. The Generic kernel uses portable bit tricks
// (Kernighan's loop for population count, shift loops for bit scans).
// Runtime CPU feature detection selects the kernel at init; set
// BITSEQ_KERNEL=generic or BITSEQ_KERNEL=native to override it.
package bitops
