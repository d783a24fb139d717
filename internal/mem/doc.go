// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Word storage is handed out 64-byte aligned so that a block starts on a
// cache line boundary and the bulk word kernels never straddle one on entry.
package mem
