package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every block (one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte
// alignment. It returns nil for size <= 0.
//
// The function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedSlice allocates a zeroed slice of n elements of T with 64-byte
// alignment. It returns nil for n <= 0.
//
// T must not contain pointers: the backing array is a byte slice, so the
// garbage collector does not scan it.
func AllocAlignedSlice[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	byteSlice := AllocAligned(n * int(unsafe.Sizeof(zero)))
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of s starts on an Alignment
// boundary. Empty slices are reported as aligned.
func IsAligned[T any](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
