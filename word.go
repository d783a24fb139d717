package bitseq

import "github.com/hupe1980/bitseq/internal/bitops"

// Word is the set of unsigned integer types usable as packed storage.
// Wider words mean fewer iterations for whole-sequence operations; narrower
// words waste fewer overflow bits for small sequences.
type Word interface {
	bitops.Word
}

// NotFound is returned by the search operations when no qualifying bit exists.
// It is never a valid bit index.
const NotFound = ^uint(0)

func wordBits[W Word]() uint {
	return bitops.WordBits[W]()
}

func wordCount[W Word](size uint) uint {
	return bitops.WordCount[W](size)
}
