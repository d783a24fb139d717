package bitseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// model is the brute-force reference a sequence is compared against.
type model []bool

func (m model) count(begin, end uint) uint {
	var n uint
	for i := begin; i < end; i++ {
		if m[i] {
			n++
		}
	}
	return n
}

func (m model) all(begin, end uint) bool {
	return m.count(begin, end) == end-begin
}

// next returns the lowest index above i holding v, or NotFound.
func (m model) next(i uint, v bool) uint {
	for j := i + 1; j < uint(len(m)); j++ {
		if m[j] == v {
			return j
		}
	}
	return NotFound
}

// prev returns the highest index below i holding v, or NotFound.
func (m model) prev(i uint, v bool) uint {
	if i > uint(len(m)) {
		return NotFound
	}
	for j := int(i) - 1; j >= 0; j-- {
		if m[j] == v {
			return uint(j)
		}
	}
	return NotFound
}

func (m model) first(v bool) uint {
	for i, b := range m {
		if b == v {
			return uint(i)
		}
	}
	return NotFound
}

func (m model) last(v bool) uint {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i] == v {
			return uint(i)
		}
	}
	return NotFound
}

func (m model) clone() model {
	return append(model(nil), m...)
}

// newSeq returns a zero-filled Borrowed with one spare word of headroom.
func newSeq[W Word](t testing.TB, size uint) *Borrowed[W] {
	t.Helper()
	b, err := NewBorrowed(make([]W, wordCount[W](size)+1), size)
	require.NoError(t, err)
	return b
}

// seqFrom returns a Borrowed holding the bits of m.
func seqFrom[W Word](t testing.TB, m model) *Borrowed[W] {
	t.Helper()
	b := newSeq[W](t, uint(len(m)))
	for i, v := range m {
		if v {
			b.Set(uint(i))
		}
	}
	return b
}

// assertMatches checks every bit of s against m and that the padding bits
// of the last word are zero.
func assertMatches[W Word](t *testing.T, s Sequence[W], m model, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, uint(len(m)), s.Len(), msgAndArgs...)

	words := s.Words()
	require.Len(t, words, int(wordCount[W](s.Len())), msgAndArgs...)
	for i, v := range m {
		if s.Test(uint(i)) != v {
			assert.Failf(t, "bit mismatch", "bit %d: want %v. %v", i, v, msgAndArgs)
			return
		}
	}
	if rem := s.Len() % wordBits[W](); rem != 0 {
		mask := ^W(0) << rem
		assert.Zero(t, words[len(words)-1]&mask, "padding bits set. %v", msgAndArgs)
	}
}
