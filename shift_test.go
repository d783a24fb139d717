package bitseq

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bitseq/testutil"
)

func (m model) shiftedRight(n uint) model {
	out := make(model, len(m))
	for i := range out {
		if j := uint(i) + n; j < uint(len(m)) {
			out[i] = m[j]
		}
	}
	return out
}

func (m model) shiftedLeft(n uint) model {
	out := make(model, len(m))
	for i := range out {
		if uint(i) >= n {
			out[i] = m[uint(i)-n]
		}
	}
	return out
}

func (m model) shiftedLeftRange(n, first uint) model {
	out := m.clone()
	for i := first; i < uint(len(m)); i++ {
		if j := i + n; j < uint(len(m)) {
			out[i] = m[j]
		} else {
			out[i] = false
		}
	}
	return out
}

func TestShiftLeftRangeOneScenario(t *testing.T) {
	b := newSeq[uint8](t, 28)
	for i := uint(1); i < 28; i += 2 {
		b.Set(i)
	}

	b.ShiftLeftRangeOne(5)

	want := []uint{1, 3}
	for i := uint(6); i <= 26; i += 2 {
		want = append(want, i)
	}
	assert.Equal(t, want, collect(b.Ones()))
	assert.False(t, b.Test(27), "top is zero filled")
}

func TestShiftsMatchModel(t *testing.T) {
	t.Run("uint8", testShiftsMatchModel[uint8])
	t.Run("uint16", testShiftsMatchModel[uint16])
	t.Run("uint32", testShiftsMatchModel[uint32])
	t.Run("uint64", testShiftsMatchModel[uint64])
}

func testShiftsMatchModel[W Word](t *testing.T) {
	rng := testutil.NewRNG(4711)
	width := wordBits[W]()

	for _, size := range testutil.Sizes(width) {
		m := model(rng.Bools(int(size), 0.5))
		amounts := []uint{0, 1, width - 1, width, width + 1, 2*width + 3, size / 2, size, size + 7}

		for _, n := range amounts {
			name := fmt.Sprintf("size=%d/n=%d", size, n)

			b := seqFrom[W](t, m)
			b.ShiftRight(n)
			assertMatches(t, b, m.shiftedRight(n), "right "+name)

			b = seqFrom[W](t, m)
			b.ShiftLeft(n)
			assertMatches(t, b, m.shiftedLeft(n), "left "+name)

			if size == 0 {
				continue
			}
			for _, first := range []uint{0, 1, width - 1, width, size / 3, size - 1} {
				if first >= size {
					continue
				}
				b = seqFrom[W](t, m)
				b.ShiftLeftRange(n, first)
				assertMatches(t, b, m.shiftedLeftRange(n, first), fmt.Sprintf("range %s first=%d", name, first))
			}
		}
	}
}

func TestShiftLeftRangePanicsOnFirstOutOfRange(t *testing.T) {
	b := newSeq[uint64](t, 10)

	assert.Panics(t, func() { b.ShiftLeftRange(1, 10) })
}

func TestShiftRoundTripsPaddingBits(t *testing.T) {
	b := newSeq[uint8](t, 12)
	b.SetAll()

	b.ShiftLeft(3)

	assert.Equal(t, []uint8{0xF8, 0x0F}, b.Words())
	assert.Equal(t, uint(9), b.Count())
}

func BenchmarkShiftRight(b *testing.B) {
	s := newSeq[uint64](b, 1<<16)
	s.SetRange(0, 1<<15)
	b.ReportAllocs()
	for b.Loop() {
		s.ShiftRight(3)
		s.ShiftLeft(3)
	}
}
