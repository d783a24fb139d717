package bitseq

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitseq/testutil"
)

func TestToRoaring(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, density := range []float64{0, 0.01, 0.5, 1} {
		for _, size := range []uint{0, 1, 63, 64, 65, 5000, 70000} {
			t.Run(fmt.Sprintf("density=%v/size=%d", density, size), func(t *testing.T) {
				m := model(rng.Bools(int(size), density))
				b := seqFrom[uint64](t, m)

				rb, err := ToRoaring[uint64](b)
				require.NoError(t, err)

				assert.Equal(t, uint64(b.Count()), rb.GetCardinality())
				want := testutil.OnesOf(m)
				got := make([]uint, 0, len(want))
				for _, v := range rb.ToArray() {
					got = append(got, uint(v))
				}
				assert.Equal(t, len(want), len(got))
				if len(want) > 0 {
					assert.Equal(t, want, got)
				}
			})
		}
	}
}

func TestFromRoaring(t *testing.T) {
	rb := roaring.New()
	rb.AddRange(10, 20)
	rb.Add(99)

	b := newSeq[uint16](t, 100)
	b.Set(50)

	require.NoError(t, FromRoaring[uint16](rb, b))

	assert.Equal(t, uint(11), b.Count())
	assert.False(t, b.Test(50), "previous contents are replaced")
	assert.Equal(t, uint(10), b.FirstOne())
	assert.Equal(t, uint(99), b.LastOne())
}

func TestFromRoaringOutOfRange(t *testing.T) {
	rb := roaring.BitmapOf(3, 100)

	b := newSeq[uint16](t, 100)
	b.Set(7)

	err := FromRoaring[uint16](rb, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, b.Test(7), "rejected bitmap leaves sequence untouched")
}

func TestRoaringRoundTripMatchesOracle(t *testing.T) {
	rng := testutil.NewRNG(7)
	b := newSeq[uint32](t, 3000)
	oracle := roaring.New()

	for range 500 {
		begin, end := rng.Range(3000)
		if rng.Intn(2) == 0 {
			b.SetRange(begin, end)
			oracle.AddRange(uint64(begin), uint64(end))
		} else {
			b.ResetRange(begin, end)
			oracle.RemoveRange(uint64(begin), uint64(end))
		}
	}

	rb, err := ToRoaring[uint32](b)
	require.NoError(t, err)
	assert.True(t, oracle.Equals(rb))

	c := newSeq[uint32](t, 3000)
	require.NoError(t, FromRoaring[uint32](oracle, c))
	assert.True(t, c.Equal(b))
}
