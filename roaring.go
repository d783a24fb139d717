package bitseq

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// roaringBatch is the number of indices handed to AddMany at a time.
const roaringBatch = 4096

// ToRoaring returns a roaring bitmap holding the indices of the set bits of
// s. It returns ErrOverflow if s is longer than the 32-bit index space of a
// roaring bitmap.
func ToRoaring[W Word](s Sequence[W]) (*roaring.Bitmap, error) {
	if uint64(s.Len()) > math.MaxUint32+1 {
		return nil, ErrOverflow
	}

	rb := roaring.New()
	batch := make([]uint32, 0, roaringBatch)
	for i := range s.Ones() {
		batch = append(batch, uint32(i)) //nolint:gosec // bounded by the length check
		if len(batch) == cap(batch) {
			rb.AddMany(batch)
			batch = batch[:0]
		}
	}
	rb.AddMany(batch)
	rb.RunOptimize()
	return rb, nil
}

// FromRoaring assigns dst from rb: bit i is set exactly when rb contains i.
// It returns a *RangeError if rb contains an index at or beyond dst.Len();
// dst is unchanged in that case.
func FromRoaring[W Word](rb *roaring.Bitmap, dst Sequence[W]) error {
	if !rb.IsEmpty() {
		if maxIndex := uint64(rb.Maximum()); maxIndex >= uint64(dst.Len()) {
			return &RangeError{Op: "from roaring", Begin: uint(maxIndex), End: uint(maxIndex) + 1, Size: dst.Len()}
		}
	}

	dst.ResetAll()
	it := rb.Iterator()
	for it.HasNext() {
		dst.Set(uint(it.Next()))
	}
	return nil
}
