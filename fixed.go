package bitseq

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// Layout describes the inline storage of a Fixed sequence: an array of words
// whose Bits method reports the sequence size. Bits must be a constant and
// must be implemented on the value type:
//
//	type Bits134 [3]uint64
//
//	func (Bits134) Bits() uint { return 134 }
type Layout interface {
	Bits() uint
}

// Fixed is a sequence whose size is fixed by its layout type L and whose
// storage lives inline. It never allocates.
//
// The zero value is a zero-filled sequence once the layout is valid; use
// NewFixed or ValidateLayout to check a layout. A Fixed value may be copied;
// the copy is independent.
type Fixed[W Word, L Layout] struct {
	buf L
}

// ValidateLayout checks that L is an array of W with room for L.Bits() bits.
// It returns an error wrapping ErrInvalidLayout otherwise.
func ValidateLayout[W Word, L Layout]() error {
	var l L
	want := reflect.TypeFor[W]()
	t := reflect.TypeOf(l)
	if t == nil || t.Kind() != reflect.Array || t.Elem() != want {
		return fmt.Errorf("%w: %v is not an array of %v", ErrInvalidLayout, t, want)
	}
	if need := wordCount[W](l.Bits()); uint(t.Len()) < need {
		return fmt.Errorf("%w: %v holds %d words, %d bits need %d", ErrInvalidLayout, t, t.Len(), l.Bits(), need)
	}
	return nil
}

// NewFixed validates the layout and returns a zero-filled sequence.
func NewFixed[W Word, L Layout]() (*Fixed[W, L], error) {
	if err := ValidateLayout[W, L](); err != nil {
		return nil, err
	}
	return &Fixed[W, L]{}, nil
}

// words views the inline array as the live word slice.
func (f *Fixed[W, L]) words() []W {
	var w W
	n := wordCount[W](f.buf.Bits())
	if uintptr(n)*unsafe.Sizeof(w) > unsafe.Sizeof(f.buf) || unsafe.Alignof(f.buf) < unsafe.Alignof(w) {
		panic(ErrInvalidLayout)
	}
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*W)(unsafe.Pointer(&f.buf)), n) //nolint:gosec // layout checked above
}

func (f *Fixed[W, L]) seq() *Borrowed[W] {
	w := f.words()
	return &Borrowed[W]{buf: w, words: w, size: f.buf.Bits()}
}

// Len returns the layout's bit count.
func (f *Fixed[W, L]) Len() uint { return f.buf.Bits() }

// Words returns the live storage words.
func (f *Fixed[W, L]) Words() []W { return f.words() }

// The Sequence methods below operate on a borrowed view of the inline array.

func (f *Fixed[W, L]) Test(i uint) bool { return f.seq().Test(i) }
func (f *Fixed[W, L]) Set(i uint) { f.seq().Set(i) }
func (f *Fixed[W, L]) Reset(i uint) { f.seq().Reset(i) }
func (f *Fixed[W, L]) Flip(i uint) { f.seq().Flip(i) }
func (f *Fixed[W, L]) SetTo(i uint, value bool) { f.seq().SetTo(i, value) }
func (f *Fixed[W, L]) SetAll() { f.seq().SetAll() }
func (f *Fixed[W, L]) ResetAll() { f.seq().ResetAll() }
func (f *Fixed[W, L]) FlipAll() { f.seq().FlipAll() }
func (f *Fixed[W, L]) SetRange(begin, end uint) { f.seq().SetRange(begin, end) }
func (f *Fixed[W, L]) ResetRange(begin, end uint) { f.seq().ResetRange(begin, end) }
func (f *Fixed[W, L]) SetRangeTo(begin, end uint, value bool) { f.seq().SetRangeTo(begin, end, value) }
func (f *Fixed[W, L]) Count() uint { return f.seq().Count() }
func (f *Fixed[W, L]) CountRange(begin, end uint) uint { return f.seq().CountRange(begin, end) }
func (f *Fixed[W, L]) Any() bool { return f.seq().Any() }
func (f *Fixed[W, L]) AnyRange(begin, end uint) bool { return f.seq().AnyRange(begin, end) }
func (f *Fixed[W, L]) None() bool { return f.seq().None() }
func (f *Fixed[W, L]) NoneRange(begin, end uint) bool { return f.seq().NoneRange(begin, end) }
func (f *Fixed[W, L]) All() bool { return f.seq().All() }
func (f *Fixed[W, L]) AllRange(begin, end uint) bool { return f.seq().AllRange(begin, end) }
func (f *Fixed[W, L]) FirstOne() uint { return f.seq().FirstOne() }
func (f *Fixed[W, L]) LastOne() uint { return f.seq().LastOne() }
func (f *Fixed[W, L]) NextOne(i uint) uint { return f.seq().NextOne(i) }
func (f *Fixed[W, L]) PrevOne(i uint) uint { return f.seq().PrevOne(i) }
func (f *Fixed[W, L]) FirstZero() uint { return f.seq().FirstZero() }
func (f *Fixed[W, L]) LastZero() uint { return f.seq().LastZero() }
func (f *Fixed[W, L]) NextZero(i uint) uint { return f.seq().NextZero(i) }
func (f *Fixed[W, L]) PrevZero(i uint) uint { return f.seq().PrevZero(i) }
func (f *Fixed[W, L]) Ones() iter.Seq[uint] { return f.seq().Ones() }
func (f *Fixed[W, L]) Zeros() iter.Seq[uint] { return f.seq().Zeros() }
func (f *Fixed[W, L]) ShiftRight(n uint) { f.seq().ShiftRight(n) }
func (f *Fixed[W, L]) ShiftLeft(n uint) { f.seq().ShiftLeft(n) }
func (f *Fixed[W, L]) ShiftLeftRange(n, first uint) { f.seq().ShiftLeftRange(n, first) }
func (f *Fixed[W, L]) ShiftLeftRangeOne(first uint) { f.seq().ShiftLeftRangeOne(first) }
func (f *Fixed[W, L]) String() string { return f.seq().String() }
func (f *Fixed[W, L]) Format(zero, one rune) string { return f.seq().Format(zero, one) }
func (f *Fixed[W, L]) ReverseString() string { return f.seq().ReverseString() }
func (f *Fixed[W, L]) FormatReverse(zero, one rune) string { return f.seq().FormatReverse(zero, one) }
func (f *Fixed[W, L]) ToUint32() (uint32, error) { return f.seq().ToUint32() }
func (f *Fixed[W, L]) ToUint64() (uint64, error) { return f.seq().ToUint64() }
func (f *Fixed[W, L]) ToReverseUint32() (uint32, error) { return f.seq().ToReverseUint32() }
func (f *Fixed[W, L]) ToReverseUint64() (uint64, error) { return f.seq().ToReverseUint64() }
func (f *Fixed[W, L]) SetFromString(s string, zero, one rune) error {
	return f.seq().SetFromString(s, zero, one)
}

// And sets f to f AND o.
func (f *Fixed[W, L]) And(o *Fixed[W, L]) { _ = f.seq().And(o) }

// Or sets f to f OR o.
func (f *Fixed[W, L]) Or(o *Fixed[W, L]) { _ = f.seq().Or(o) }

// Xor sets f to f XOR o.
func (f *Fixed[W, L]) Xor(o *Fixed[W, L]) { _ = f.seq().Xor(o) }

// Intersection returns f AND o.
func (f *Fixed[W, L]) Intersection(o *Fixed[W, L]) Fixed[W, L] {
	r := *f
	r.And(o)
	return r
}

// Union returns f OR o.
func (f *Fixed[W, L]) Union(o *Fixed[W, L]) Fixed[W, L] {
	r := *f
	r.Or(o)
	return r
}

// SymmetricDifference returns f XOR o.
func (f *Fixed[W, L]) SymmetricDifference(o *Fixed[W, L]) Fixed[W, L] {
	r := *f
	r.Xor(o)
	return r
}

// Complement returns NOT f.
func (f *Fixed[W, L]) Complement() Fixed[W, L] {
	r := *f
	r.FlipAll()
	return r
}

// ShiftedRight returns f shifted right by n.
func (f *Fixed[W, L]) ShiftedRight(n uint) Fixed[W, L] {
	r := *f
	r.ShiftRight(n)
	return r
}

// ShiftedLeft returns f shifted left by n.
func (f *Fixed[W, L]) ShiftedLeft(n uint) Fixed[W, L] {
	r := *f
	r.ShiftLeft(n)
	return r
}

// Equal reports whether f and o hold the same bits.
func (f *Fixed[W, L]) Equal(o *Fixed[W, L]) bool {
	return f.seq().Equal(o)
}

// CopyFrom assigns the bits of o to f.
func (f *Fixed[W, L]) CopyFrom(o *Fixed[W, L]) {
	f.buf = o.buf
}

// Swap exchanges the bits of f and o.
func (f *Fixed[W, L]) Swap(o *Fixed[W, L]) {
	f.buf, o.buf = o.buf, f.buf
}
