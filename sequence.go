package bitseq

import "iter"

// Sequence is the operation surface shared by *Fixed, *Borrowed and *Owned.
//
// Binary operators, swapping, resizing and lifecycle are type specific and
// not part of the interface.
type Sequence[W Word] interface {
	Len() uint
	Words() []W

	Test(i uint) bool
	Set(i uint)
	Reset(i uint)
	Flip(i uint)
	SetTo(i uint, value bool)
	SetAll()
	ResetAll()
	FlipAll()
	SetRange(begin, end uint)
	ResetRange(begin, end uint)
	SetRangeTo(begin, end uint, value bool)

	Count() uint
	CountRange(begin, end uint) uint
	Any() bool
	AnyRange(begin, end uint) bool
	None() bool
	NoneRange(begin, end uint) bool
	All() bool
	AllRange(begin, end uint) bool

	FirstOne() uint
	LastOne() uint
	NextOne(i uint) uint
	PrevOne(i uint) uint
	FirstZero() uint
	LastZero() uint
	NextZero(i uint) uint
	PrevZero(i uint) uint
	Ones() iter.Seq[uint]
	Zeros() iter.Seq[uint]

	ShiftRight(n uint)
	ShiftLeft(n uint)
	ShiftLeftRange(n, first uint)
	ShiftLeftRangeOne(first uint)

	String() string
	Format(zero, one rune) string
	ReverseString() string
	FormatReverse(zero, one rune) string
	SetFromString(s string, zero, one rune) error
	ToUint32() (uint32, error)
	ToUint64() (uint64, error)
	ToReverseUint32() (uint32, error)
	ToReverseUint64() (uint64, error)
}

var (
	_ Sequence[uint64] = (*Borrowed[uint64])(nil)
	_ Sequence[uint64] = (*Owned[uint64])(nil)
)
