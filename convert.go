package bitseq

import (
	"strings"
	"unicode/utf8"
)

// Decimal digit capacity of the numeric conversion targets: the number of
// decimal digits of the type's maximum value.
const (
	uint32Digits = 10
	uint64Digits = 20
)

// String renders the sequence with '0' and '1', bit 0 last.
func (b *Borrowed[W]) String() string {
	return b.Format('0', '1')
}

// Format renders the sequence with the given symbols, bit Len()-1 first and
// bit 0 last.
func (b *Borrowed[W]) Format(zero, one rune) string {
	var sb strings.Builder
	sb.Grow(int(b.size) * max(utf8.RuneLen(zero), utf8.RuneLen(one), 1))
	for i := b.size; i > 0; i-- {
		if b.Test(i - 1) {
			sb.WriteRune(one)
		} else {
			sb.WriteRune(zero)
		}
	}
	return sb.String()
}

// ReverseString renders the sequence with '0' and '1', bit 0 first.
func (b *Borrowed[W]) ReverseString() string {
	return b.FormatReverse('0', '1')
}

// FormatReverse renders the sequence with the given symbols, bit 0 first.
func (b *Borrowed[W]) FormatReverse(zero, one rune) string {
	var sb strings.Builder
	sb.Grow(int(b.size) * max(utf8.RuneLen(zero), utf8.RuneLen(one), 1))
	for i := range b.size {
		if b.Test(i) {
			sb.WriteRune(one)
		} else {
			sb.WriteRune(zero)
		}
	}
	return sb.String()
}

// SetFromString assigns the sequence from s, which must use the Format
// layout (bit 0 last) and hold exactly Len() symbols.
//
// A length mismatch returns a *SizeError wrapping ErrSizeMismatch; any
// symbol other than zero or one returns a *SyntaxError. On error the
// sequence is unchanged.
func (b *Borrowed[W]) SetFromString(s string, zero, one rune) error {
	if n := uint(utf8.RuneCountInString(s)); n != b.size {
		return sizeMismatch("set from string", b.size, n)
	}

	offset := 0
	for _, r := range s {
		if r != zero && r != one {
			return &SyntaxError{Offset: offset, Char: r}
		}
		offset++
	}

	i := b.size
	for _, r := range s {
		i--
		b.SetTo(i, r == one)
	}
	return nil
}

// ToUint32 interprets the sequence as decimal digits: bit i contributes
// 10^i, so a sequence with bits 0 and 2 set converts to 101.
//
// The weights are decimal, not binary. ErrOverflow is returned when Len()
// exceeds the 10 decimal digits a uint32 can hold.
func (b *Borrowed[W]) ToUint32() (uint32, error) {
	if b.size > uint32Digits {
		return 0, ErrOverflow
	}
	return uint32(b.decimal(false)), nil
}

// ToUint64 is the 64-bit form of ToUint32; it accepts up to 20 bits.
func (b *Borrowed[W]) ToUint64() (uint64, error) {
	if b.size > uint64Digits {
		return 0, ErrOverflow
	}
	return b.decimal(false), nil
}

// ToReverseUint32 is ToUint32 with the weights reversed: bit Len()-1-i
// contributes 10^i.
func (b *Borrowed[W]) ToReverseUint32() (uint32, error) {
	if b.size > uint32Digits {
		return 0, ErrOverflow
	}
	return uint32(b.decimal(true)), nil
}

// ToReverseUint64 is the 64-bit form of ToReverseUint32.
func (b *Borrowed[W]) ToReverseUint64() (uint64, error) {
	if b.size > uint64Digits {
		return 0, ErrOverflow
	}
	return b.decimal(true), nil
}

// decimal sums the decimal weights of the set bits. size must not exceed
// uint64Digits.
func (b *Borrowed[W]) decimal(reverse bool) uint64 {
	var (
		value  uint64
		weight uint64 = 1
	)
	for i := range b.size {
		bit := i
		if reverse {
			bit = b.size - 1 - i
		}
		if b.Test(bit) {
			value += weight
		}
		weight *= 10
	}
	return value
}
