package bitseq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or range lies outside the sequence.
	ErrOutOfRange = errors.New("bitseq: index out of range")
	// ErrSizeMismatch is returned when two sequences have incompatible sizes.
	ErrSizeMismatch = errors.New("bitseq: size mismatch")
	// ErrOverflow is returned when a numeric conversion cannot represent the sequence.
	ErrOverflow = errors.New("bitseq: sequence cannot be represented by this type")
	// ErrBufferTooSmall is returned when a supplied buffer cannot hold the requested size.
	ErrBufferTooSmall = errors.New("bitseq: buffer too small")
	// ErrInvalidLayout is returned when a fixed layout type cannot back its declared size.
	ErrInvalidLayout = errors.New("bitseq: invalid layout")
	// ErrSyntax is returned when a string contains characters other than the zero and one symbols.
	ErrSyntax = errors.New("bitseq: invalid character")
)

// RangeError reports an index or half-open range rejected by a checked operation.
//
// The sentinel ErrOutOfRange can be matched with errors.Is.
type RangeError struct {
	Op    string
	Begin uint
	End   uint // Begin+1 for single-index operations
	Size  uint
}

func (e *RangeError) Error() string {
	if e.End == e.Begin+1 {
		return fmt.Sprintf("bitseq: %s: index %d out of range for size %d", e.Op, e.Begin, e.Size)
	}
	return fmt.Sprintf("bitseq: %s: range [%d, %d) out of range for size %d", e.Op, e.Begin, e.End, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// SizeError reports incompatible sizes between two sequences or between a
// sequence and its buffer.
//
// The underlying sentinel (ErrSizeMismatch or ErrBufferTooSmall) can be
// matched with errors.Is.
type SizeError struct {
	Op   string
	Want uint
	Got  uint
	err  error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %s: want %d, got %d", e.err, e.Op, e.Want, e.Got)
}

func (e *SizeError) Unwrap() error { return e.err }

// SyntaxError reports an unexpected character while parsing a bit string.
type SyntaxError struct {
	Offset int
	Char   rune
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bitseq: invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func sizeMismatch(op string, want, got uint) error {
	return &SizeError{Op: op, Want: want, Got: got, err: ErrSizeMismatch}
}

func bufferTooSmall(op string, want, got uint) error {
	return &SizeError{Op: op, Want: want, Got: got, err: ErrBufferTooSmall}
}
