package bitseq

// Hardened is the checked configuration of a sequence. It validates every
// index and range argument before delegating to the wrapped sequence and
// returns a *RangeError (wrapping ErrOutOfRange) instead of touching memory
// outside the sequence. A rejected call leaves the sequence unchanged.
//
// Methods that take no index are promoted from the wrapped sequence. The
// search methods are promoted too: they already answer NotFound for
// arguments outside the sequence.
type Hardened[W Word] struct {
	Sequence[W]

	logger *Logger
}

// NewHardened wraps s. Only WithLogger is meaningful among the options;
// rejected calls are logged at debug level.
func NewHardened[W Word](s Sequence[W], opts ...Option[W]) *Hardened[W] {
	o := applyOptions(opts)
	return &Hardened[W]{Sequence: s, logger: o.logger}
}

// Unwrap returns the wrapped sequence.
func (h *Hardened[W]) Unwrap() Sequence[W] {
	return h.Sequence
}

func (h *Hardened[W]) checkIndex(op string, i uint) error {
	if size := h.Len(); i >= size {
		err := &RangeError{Op: op, Begin: i, End: i + 1, Size: size}
		h.logger.LogRejected(op, err)
		return err
	}
	return nil
}

// checkRange validates [begin, end). An empty range is accepted whatever
// its position; callers treat it as a no-op.
func (h *Hardened[W]) checkRange(op string, begin, end uint) error {
	if begin == end {
		return nil
	}
	if size := h.Len(); begin > end || end > size {
		err := &RangeError{Op: op, Begin: begin, End: end, Size: size}
		h.logger.LogRejected(op, err)
		return err
	}
	return nil
}

// Test reports whether bit i is set.
func (h *Hardened[W]) Test(i uint) (bool, error) {
	if err := h.checkIndex("test", i); err != nil {
		return false, err
	}
	return h.Sequence.Test(i), nil
}

// Set sets bit i.
func (h *Hardened[W]) Set(i uint) error {
	if err := h.checkIndex("set", i); err != nil {
		return err
	}
	h.Sequence.Set(i)
	return nil
}

// Reset clears bit i.
func (h *Hardened[W]) Reset(i uint) error {
	if err := h.checkIndex("reset", i); err != nil {
		return err
	}
	h.Sequence.Reset(i)
	return nil
}

// Flip toggles bit i.
func (h *Hardened[W]) Flip(i uint) error {
	if err := h.checkIndex("flip", i); err != nil {
		return err
	}
	h.Sequence.Flip(i)
	return nil
}

// SetTo sets bit i to value.
func (h *Hardened[W]) SetTo(i uint, value bool) error {
	if err := h.checkIndex("set", i); err != nil {
		return err
	}
	h.Sequence.SetTo(i, value)
	return nil
}

// SetRange sets the bits in [begin, end).
func (h *Hardened[W]) SetRange(begin, end uint) error {
	if err := h.checkRange("set range", begin, end); err != nil {
		return err
	}
	h.Sequence.SetRange(begin, end)
	return nil
}

// ResetRange clears the bits in [begin, end).
func (h *Hardened[W]) ResetRange(begin, end uint) error {
	if err := h.checkRange("reset range", begin, end); err != nil {
		return err
	}
	h.Sequence.ResetRange(begin, end)
	return nil
}

// SetRangeTo sets the bits in [begin, end) to value.
func (h *Hardened[W]) SetRangeTo(begin, end uint, value bool) error {
	if err := h.checkRange("set range", begin, end); err != nil {
		return err
	}
	h.Sequence.SetRangeTo(begin, end, value)
	return nil
}

// CountRange returns the number of set bits in [begin, end).
func (h *Hardened[W]) CountRange(begin, end uint) (uint, error) {
	if err := h.checkRange("count range", begin, end); err != nil {
		return 0, err
	}
	return h.Sequence.CountRange(begin, end), nil
}

// AnyRange reports whether at least one bit in [begin, end) is set.
func (h *Hardened[W]) AnyRange(begin, end uint) (bool, error) {
	if err := h.checkRange("any range", begin, end); err != nil {
		return false, err
	}
	return h.Sequence.AnyRange(begin, end), nil
}

// NoneRange reports whether no bit in [begin, end) is set.
func (h *Hardened[W]) NoneRange(begin, end uint) (bool, error) {
	if err := h.checkRange("none range", begin, end); err != nil {
		return false, err
	}
	return h.Sequence.NoneRange(begin, end), nil
}

// AllRange reports whether every bit in [begin, end) is set.
func (h *Hardened[W]) AllRange(begin, end uint) (bool, error) {
	if err := h.checkRange("all range", begin, end); err != nil {
		return false, err
	}
	return h.Sequence.AllRange(begin, end), nil
}

// ShiftLeftRange shifts the bits in [first, Len()) n positions towards
// first. first must be less than Len().
func (h *Hardened[W]) ShiftLeftRange(n, first uint) error {
	if err := h.checkIndex("shift left range", first); err != nil {
		return err
	}
	h.Sequence.ShiftLeftRange(n, first)
	return nil
}

// ShiftLeftRangeOne is ShiftLeftRange(1, first).
func (h *Hardened[W]) ShiftLeftRangeOne(first uint) error {
	return h.ShiftLeftRange(1, first)
}
