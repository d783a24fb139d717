package bitseq

// Owned is a runtime-sized sequence that owns its storage.
//
// Storage comes from an Allocator (a HeapAllocator unless WithAllocator is
// given) and is returned to it exactly once, by Release or when ChangeSize
// replaces the block. A buffer supplied with WithBuffer is never returned to
// the allocator.
//
// A released or moved-from Owned behaves as an empty sequence. It may be
// resized again, which allocates a new block that must be released in turn.
type Owned[W Word] struct {
	Borrowed[W]

	allocator Allocator[W]
	owns      bool // Borrowed.buf came from allocator
	logger    *Logger
}

// NewOwned creates a zero-filled sequence of size bits.
//
// With WithBuffer it returns ErrBufferTooSmall if the buffer cannot hold
// size bits. It also fails if the allocator returns a short block.
func NewOwned[W Word](size uint, opts ...Option[W]) (*Owned[W], error) {
	o := applyOptions(opts)
	s := &Owned[W]{
		allocator: o.allocator,
		logger:    o.logger.WithWords(wordBits[W]()),
	}

	if o.buffer != nil {
		b, err := NewBorrowed(o.buffer, size)
		if err != nil {
			return nil, err
		}
		s.Borrowed = *b
		s.logger.LogAlloc(size, len(s.words), true)
		return s, nil
	}

	b, err := s.allocate(size)
	if err != nil {
		return nil, err
	}
	s.Borrowed = b
	s.owns = true
	return s, nil
}

// allocate obtains a zero-filled block for size bits from the allocator.
func (s *Owned[W]) allocate(size uint) (Borrowed[W], error) {
	n := wordCount[W](size)
	buf := s.allocator.Allocate(int(n))
	if uint(len(buf)) < n {
		if buf != nil {
			s.allocator.Deallocate(buf)
		}
		return Borrowed[W]{}, bufferTooSmall("allocate", n, uint(len(buf)))
	}
	b := Borrowed[W]{buf: buf, words: buf[:n], size: size}
	b.ResetAll()
	s.logger.LogAlloc(size, len(buf), false)
	return b, nil
}

// release returns the current block to the allocator if it came from it.
func (s *Owned[W]) release() {
	if s.owns {
		s.logger.LogRelease(s.size, len(s.buf))
		s.allocator.Deallocate(s.buf)
	}
	s.Borrowed = Borrowed[W]{}
	s.owns = false
}

// Release returns the storage to the allocator and leaves s empty.
// Calling Release again is a no-op.
func (s *Owned[W]) Release() {
	s.release()
}

// Allocator returns the allocator s draws its storage from.
func (s *Owned[W]) Allocator() Allocator[W] {
	return s.allocator
}

// Clone returns a deep copy of s drawing its storage from the same allocator.
func (s *Owned[W]) Clone() (*Owned[W], error) {
	c := &Owned[W]{allocator: s.allocator, logger: s.logger}
	b, err := c.allocate(s.size)
	if err != nil {
		return nil, err
	}
	copy(b.words, s.words)
	c.Borrowed = b
	c.owns = true
	return c, nil
}

// Move returns an Owned that takes over s's storage. s is left empty and
// owns nothing, so releasing it is a no-op.
func (s *Owned[W]) Move() *Owned[W] {
	m := &Owned[W]{
		Borrowed:  s.Borrowed,
		allocator: s.allocator,
		owns:      s.owns,
		logger:    s.logger,
	}
	s.Borrowed = Borrowed[W]{}
	s.owns = false
	return m
}

// ChangeSize moves the sequence onto a new block of n bits. The first
// min(n, Len()) bits are kept and the rest are zero. The old block is
// returned to the allocator; on error s is unchanged.
func (s *Owned[W]) ChangeSize(n uint) error {
	from := s.size
	b, err := s.allocate(n)
	if err != nil {
		s.logger.LogResize(from, n, err)
		return err
	}
	b.copyPrefix(s.words, min(n, s.size))
	s.release()
	s.Borrowed = b
	s.owns = true
	s.logger.LogResize(from, n, nil)
	return nil
}

// CopyFrom makes s an exact copy of src, resizing s to src.Len() if needed.
func (s *Owned[W]) CopyFrom(src Sequence[W]) error {
	if src.Len() != s.size {
		if err := s.ChangeSize(src.Len()); err != nil {
			return err
		}
	}
	copy(s.words, src.Words())
	return nil
}

// Swap exchanges the storage of s and o, which must have the same size.
func (s *Owned[W]) Swap(o *Owned[W]) error {
	if o.size != s.size {
		return sizeMismatch("swap", s.size, o.size)
	}
	s.Borrowed, o.Borrowed = o.Borrowed, s.Borrowed
	s.allocator, o.allocator = o.allocator, s.allocator
	s.owns, o.owns = o.owns, s.owns
	return nil
}

// derive returns a clone of s after applying op to it.
func (s *Owned[W]) derive(op func(c *Owned[W]) error) (*Owned[W], error) {
	c, err := s.Clone()
	if err != nil {
		return nil, err
	}
	if err := op(c); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Intersection returns a new sequence holding s AND o.
// Size rules are those of And.
func (s *Owned[W]) Intersection(o Sequence[W]) (*Owned[W], error) {
	return s.derive(func(c *Owned[W]) error { return c.And(o) })
}

// Union returns a new sequence holding s OR o.
func (s *Owned[W]) Union(o Sequence[W]) (*Owned[W], error) {
	return s.derive(func(c *Owned[W]) error { return c.Or(o) })
}

// SymmetricDifference returns a new sequence holding s XOR o.
func (s *Owned[W]) SymmetricDifference(o Sequence[W]) (*Owned[W], error) {
	return s.derive(func(c *Owned[W]) error { return c.Xor(o) })
}

// Complement returns a new sequence holding NOT s.
func (s *Owned[W]) Complement() (*Owned[W], error) {
	return s.derive(func(c *Owned[W]) error {
		c.FlipAll()
		return nil
	})
}

// ShiftedRight returns a new sequence holding s shifted right by n.
func (s *Owned[W]) ShiftedRight(n uint) (*Owned[W], error) {
	return s.derive(func(c *Owned[W]) error {
		c.ShiftRight(n)
		return nil
	})
}

// ShiftedLeft returns a new sequence holding s shifted left by n.
func (s *Owned[W]) ShiftedLeft(n uint) (*Owned[W], error) {
	return s.derive(func(c *Owned[W]) error {
		c.ShiftLeft(n)
		return nil
	})
}
