package bitseq

type options[W Word] struct {
	allocator Allocator[W]
	buffer    []W
	logger    *Logger
}

// Option configures Owned and Hardened construction.
type Option[W Word] func(*options[W])

// WithAllocator sets the allocator an Owned obtains and releases its storage
// through. If nil is passed, a fresh HeapAllocator is used.
func WithAllocator[W Word](a Allocator[W]) Option[W] {
	return func(o *options[W]) {
		o.allocator = a
	}
}

// WithBuffer makes an Owned start out on a caller supplied buffer instead of
// allocating. The buffer is never passed to the allocator; the first
// ChangeSize moves the sequence onto allocated storage.
func WithBuffer[W Word](buf []W) Option[W] {
	return func(o *options[W]) {
		o.buffer = buf
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger[W Word](l *Logger) Option[W] {
	return func(o *options[W]) {
		o.logger = l
	}
}

func applyOptions[W Word](opts []Option[W]) options[W] {
	o := options[W]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = NewHeapAllocator[W]()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
