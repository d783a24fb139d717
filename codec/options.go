package codec

import "github.com/hupe1980/bitseq"

// DefaultMaxBits is the largest sequence a decoder accepts unless
// WithMaxBits says otherwise (2 GiB of payload).
const DefaultMaxBits = 1 << 34

type options struct {
	codec   Codec
	logger  *bitseq.Logger
	maxBits uint64
}

// Option configures Encode and Decode.
type Option func(*options)

// WithCodec sets the payload codec used by Encode.
//
// If nil is passed, Default is used. Decode ignores it: frames name their
// codec.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c == nil {
			c = Default
		}
		o.codec = c
	}
}

// WithLogger sets the logger frame failures are reported to.
func WithLogger(l *bitseq.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxBits limits the sequence size Decode accepts.
func WithMaxBits(n uint64) Option {
	return func(o *options) {
		o.maxBits = n
	}
}

func applyOptions(opts []Option) options {
	o := options{
		codec:   Default,
		maxBits: DefaultMaxBits,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = bitseq.NoopLogger()
	}
	return o
}
