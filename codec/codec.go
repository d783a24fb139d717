package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec compresses frame payloads.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Compress returns the compressed form of src, or nil if src does not
	// compress.
	Compress(src []byte) ([]byte, error)
	// Decompress returns the rawSize bytes encoded in src.
	Decompress(src []byte, rawSize int) ([]byte, error)
	// Name returns the stable name of the codec.
	Name() string
	// ID returns the frame tag of the codec.
	ID() uint8
}

// Frame tags of the built-in codecs.
const (
	IDNone uint8 = 0
	IDLZ4  uint8 = 1
	IDZstd uint8 = 2
)

// Default is the codec used when none is configured.
var Default Codec = LZ4{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "none":
		return None{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// ByID returns a built-in codec by its frame tag.
func ByID(id uint8) (Codec, bool) {
	switch id {
	case IDNone:
		return None{}, true
	case IDLZ4:
		return LZ4{}, true
	case IDZstd:
		return Zstd{}, true
	default:
		return nil, false
	}
}

var errSizeMismatch = errors.New("decompressed size mismatch")

// None stores payloads as they are.
type None struct{}

// Compress returns src.
func (None) Compress(src []byte) ([]byte, error) { return src, nil }

// Decompress returns src after checking its length.
func (None) Decompress(src []byte, rawSize int) ([]byte, error) {
	if len(src) != rawSize {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", errSizeMismatch, len(src), rawSize)
	}
	return src, nil
}

// Name returns "none".
func (None) Name() string { return "none" }

// ID returns IDNone.
func (None) ID() uint8 { return IDNone }

// LZ4 compresses payloads with LZ4 block compression (fast).
type LZ4 struct{}

// Compress compresses src into a single LZ4 block.
func (LZ4) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	compressed := make([]byte, lz4.CompressBlockBound(len(src)))

	n, err := lz4.CompressBlock(src, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

// Decompress expands an LZ4 block of rawSize bytes.
func (LZ4) Decompress(src []byte, rawSize int) ([]byte, error) {
	result := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(src, result)
	if err != nil {
		return nil, err
	}
	if n != rawSize {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", errSizeMismatch, n, rawSize)
	}
	return result, nil
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// ID returns IDLZ4.
func (LZ4) ID() uint8 { return IDLZ4 }

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Zstd compresses payloads with Zstandard (better ratio).
type Zstd struct{}

// Compress compresses src into a single Zstandard frame.
func (Zstd) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(src, nil), nil
}

// Decompress expands a Zstandard frame of rawSize bytes.
func (Zstd) Decompress(src []byte, rawSize int) ([]byte, error) {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	decoded, err := dec.DecodeAll(src, make([]byte, 0, rawSize))
	if err != nil {
		return nil, err
	}
	if len(decoded) != rawSize {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", errSizeMismatch, len(decoded), rawSize)
	}
	return decoded, nil
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// ID returns IDZstd.
func (Zstd) ID() uint8 { return IDZstd }
