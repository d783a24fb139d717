package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/hupe1980/bitseq"
	"github.com/hupe1980/bitseq/internal/bitops"
	"github.com/hupe1980/bitseq/internal/conv"
	bshash "github.com/hupe1980/bitseq/internal/hash"
)

const (
	magic = "BSEQ"

	// Version is the frame format written by Encode.
	Version uint8 = 1

	// compressThreshold is the largest payload/raw ratio worth storing
	// compressed.
	compressThreshold = 0.9
)

type header struct {
	version   uint8
	wordBytes uint8
	codec     Codec
	size      uint64
	length    uint64
}

func (h header) codecName() string {
	if h.codec == nil {
		return ""
	}
	return h.codec.Name()
}

// Encode writes s to w as a single frame.
func Encode[W bitseq.Word](w io.Writer, s bitseq.Sequence[W], opts ...Option) error {
	o := applyOptions(opts)

	buf, c, err := appendFrame(nil, s, o.codec)
	if err == nil {
		_, err = w.Write(buf)
	}
	o.logger.LogFrame("encode", uint64(s.Len()), c.Name(), err)
	return err
}

// Append appends the frame of s to dst and returns the extended buffer.
func Append[W bitseq.Word](dst []byte, s bitseq.Sequence[W], opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	dst, _, err := appendFrame(dst, s, o.codec)
	return dst, err
}

// appendFrame appends the frame of s and reports the codec actually used.
func appendFrame[W bitseq.Word](dst []byte, s bitseq.Sequence[W], c Codec) ([]byte, Codec, error) {
	wb := bitops.WordBytes[W]()
	words := s.Words()
	raw := appendWords(make([]byte, 0, len(words)*wb), words)

	payload, err := c.Compress(raw)
	if err != nil {
		return dst, c, fmt.Errorf("codec %s: compress: %w", c.Name(), err)
	}
	if c.ID() != IDNone && (payload == nil || float64(len(payload)) > float64(len(raw))*compressThreshold) {
		c, payload = None{}, raw
	}

	start := len(dst)
	dst = append(dst, magic...)
	dst = append(dst, Version, uint8(wb), c.ID())
	dst = binary.AppendUvarint(dst, uint64(s.Len()))
	dst = binary.AppendUvarint(dst, uint64(len(payload)))
	dst = append(dst, payload...)
	return binary.LittleEndian.AppendUint32(dst, bshash.CRC32C(dst[start:])), c, nil
}

// Decode reads one frame from r into a new Owned sequence.
//
// It returns io.EOF if r is exhausted before the frame starts, so a stream
// of frames can be read until io.EOF.
func Decode[W bitseq.Word](r io.Reader, opts ...Option) (*bitseq.Owned[W], error) {
	o := applyOptions(opts)

	h, raw, err := readFrame(r, o.maxBits)
	if err != nil {
		return nil, o.failed(h, err)
	}
	size, err := conv.Uint64ToUint(h.size)
	if err != nil {
		return nil, o.failed(h, fmt.Errorf("%w: %w", ErrTooLarge, err))
	}

	s, err := bitseq.NewOwned[W](size, bitseq.WithLogger[W](o.logger))
	if err != nil {
		return nil, o.failed(h, err)
	}
	fillWords(s.Words(), raw, h.size)
	o.logger.LogFrame("decode", h.size, h.codecName(), nil)
	return s, nil
}

// DecodeInto reads one frame from r into dst, which must have the frame's
// size. On error dst is unchanged.
func DecodeInto[W bitseq.Word](r io.Reader, dst bitseq.Sequence[W], opts ...Option) error {
	o := applyOptions(opts)

	h, raw, err := readFrame(r, o.maxBits)
	if err != nil {
		return o.failed(h, err)
	}
	if h.size != uint64(dst.Len()) {
		return o.failed(h, fmt.Errorf("%w: frame holds %d bits, sequence %d", bitseq.ErrSizeMismatch, h.size, dst.Len()))
	}
	fillWords(dst.Words(), raw, h.size)
	o.logger.LogFrame("decode", h.size, h.codecName(), nil)
	return nil
}

func (o options) failed(h header, err error) error {
	if !errors.Is(err, io.EOF) {
		o.logger.LogFrame("decode", h.size, h.codecName(), err)
	}
	return err
}

// readFrame reads and verifies one frame and returns its raw payload.
func readFrame(r io.Reader, maxBits uint64) (header, []byte, error) {
	var h header
	fr := &frameReader{r: r, crc: bshash.NewCRC32C()}

	var m [len(magic)]byte
	if err := fr.readFull(m[:]); err != nil {
		return h, nil, err
	}
	if string(m[:]) != magic {
		return h, nil, ErrBadMagic
	}

	var fixed [3]byte
	if err := fr.readFull(fixed[:]); err != nil {
		return h, nil, noEOF(err)
	}
	h.version, h.wordBytes = fixed[0], fixed[1]
	if h.version != Version {
		return h, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}
	switch h.wordBytes {
	case 1, 2, 4, 8:
	default:
		return h, nil, fmt.Errorf("%w: word width of %d bytes", ErrCorrupt, h.wordBytes)
	}
	c, ok := ByID(fixed[2])
	if !ok {
		return h, nil, fmt.Errorf("%w: id %d", ErrUnknownCodec, fixed[2])
	}
	h.codec = c

	var err error
	if h.size, err = binary.ReadUvarint(fr); err != nil {
		return h, nil, noEOF(err)
	}
	if h.size > maxBits {
		return h, nil, fmt.Errorf("%w: %d bits, limit %d", ErrTooLarge, h.size, maxBits)
	}
	if h.length, err = binary.ReadUvarint(fr); err != nil {
		return h, nil, noEOF(err)
	}

	wordBits := uint64(h.wordBytes) * 8
	words := h.size / wordBits
	if h.size%wordBits != 0 {
		words++
	}
	rawLen := words * uint64(h.wordBytes)
	if h.length > rawLen {
		return h, nil, fmt.Errorf("%w: payload of %d bytes exceeds raw size %d", ErrCorrupt, h.length, rawLen)
	}
	rawN, err := conv.Uint64ToInt(rawLen)
	if err != nil {
		return h, nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}

	payload := make([]byte, h.length)
	if err := fr.readFull(payload); err != nil {
		return h, nil, noEOF(err)
	}
	sum := fr.crc.Sum32()

	var tail [4]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return h, nil, noEOF(err)
	}
	if binary.LittleEndian.Uint32(tail[:]) != sum {
		return h, nil, ErrChecksum
	}

	raw, err := c.Decompress(payload, rawN)
	if err != nil {
		return h, nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c.Name(), err)
	}
	if err := checkPadding(raw, h.size); err != nil {
		return h, nil, err
	}
	return h, raw, nil
}

// frameReader reads a frame while feeding every byte into the checksum.
type frameReader struct {
	r   io.Reader
	crc hash.Hash32
	b   [1]byte
}

func (f *frameReader) ReadByte() (byte, error) {
	if err := f.readFull(f.b[:]); err != nil {
		return 0, err
	}
	return f.b[0], nil
}

func (f *frameReader) readFull(p []byte) error {
	if _, err := io.ReadFull(f.r, p); err != nil {
		return err
	}
	_, _ = f.crc.Write(p)
	return nil
}

func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// appendWords appends words in little-endian byte order.
func appendWords[W bitseq.Word](dst []byte, words []W) []byte {
	wb := bitops.WordBytes[W]()
	for _, w := range words {
		for k := range wb {
			dst = append(dst, byte(w>>(8*k)))
		}
	}
	return dst
}

// fillWords assigns dst from the first ceil(size/8) bytes of raw.
func fillWords[W bitseq.Word](dst []W, raw []byte, size uint64) {
	wb := bitops.WordBytes[W]()
	clear(dst)
	n := int((size + 7) / 8) //nolint:gosec // bounded by the raw length
	for i, b := range raw[:n] {
		dst[i/wb] |= W(b) << (8 * (i % wb))
	}
}

// checkPadding verifies that no bit at or beyond size is set in raw.
func checkPadding(raw []byte, size uint64) error {
	full := size / 8
	if rem := size % 8; rem != 0 {
		if raw[full]>>rem != 0 {
			return fmt.Errorf("%w: bits set beyond size %d", ErrCorrupt, size)
		}
		full++
	}
	for _, b := range raw[full:] {
		if b != 0 {
			return fmt.Errorf("%w: bits set beyond size %d", ErrCorrupt, size)
		}
	}
	return nil
}
