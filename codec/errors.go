package codec

import "errors"

var (
	// ErrBadMagic is returned when a frame does not start with the frame magic.
	ErrBadMagic = errors.New("codec: not a bit sequence frame")
	// ErrUnsupportedVersion is returned for frames written by a newer format version.
	ErrUnsupportedVersion = errors.New("codec: unsupported frame version")
	// ErrUnknownCodec is returned when a frame names a codec that is not built in.
	ErrUnknownCodec = errors.New("codec: unknown codec")
	// ErrChecksum is returned when the frame checksum does not match its contents.
	ErrChecksum = errors.New("codec: checksum mismatch")
	// ErrCorrupt is returned when a frame is internally inconsistent.
	ErrCorrupt = errors.New("codec: corrupt frame")
	// ErrTooLarge is returned when a frame declares more bits than the decoder accepts.
	ErrTooLarge = errors.New("codec: frame too large")
)
