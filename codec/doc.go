// Package codec serializes bit sequences into self-describing frames.
//
// A frame is laid out as
//
//	magic     "BSEQ"
//	version   u8
//	wordBytes u8       storage word width of the writer
//	codec     u8       payload compression, see ByID
//	size      uvarint  number of bits
//	length    uvarint  payload length in bytes
//	payload   []byte   compressed little-endian words
//	checksum  u32      CRC32-C of everything above, little-endian
//
// The uncompressed payload is the writer's storage words in little-endian
// byte order, which is the same byte stream for every word width. A frame
// written with one word width therefore decodes into any other.
//
// Payloads that do not shrink below 90% of their raw size are stored
// uncompressed and tagged with the none codec.
package codec
