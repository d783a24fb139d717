// Package hash provides the checksum used by serialized frames.
//
// # CRC32-Castagnoli (CRC32C)
//
// Frames are protected by CRC32-Castagnoli, which Go's hash/crc32 computes
// with SSE4.2 or the ARM CRC extension when available.
//
// For one-shot checksums:
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
