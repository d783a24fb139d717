package hash

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Check value of the Castagnoli polynomial for "123456789".
	assert.Equal(t, uint32(0xE3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestNewCRC32CMatchesOneShot(t *testing.T) {
	data := []byte("BSEQ frame checksum")

	h := NewCRC32C()
	_, _ = h.Write(data[:5])
	_, _ = h.Write(data[5:])

	assert.Equal(t, CRC32C(data), h.Sum32())
	assert.NotEqual(t, crc32.ChecksumIEEE(data), h.Sum32())
}
