package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		id   uint8
	}{
		{"none", IDNone},
		{"lz4", IDLZ4},
		{"zstd", IDZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.name, c.Name())
			assert.Equal(t, tt.id, c.ID())

			byID, ok := ByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, c, byID)
		})
	}

	_, ok := ByName("snappy")
	assert.False(t, ok)
	_, ok = ByID(42)
	assert.False(t, ok)
}

func TestCodecRoundTrip(t *testing.T) {
	compressible := bytes.Repeat([]byte{0, 0, 0xFF, 0x01}, 1024)

	for _, c := range []Codec{None{}, LZ4{}, Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			payload, err := c.Compress(compressible)
			require.NoError(t, err)
			require.NotNil(t, payload)
			if c.ID() != IDNone {
				assert.Less(t, len(payload), len(compressible))
			}

			raw, err := c.Decompress(payload, len(compressible))
			require.NoError(t, err)
			assert.Equal(t, compressible, raw)

			_, err = c.Decompress(payload, len(compressible)+1)
			assert.Error(t, err)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, c := range []Codec{LZ4{}, Zstd{}} {
		payload, err := c.Compress(nil)
		require.NoError(t, err)
		assert.Nil(t, payload, c.Name())
	}
}

func TestZstdConcurrentUse(t *testing.T) {
	src := bytes.Repeat([]byte("bitseq"), 512)

	t.Run("group", func(t *testing.T) {
		for range 8 {
			t.Run("worker", func(t *testing.T) {
				t.Parallel()
				for range 16 {
					payload, err := Zstd{}.Compress(src)
					require.NoError(t, err)
					raw, err := Zstd{}.Decompress(payload, len(src))
					require.NoError(t, err)
					assert.Equal(t, src, raw)
				}
			})
		}
	})
}

func BenchmarkCompress(b *testing.B) {
	src := bytes.Repeat([]byte{0, 0, 0, 0, 0, 0, 0x10, 0}, 8192)

	for _, c := range []Codec{LZ4{}, Zstd{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			for b.Loop() {
				if _, err := c.Compress(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
