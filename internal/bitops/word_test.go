package bitops

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordBits(t *testing.T) {
	assert.Equal(t, uint(8), WordBits[uint8]())
	assert.Equal(t, uint(16), WordBits[uint16]())
	assert.Equal(t, uint(32), WordBits[uint32]())
	assert.Equal(t, uint(64), WordBits[uint64]())
	assert.Equal(t, bits.UintSize, int(WordBits[uint]()))
	assert.Equal(t, 8, WordBytes[uint64]())
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		bits uint
		u8   uint
		u64  uint
	}{
		{0, 0, 0},
		{1, 1, 1},
		{8, 1, 1},
		{9, 2, 1},
		{64, 8, 1},
		{65, 9, 2},
		{134, 17, 3},
		{584, 73, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.u8, WordCount[uint8](tt.bits), "uint8 words for %d bits", tt.bits)
		assert.Equal(t, tt.u64, WordCount[uint64](tt.bits), "uint64 words for %d bits", tt.bits)
	}

	huge := ^uint(0)
	assert.Equal(t, huge/64+1, WordCount[uint64](huge))
}

func TestMasks(t *testing.T) {
	assert.Equal(t, uint8(0), LowMask[uint8](0))
	assert.Equal(t, uint8(0x07), LowMask[uint8](3))
	assert.Equal(t, uint8(0xFF), LowMask[uint8](8))
	assert.Equal(t, ^uint64(0), LowMask[uint64](64))

	assert.Equal(t, uint8(0xFF), HighMask[uint8](0))
	assert.Equal(t, uint8(0xF8), HighMask[uint8](3))
	assert.Equal(t, uint8(0), HighMask[uint8](8))
	assert.Equal(t, uint32(0x80000000), HighMask[uint32](31))
}

func TestScalarPrimitives(t *testing.T) {
	for _, k := range []Kernel{Generic, Native} {
		withKernel(t, k, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			samples := []uint64{0, 1, 2, 3, 0x80, 0xFF00, 1 << 63, ^uint64(0), 0x8000000000000001}
			for i := 0; i < 500; i++ {
				samples = append(samples, rng.Uint64()&(rng.Uint64()|rng.Uint64()>>uint(rng.Intn(64))))
			}

			for _, v := range samples {
				assert.Equal(t, bits.OnesCount64(v), OnesCount(v))
				assert.Equal(t, bits.TrailingZeros64(v), TrailingZeros(v))
				assert.Equal(t, bits.LeadingZeros64(v), LeadingZeros(v))
				assert.Equal(t, bits.TrailingZeros64(^v), TrailingOnes(v))
				assert.Equal(t, bits.LeadingZeros64(^v), LeadingOnes(v))

				v32 := uint32(v)
				assert.Equal(t, bits.OnesCount32(v32), OnesCount(v32))
				assert.Equal(t, bits.TrailingZeros32(v32), TrailingZeros(v32))
				assert.Equal(t, bits.LeadingZeros32(v32), LeadingZeros(v32))
				assert.Equal(t, bits.LeadingZeros32(^v32), LeadingOnes(v32))

				v8 := uint8(v)
				assert.Equal(t, bits.OnesCount8(v8), OnesCount(v8))
				assert.Equal(t, bits.TrailingZeros8(v8), TrailingZeros(v8))
				assert.Equal(t, bits.LeadingZeros8(v8), LeadingZeros(v8))
				assert.Equal(t, bits.TrailingZeros8(^v8), TrailingOnes(v8))

				v16 := uint16(v)
				assert.Equal(t, bits.LeadingZeros16(v16), LeadingZeros(v16))
				assert.Equal(t, bits.TrailingZeros16(v16), TrailingZeros(v16))
			}
		})
	}
}

func TestParseKernel(t *testing.T) {
	k, ok := ParseKernel(" Native ")
	assert.True(t, ok)
	assert.Equal(t, Native, k)

	k, ok = ParseKernel("generic")
	assert.True(t, ok)
	assert.Equal(t, Generic, k)

	_, ok = ParseKernel("avx9000")
	assert.False(t, ok)

	assert.Equal(t, "unknown", Kernel(7).String())
	assert.True(t, isKernelAvailable(Generic))
	assert.False(t, isKernelAvailable(Kernel(7)))
}

func BenchmarkOnesCount(b *testing.B) {
	words := make([]uint64, 1024)
	rng := rand.New(rand.NewSource(1))
	for i := range words {
		words[i] = rng.Uint64()
	}

	for _, k := range []Kernel{Generic, Native} {
		b.Run(k.String(), func(b *testing.B) {
			useKernel(k)
			defer useKernel(activeKernel)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = PopcountWords(words)
			}
		})
	}
}
