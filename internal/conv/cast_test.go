//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxInt + 1)
		assert.Error(t, err)
	})
}

func TestUint64ToUint(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Uint64ToUint(123)
		assert.NoError(t, err)
		assert.Equal(t, uint(123), got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Uint64ToUint(math.MaxUint64)
		assert.NoError(t, err)
		assert.Equal(t, uint(math.MaxUint64), got)
	})
}

func TestUintToInt(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := UintToInt(42)
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := UintToInt(math.MaxUint)
		assert.Error(t, err)
	})
}
