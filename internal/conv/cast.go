package conv

import (
	"fmt"
	"math"
)

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint64ToUint converts uint64 to uint safely.
func Uint64ToUint(v uint64) (uint, error) {
	if v > uint64(math.MaxUint) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (too large)", v)
	}
	return uint(v), nil
}

// UintToInt converts uint to int safely.
func UintToInt(v uint) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
