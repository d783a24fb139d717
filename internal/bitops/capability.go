package bitops

import (
	"os"
	"runtime"
	"strings"
)

// Kernel identifies an implementation of the word primitives.
type Kernel uint8

const (
	// Generic is the portable bit-trick implementation.
	Generic Kernel = iota
	// Native uses math/bits, lowered to hardware instructions.
	Native
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "native":
		return Native, true
	default:
		return Generic, false
	}
}

// Package-level state, initialized once from the platform-specific init.
var (
	activeKernel Kernel

	// hasOverride is true if BITSEQ_KERNEL selected the kernel.
	hasOverride bool

	// hasPopcount reports a hardware population count instruction.
	hasPopcount bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("BITSEQ_KERNEL"); override != "" {
		if k, ok := ParseKernel(override); ok && isKernelAvailable(k) {
			hasOverride = true
			activeKernel = k
			useKernel(k)
			return
		}
		// Unknown or unavailable override: fall through to auto-detection.
	}

	activeKernel = selectBestKernel()
	useKernel(activeKernel)
}

func isKernelAvailable(k Kernel) bool {
	switch k {
	case Generic:
		return true
	case Native:
		return hasPopcount
	default:
		return false
	}
}

func selectBestKernel() Kernel {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		if hasPopcount {
			return Native
		}
	}
	return Generic
}

// ActiveKernel returns the currently active kernel.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if BITSEQ_KERNEL selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcount returns true if the CPU has a population count instruction.
func HasPopcount() bool {
	return hasPopcount
}
