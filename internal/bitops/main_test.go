package bitops

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel is active so CI logs show the code path under test.
func TestMain(m *testing.M) {
	fmt.Printf("=== bitops kernel diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("BITSEQ_KERNEL=%q\n", os.Getenv("BITSEQ_KERNEL"))
	fmt.Printf("Active kernel: %s\n", ActiveKernel())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("POPCNT: %v\n", HasPopcount())
	fmt.Printf("=================================\n\n")

	os.Exit(m.Run())
}

// withKernel runs fn with k installed and restores the active kernel afterwards.
func withKernel(t *testing.T, k Kernel, fn func(t *testing.T)) {
	t.Helper()
	useKernel(k)
	defer useKernel(activeKernel)
	t.Run(k.String(), fn)
}
