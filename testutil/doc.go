// Package testutil provides testing utilities for bitseq.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random bit
// patterns, index sets and ranges, used to drive brute-force comparisons
// against a plain []bool model.
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(134, 0.3)     // ~30% of bits set
//	begin, end := rng.Range(134)    // random half-open range
package testutil
