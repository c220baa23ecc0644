// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic dense values and sparse (index, value) sets
// from a seeded RNG. It deliberately does not import vecmath, so the
// vecmath tests can use it without an import cycle.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vals := make([]float32, 128)
//	rng.FillUniform(vals)            // uniform [0, 1)
//	rng.FillIntegers(vals, -5, 5)    // whole numbers, exact in float32 arithmetic
//	idx, nz := rng.SparseEntries(1000, 10, -5, 5)
package testutil
