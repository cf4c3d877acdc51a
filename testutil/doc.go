// Package testutil provides testing utilities for dynvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for float64 data, including adversarial
// inputs for the compensated reductions and NaN handling.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Gaussian(128, 1)   // scaled standard normal
//	u := rng.UnitVector(3)        // L2-normalized
//	s := rng.WithSpecials(64, 0.1) // ~10% NaN, ±Inf and ±0
//
// # Adversarial Sums
//
//	xs := testutil.CancellingSeries(1e16, 1000) // exact sum is 1000
package testutil
