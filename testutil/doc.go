// Package testutil provides testing utilities for Geo3.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points and segments and for
// computing exact nearest neighbors by brute force.
//
// # Random Geometry Generation
//
//	rng := testutil.NewRNG(seed)
//	p := rng.UniformPoint(-10, 10)       // coordinates in [-10, 10)
//	s := rng.UniformSegment(-10, 10)     // endpoints in [-10, 10)
//	v := rng.UnitVector()                // uniform on the unit sphere
//
// # Exact Search (Ground Truth)
//
//	results := testutil.BruteForceNearest(segments, probe, k)
package testutil
