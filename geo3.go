package geo3

// Epsilon is the default tolerance for the package: IEEE 754 double
// precision machine epsilon, the gap between 1.0 and the next larger
// float64.
//
// It is the default eps for equality comparisons, normalization guards and
// the parallelism/degeneracy tests inside the closest-distance core. Every
// tolerance-sensitive operation has a ...Within variant that takes an
// explicit eps instead; collections take WithTolerance.
const Epsilon = 0x1p-52
