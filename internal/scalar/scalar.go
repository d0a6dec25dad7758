// Package scalar provides the float64 kernels shared by the geometry types.
// This is an internal package - external users should use the geo3 package.
package scalar

import "math"

// NearlyEqual reports whether a and b agree within a relative tolerance of
// eps, scaled by the larger magnitude of the two. At zero the bound
// collapses, so only an exact zero compares equal to zero.
// Public for use by the geo3 package.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// Clamp01 clamps v to the unit interval [0, 1].
//
// This is primarily used to project segment parameters back onto their
// segments. NaN clamps to 0 so a poisoned parameter still selects a
// valid point.
func Clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}
