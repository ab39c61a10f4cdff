package hllmap

import "math"

// invPow2 returns 2^-v with full IEEE-754 precision for v in [0, 63]. It is
// implemented as a direct exponent manipulation rather than math.Pow(2, -v):
// every value 2^-v for v in that range is exactly representable in a
// float64's exponent field, so math.Ldexp(1, -v) is both exact and a single
// floating-point operation, instead of incurring math.Pow's general-purpose
// (and imprecise) log/exp path.
func invPow2(v int) float64 {
	return math.Ldexp(1, -v)
}
