package hllmap

import "math/big"

// nextPrime returns the smallest prime p >= n. resize uses it to pick the
// next table size so that the probe stride (derived from a second,
// independent hash) is always coprime with the table size.
//
// There's no primality library in the example pack's dependency surface, so
// this leans on math/big's Miller-Rabin-based ProbablyPrime, which is exact
// for the table sizes this map ever reaches (well under 2^31) and avoids
// hand-rolling a sieve or trial-division routine that would just be a worse
// version of the same algorithm.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	candidate := big.NewInt(int64(n))
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, big.NewInt(1))
	}
	for !candidate.ProbablyPrime(30) {
		candidate.Add(candidate, big.NewInt(2))
	}
	return int(candidate.Int64())
}
