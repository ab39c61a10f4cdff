package hllmap

import "github.com/spaolacci/murmur3"

// hashSeed is the fixed seed shared by every key hashed into an HllMap. It
// has no special significance beyond being constant across the lifetime of
// the library, matching the source's use of a single fixed MurmurHash3 seed
// for all map lookups.
const hashSeed = 9001

// hashKey computes the 128-bit keyed MurmurHash3 of key, returning the two
// 64-bit halves h0 and h1. findKey and findEmpty derive the initial probe
// index from h0 and the probe stride from h1.
func hashKey(key []byte) (h0, h1 uint64) {
	return murmur3.Sum128WithSeed(key, hashSeed)
}
