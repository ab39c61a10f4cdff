package main

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Coupon generation is explicitly an external collaborator of HllMap, not
// part of it (the core only ever decodes a coupon it is handed). This file
// is that collaborator for the bench harness: it hashes an arbitrary byte
// element into the register-index-plus-value pair HllMap expects, packed
// into a single uint32 coupon.
//
// The technique — split a 64-bit hash into low bits for the register index
// and count trailing zeros of the remaining bits for the candidate register
// value — is the same one internal/pds/hyperloglog/helpers.go uses for its
// single-sketch Add path, adapted here for a caller-supplied lgK instead of
// a fixed p=14, and for a 6-bit (not 8-bit) register ceiling.

// makeCoupon hashes data into a coupon for an HllMap of the given k. The
// low lgK bits of the hash select the register; the position of the first
// one-bit above those bits (plus one) is the candidate register value,
// clamped to the 6-bit register's maximum of 63.
func makeCoupon(data []byte, k int) uint32 {
	lgK := bits.Len(uint(k)) - 1
	hash := xxhash.Sum64(data)

	index := hash & (uint64(k) - 1)

	rest := hash >> uint(lgK)
	rest |= uint64(1) << uint(64-lgK) // guard bit: rest is never zero
	value := bits.TrailingZeros64(rest) + 1
	if value > 63 {
		value = 63
	}

	return uint32((uint64(value) << uint(lgK)) | index)
}
