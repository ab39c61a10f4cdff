package hllmap

import "math/bits"

// A coupon is the external, already-hashed representation of one HLL
// observation: a 32-bit value whose low lgK bits select a register and
// whose remaining bits encode the register's candidate value. Coupon
// generation itself (hashing an input item into this 32-bit form) is the
// collaborator's job, not this package's; HllMap only ever decodes coupons
// it is handed.
//
// couponRegisterIndex extracts the register index: the low bits of the
// coupon, masked to k-1 (k is a power of two, so k-1 is a contiguous run of
// one bits covering exactly lgK positions).
func couponRegisterIndex(coupon uint32, k int) int {
	return int(coupon) & (k - 1)
}

// couponRegisterValue decodes the candidate register value carried above
// the index bits: the coupon shifted right by lgK, where lgK is derived
// from k. The value must land in [0, 63]; callers validate this before
// applying it to a register.
func couponRegisterValue(coupon uint32, k int) int {
	lgK := bits.Len(uint(k)) - 1
	return int(coupon >> uint(lgK))
}
