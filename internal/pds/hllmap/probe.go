package hllmap

import "bytes"

// Probe engine: a 128-bit keyed hash of the key yields an initial index
// (from the hash's low half) and a probe stride (from the high half). The
// table size is always prime, so any stride in [1, T-1] is coprime with it,
// which guarantees the probe sequence visits every slot exactly once before
// repeating.

// probeStart returns the initial index and stride for key's probe sequence
// over a table of size tableEntries.
func probeStart(key []byte, tableEntries int) (index, stride int) {
	h0, h1 := hashKey(key)
	index = int(h0 % uint64(tableEntries))
	stride = int(1 + h1%uint64(tableEntries-1))
	return index, stride
}

// findKey searches for key's slot starting from its probe sequence over the
// map's current table. If key is present, it returns its slot index (>= 0).
// If key is absent, it returns the ones' complement of the first empty slot
// found along the probe sequence, so that the caller can distinguish
// "found" from "insert here" with a single signed comparison, matching the
// source's i / ~i convention.
//
// If the probe returns to its own starting index without finding either
// key or an empty slot, the table's load-factor invariant has been
// violated; findKey reports this as ErrInvariantViolated rather than
// looping forever.
func (m *HllMap) findKey(key []byte) (int, error) {
	index, stride := probeStart(key, m.tableEntries)
	start := index
	for {
		if !m.occupied(index) {
			return ^index, nil
		}
		if bytes.Equal(key, m.keyAt(index)) {
			return index, nil
		}
		index = (index + stride) % m.tableEntries
		if index == start {
			return 0, ErrInvariantViolated
		}
	}
}

// findEmpty locates the first empty slot along key's probe sequence over a
// destination table that is known to be strictly under capacity. It is used
// only by resize, where key is known not to already occupy a slot in the
// destination table — so, unlike findKey, it never needs to compare key
// bytes against an occupied slot.
func findEmpty(key []byte, tableEntries int, occupiedBits []byte) (int, error) {
	index, stride := probeStart(key, tableEntries)
	start := index
	for {
		if isBitClear(occupiedBits, index) {
			return index, nil
		}
		index = (index + stride) % tableEntries
		if index == start {
			return 0, ErrInvariantViolated
		}
	}
}
