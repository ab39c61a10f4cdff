package hllmap

// applyRegisterUpdate co-maintains a slot's packed register, its split
// inverse-power-of-two sum, and its HIP accumulator for one coupon.
//
// The update to hip happens before the split sum is touched: k/S, where S is
// the pre-update sum, is the HIP increment, and computing it against the
// stale sum is exactly what makes the estimator correct. Splitting the sum
// into sumHi (registers < 32) and sumLo (registers >= 32) keeps floating
// point addition from silently dropping small terms into a sum that can be
// roughly 2^32 times larger — the two magnitudes differ by about that
// factor, so summing them directly would round the small side away.
//
// If newValue does not strictly exceed the register's current value, this
// is a no-op: sumHi, sumLo, hip, and the register word are all left
// untouched, and the returned bool reports that nothing changed.
func (m *HllMap) applyRegisterUpdate(slot, registerIndex, newValue int) bool {
	base := slot * m.wordsPerSlot
	oldValue := int(readRegister(m.registers, base, registerIndex))
	if newValue <= oldValue {
		return false
	}

	s := m.sumHi[slot] + m.sumLo[slot]
	m.hip[slot] += float64(m.k) / s

	if oldValue < 32 {
		m.sumHi[slot] -= invPow2(oldValue)
	} else {
		m.sumLo[slot] -= invPow2(oldValue)
	}
	if newValue < 32 {
		m.sumHi[slot] += invPow2(newValue)
	} else {
		m.sumLo[slot] += invPow2(newValue)
	}

	writeRegister(m.registers, base, registerIndex, uint8(newValue))
	return true
}
