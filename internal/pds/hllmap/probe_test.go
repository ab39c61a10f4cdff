package hllmap

import (
	"errors"
	"testing"
)

// TestProbeCoverage checks that while occupancy is under the table size,
// findKey terminates on every key without raising ErrInvariantViolated.
func TestProbeCoverage(t *testing.T) {
	m, _ := New(4, 1024)
	key := make([]byte, 4)
	for i := 0; i < 100; i++ {
		key[0], key[1], key[2], key[3] = byte(i), byte(i>>8), byte(i>>16), byte(i>>24)
		if _, err := m.findKey(key); err != nil {
			t.Fatalf("findKey(%d): %v", i, err)
		}
	}
}

// TestFindEmptyInvariantViolation checks that findEmpty refuses to loop
// forever on a fully occupied table and instead reports
// ErrInvariantViolated.
func TestFindEmptyInvariantViolation(t *testing.T) {
	const tableEntries = 7
	occupied := make([]byte, bitmapBytes(tableEntries))
	for i := 0; i < tableEntries; i++ {
		setBit(occupied, i)
	}

	_, err := findEmpty([]byte{1, 2, 3, 4}, tableEntries, occupied)
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("findEmpty on a full table: err = %v, want ErrInvariantViolated", err)
	}
}

func TestFindKeyFoundVsEmptyEncoding(t *testing.T) {
	m, _ := New(4, 1024)
	key := []byte{1, 1, 1, 1}

	idx, err := m.findKey(key)
	if err != nil {
		t.Fatalf("findKey: %v", err)
	}
	if idx >= 0 {
		t.Fatalf("findKey on absent key returned non-negative index %d", idx)
	}
	emptySlot := ^idx

	if _, err := m.Update(key, 0x00000401); err != nil {
		t.Fatalf("Update: %v", err)
	}

	idx, err = m.findKey(key)
	if err != nil {
		t.Fatalf("findKey: %v", err)
	}
	if idx != emptySlot {
		t.Fatalf("findKey after insert = %d, want the previously reported empty slot %d", idx, emptySlot)
	}
}
