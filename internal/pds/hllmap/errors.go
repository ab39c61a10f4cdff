package hllmap

import "errors"

// Sentinel errors returned by HllMap. Callers should use errors.Is to test
// for a specific kind rather than comparing error strings.
var (
	// ErrBadInput is returned when a caller passes a key of the wrong
	// length or a coupon whose decoded register value falls outside
	// [0, 63]. The map is left unchanged.
	ErrBadInput = errors.New("hllmap: bad input")

	// ErrOutOfMemory is returned when a resize cannot allocate its new
	// backing arrays. The map remains in its pre-resize state and is
	// still usable; a later insert will retry the resize.
	ErrOutOfMemory = errors.New("hllmap: out of memory")

	// ErrInvariantViolated is returned when a probe completes a full
	// cycle without finding either the key or an empty slot. The load
	// factor invariant guarantees this never happens; seeing it means the
	// table has been corrupted and the map must not be used again.
	ErrInvariantViolated = errors.New("hllmap: invariant violated")
)
