// Package conv provides checked integer narrowing for automaton state ids.
//
// The automaton stores states in a slice indexed by uint32 ids. Converting a
// slice length into an id must never wrap silently: a wrapped id would alias
// one of the reserved sentinel states. These helpers panic instead, since an
// exhausted id space is a construction bug, not a recoverable condition.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// uint comparison keeps 32-bit platforms from overflowing on MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
