// Package prefilter skips haystack regions where no match can begin.
//
// A leftmost-longest automaton without an empty pattern stays in its start
// state, recording nothing, for every byte that has no pattern edge out of
// that state. Jumping straight to the next byte that does have one is
// therefore exact, not a heuristic: the search result is unchanged and no
// verification step is needed.
//
// The prefilter is chosen from the set of start bytes:
//   - 1 byte → Memchr
//   - 2 bytes → Memchr2
//   - 3 bytes → Memchr3
//   - more → 256-entry table scan
//   - none → never matches
//   - all 256, or an empty pattern present → nil (nothing to skip)
//
// Example:
//
//	a := automaton.New(patterns)
//	if pf := prefilter.New(a); pf != nil {
//	    pos := pf.Find(haystack, 0)
//	    if pos < 0 {
//	        return // no match anywhere
//	    }
//	    loc, ok := a.Find(haystack, pos)
//	}
package prefilter

import (
	"github.com/coregx/longestmatch/automaton"
	"github.com/coregx/longestmatch/simd"
)

// Prefilter finds candidate match start positions.
type Prefilter interface {
	// Find returns the first offset >= start at which a match could begin,
	// or -1 if there is none. start must be in [0, len(haystack)].
	Find(haystack []byte, start int) int

	// HeapBytes returns the heap memory held by the prefilter.
	HeapBytes() int
}

// New builds the prefilter for a's start bytes, or returns nil when no byte
// can be skipped.
func New(a *automaton.Automaton) Prefilter {
	if a.StartHasMatch() {
		return nil
	}
	return FromStartBytes(a.StartBytes())
}

// FromStartBytes selects a prefilter for the given set of distinct start
// bytes.
func FromStartBytes(set []byte) Prefilter {
	switch len(set) {
	case 0:
		return never{}
	case 1:
		return &memchr1{set[0]}
	case 2:
		return &memchr2{set[0], set[1]}
	case 3:
		return &memchr3{set[0], set[1], set[2]}
	case 256:
		return nil
	}
	t := &table{}
	for _, b := range set {
		t.bytes[b] = true
	}
	return t
}

// bounded converts a relative search result to an absolute offset.
func bounded(idx, start int) int {
	if idx < 0 {
		return -1
	}
	return start + idx
}

type never struct{}

func (never) Find([]byte, int) int { return -1 }
func (never) HeapBytes() int       { return 0 }

type memchr1 struct {
	b byte
}

func (p *memchr1) Find(haystack []byte, start int) int {
	return bounded(simd.Memchr(haystack[start:], p.b), start)
}

func (p *memchr1) HeapBytes() int { return 0 }

type memchr2 struct {
	b1, b2 byte
}

func (p *memchr2) Find(haystack []byte, start int) int {
	return bounded(simd.Memchr2(haystack[start:], p.b1, p.b2), start)
}

func (p *memchr2) HeapBytes() int { return 0 }

type memchr3 struct {
	b1, b2, b3 byte
}

func (p *memchr3) Find(haystack []byte, start int) int {
	return bounded(simd.Memchr3(haystack[start:], p.b1, p.b2, p.b3), start)
}

func (p *memchr3) HeapBytes() int { return 0 }

// table handles start sets too large for the memchr variants.
type table struct {
	bytes [256]bool
}

func (p *table) Find(haystack []byte, start int) int {
	return bounded(simd.MemchrInTable(haystack[start:], &p.bytes), start)
}

func (p *table) HeapBytes() int { return 256 }
