// Package simd provides SWAR (SIMD Within A Register) byte search primitives.
//
// The automaton's start-byte prefilter uses these to skip haystack regions
// that cannot begin a match. Each function processes 8 bytes per iteration
// using uint64 bitwise operations, which is portable to every GOARCH.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes returns a mask with the high bit set in every byte of v that is
// zero. Bits above the lowest set bit may be spurious (borrow propagation), so
// only the lowest set bit is meaningful.
//
// Formula from Hacker's Delight: (v - 0x01..) & ^v & 0x80..
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if found := zeroBytes(chunk ^ mask); found != 0 {
			return idx + bits.TrailingZeros64(found)/8
		}
	}
	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of needle1 or needle2,
// or -1 if neither is present.
//
// Both needles are tested in the same pass. Because each per-needle mask's
// lowest set bit is exact, the lowest bit of their union is exact too.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b := haystack[i]; b == needle1 || b == needle2 {
				return i
			}
		}
		return -1
	}

	mask1, mask2 := broadcast(needle1), broadcast(needle2)
	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		found := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2)
		if found != 0 {
			return idx + bits.TrailingZeros64(found)/8
		}
	}
	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 {
			return idx
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of any of the three
// needles, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b := haystack[i]; b == needle1 || b == needle2 || b == needle3 {
				return i
			}
		}
		return -1
	}

	mask1, mask2, mask3 := broadcast(needle1), broadcast(needle2), broadcast(needle3)
	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		found := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if found != 0 {
			return idx + bits.TrailingZeros64(found)/8
		}
	}
	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 || b == needle3 {
			return idx
		}
	}
	return -1
}

// MemchrInTable returns the index of the first byte b with table[b] set,
// or -1 if there is none.
//
// This is the general byte-set search used when a set has more members than
// Memchr3 can test at once.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}
