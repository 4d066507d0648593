package automaton

// ByteClasses maps each byte value to its equivalence class.
//
// Two bytes share a class when no state of the automaton can tell them
// apart. For a literal pattern set that means every byte occurring in some
// pattern is a singleton class, while each run of bytes that occurs in no
// pattern collapses into one shared class. Transition rows are indexed by
// class, so an automaton over "cat|dog" needs a handful of columns per state
// instead of 256.
type ByteClasses struct {
	classes [256]byte
}

// Get returns the equivalence class for the given byte.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of equivalence classes.
// Class numbers never decrease with the byte value, so the class of 0xFF is
// the largest.
func (bc *ByteClasses) AlphabetLen() int {
	return int(bc.classes[255]) + 1
}

// Elements returns all bytes that belong to the given equivalence class.
func (bc *ByteClasses) Elements(class byte) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}

// ByteClassSet collects class boundaries while patterns are added.
//
// Bit i is set when byte i ends a class. Marking a byte b sets the bits of
// b-1 and b, which isolates b into a class of its own.
type ByteClassSet struct {
	bits [4]uint64
}

// SetByte marks b as distinguishable from its neighbours.
func (bcs *ByteClassSet) SetByte(b byte) {
	if b > 0 {
		bcs.setBit(b - 1)
	}
	bcs.setBit(b)
}

// SetBytes marks every byte of p.
func (bcs *ByteClassSet) SetBytes(p []byte) {
	for _, b := range p {
		bcs.SetByte(b)
	}
}

func (bcs *ByteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *ByteClassSet) getBit(b byte) bool {
	return bcs.bits[b/64]&(1<<(b%64)) != 0
}

// ByteClasses converts the boundary set into a lookup table by walking all
// 256 bytes and starting a new class after each boundary.
func (bcs *ByteClassSet) ByteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)
	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		if b < 255 && bcs.getBit(byte(b)) {
			class++
		}
	}
	return bc
}
