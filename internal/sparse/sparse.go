// Package sparse provides a sparse set of automaton state ids.
//
// A sparse set supports O(1) insertion and membership testing while keeping a
// dense list of members in insertion order. The automaton uses it to track
// visited states during reachability walks, where the dense list doubles as
// the work queue.
package sparse

// SparseSet is a set of uint32 values drawn from [0, capacity).
//
// The sparse array maps a value to its index in the dense array; a value is a
// member only when both arrays agree.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
}

// NewSparseSet creates an empty set able to hold values below capacity.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	//nolint:gosec // G115: dense never grows past capacity, which is a uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of elements.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// At returns the i-th element in insertion order.
// Elements inserted while iterating by index are visited too.
func (s *SparseSet) At(i int) uint32 {
	return s.dense[i]
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
