package automaton

// Pattern is a searchable byte sequence.
//
// ID must be unique within a pattern set. Uniqueness is the caller's
// responsibility and is not checked: duplicate IDs produce unspecified
// (but memory-safe) results.
type Pattern struct {
	ID    int
	Value []byte
}

// Match identifies which pattern matched and how long it is.
type Match struct {
	PatternID  int
	PatternLen int
}

// Start returns the offset at which a match ending at end begins.
func (m Match) Start(end int) int {
	return end - m.PatternLen
}

// Location is a match positioned within a haystack.
type Location struct {
	Match Match
	// End is the exclusive offset of the first byte after the match.
	End int
}

// Start returns the inclusive start offset of the match.
func (l Location) Start() int {
	return l.Match.Start(l.End)
}
