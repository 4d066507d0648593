// Package automaton implements an Aho-Corasick automaton with leftmost-longest
// match semantics.
//
// For any start offset the automaton reports the match that begins earliest
// and, among matches beginning there, the longest one. Construction runs in
// four stages:
//
//  1. Trie: one state per distinct pattern prefix.
//  2. Encoding: the START and DEAD sentinels get total transition rows.
//  3. Failure links: a breadth-first pass computes each state's fallback and
//     inherited matches, refusing fallbacks that could let a later-starting
//     match replace one already found.
//  4. Flattening: every undefined transition is replaced by the state the
//     failure chain resolves it to, so a search step is one table lookup.
//
// A built Automaton is immutable and safe for concurrent use.
//
// Example:
//
//	a := automaton.New([]automaton.Pattern{
//	    {ID: 0, Value: []byte("a")},
//	    {ID: 1, Value: []byte("ab")},
//	})
//	loc, ok := a.Find([]byte("xab"), 0)
//	// ok == true, loc.Match.PatternID == 1, loc.Start() == 1, loc.End == 3
package automaton

import "unsafe"

// StateID identifies an automaton state. It indexes the state arena.
type StateID uint32

// Reserved states, allocated before any pattern-derived state.
const (
	// FailState means "no transition". It only exists during construction;
	// no transition of a built automaton targets it.
	FailState StateID = 0

	// DeadState is absorbing: every byte leads back to it. Reaching it ends a
	// search because no later byte can improve the match already recorded.
	DeadState StateID = 1

	// StartState is the root of the trie and the initial search state.
	StartState StateID = 2
)

// noMatchDepth marks a BFS position with no known match start.
const noMatchDepth = -1

// state is one node of the arena. Its transition row lives in
// Automaton.trans at offset id*stride.
type state struct {
	fail  StateID
	depth int
	// matches[0] is the longest match ending at this state: trie construction
	// records a state's own pattern first and failure propagation only
	// appends shorter suffix matches after it.
	matches []Match
}

func (s *state) hasMatch() bool {
	return len(s.matches) > 0
}

func (s *state) longestMatchLen() int {
	return s.matches[0].PatternLen
}

// Automaton is a compiled leftmost-longest Aho-Corasick automaton.
type Automaton struct {
	states      []state
	trans       []StateID
	classes     ByteClasses
	stride      int
	numPatterns int
}

// NumStates returns the number of states, sentinels included.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// NumPatterns returns the number of patterns the automaton was built from.
func (a *Automaton) NumPatterns() int {
	return a.numPatterns
}

// ByteClasses returns the alphabet reduction used by the transition table.
func (a *Automaton) ByteClasses() ByteClasses {
	return a.classes
}

// StartHasMatch reports whether the start state carries a match, which only
// happens when the pattern set contains an empty pattern. Such an automaton
// matches at every offset.
func (a *Automaton) StartHasMatch() bool {
	return a.states[StartState].hasMatch()
}

// StartBytes returns, in ascending order, every byte with a pattern edge out
// of the start state. A match can only begin at one of these bytes (or
// anywhere, if StartHasMatch).
func (a *Automaton) StartBytes() []byte {
	var out []byte
	for class, next := range a.row(StartState) {
		if next != StartState && next != DeadState {
			// Classes cover ascending byte ranges, so out stays sorted.
			out = append(out, a.classes.Elements(byte(class))...)
		}
	}
	return out
}

// HeapBytes returns the approximate heap footprint of the automaton:
// the transition table, the state arena and every match list.
func (a *Automaton) HeapBytes() int {
	n := len(a.trans)*int(unsafe.Sizeof(StateID(0))) + len(a.states)*int(unsafe.Sizeof(state{}))
	for i := range a.states {
		n += cap(a.states[i].matches) * int(unsafe.Sizeof(Match{}))
	}
	return n
}

// row returns the transition row of id. Writes go through to the table.
func (a *Automaton) row(id StateID) []StateID {
	off := int(id) * a.stride
	return a.trans[off : off+a.stride]
}

// next returns the raw transition of id on class, which may be FailState
// before flattening.
func (a *Automaton) next(id StateID, class byte) StateID {
	return a.trans[int(id)*a.stride+int(class)]
}
