package automaton

import (
	"github.com/coregx/longestmatch/internal/conv"
	"github.com/coregx/longestmatch/internal/sparse"
)

// position is a BFS work item.
type position struct {
	id StateID
	// matchDepth is the 1-based depth, along the trie path to id, at which
	// the earliest known match starts; noMatchDepth if none is known.
	matchDepth int
}

// encodeFailure computes fail links and propagates matches breadth-first.
//
// Standard Aho-Corasick falls back to the longest proper suffix that is a
// trie prefix. Under leftmost-longest semantics that fallback is refused
// whenever it would discard the start of a match already recorded on the
// current path: the state fails to DEAD instead, so the search halts and
// reports that match rather than drifting to a later-starting one.
func (a *Automaton) encodeFailure() {
	startDepth := noMatchDepth
	if a.states[StartState].hasMatch() {
		startDepth = 0
	}

	var queue []position
	for _, next := range a.row(StartState) {
		if next == StartState {
			continue
		}
		queue = append(queue, position{id: next, matchDepth: startDepth})
		// A match one byte past the root must never fall back to START, and
		// neither may any child once START itself has matched: restarting
		// would let a later-starting match replace the empty match at the
		// search offset.
		if a.states[next].hasMatch() || startDepth != noMatchDepth {
			a.states[next].fail = DeadState
		}
	}

	for head := 0; head < len(queue); head++ {
		pos := queue[head]
		enqueued := len(queue)

		for class := 0; class < a.stride; class++ {
			next := a.next(pos.id, byte(class))
			if next == FailState {
				continue
			}
			ns := &a.states[next]

			matchDepth := pos.matchDepth
			if matchDepth == noMatchDepth && ns.hasMatch() {
				matchDepth = ns.depth - ns.longestMatchLen() + 1
			}
			queue = append(queue, position{id: next, matchDepth: matchDepth})

			fail := a.failTarget(pos.id, byte(class))
			if matchDepth != noMatchDepth && ns.depth-matchDepth+1 > a.states[fail].depth {
				// Falling back would lose the match start; nothing reachable
				// from here can beat the match already on this path.
				ns.fail = DeadState
				continue
			}
			ns.fail = fail
			ns.matches = append(ns.matches, a.states[fail].matches...)
		}

		// A match state with no children must not restart the search.
		if len(queue) == enqueued && a.states[pos.id].hasMatch() {
			a.states[pos.id].fail = DeadState
		}
	}
}

// failTarget walks parent's failure chain to the first state with a defined
// transition on class and returns that transition. START and DEAD have total
// rows, so the walk always ends.
func (a *Automaton) failTarget(parent StateID, class byte) StateID {
	id := a.states[parent].fail
	for a.next(id, class) == FailState {
		id = a.states[id].fail
	}
	return a.next(id, class)
}

// flatten replaces each FAIL entry with the state the failure chain resolves
// it to, turning the table into a complete DFA. States are visited in trie
// breadth-first order; a fail link always points to a shallower state (or a
// sentinel), so its row is already complete when it is copied from.
func (a *Automaton) flatten() {
	for _, v := range a.trieOrder().Values() {
		id := StateID(v)
		if id == StartState {
			continue
		}
		row := a.row(id)
		fail := a.row(a.states[id].fail)
		for c := range row {
			if row[c] == FailState {
				row[c] = fail[c]
			}
		}
	}
}

// trieOrder returns the states reachable from START through trie edges, in
// breadth-first order. It must run before flatten, while FAIL still marks
// every non-trie entry.
func (a *Automaton) trieOrder() *sparse.SparseSet {
	order := sparse.NewSparseSet(conv.IntToUint32(len(a.states)))
	order.Insert(uint32(StartState))
	for i := 0; i < order.Len(); i++ {
		id := StateID(order.At(i))
		for _, next := range a.row(id) {
			if next > StartState {
				order.Insert(uint32(next))
			}
		}
	}
	return order
}
