package automaton

import "github.com/coregx/longestmatch/internal/conv"

// buildTrie allocates the three sentinels and then one state per distinct
// pattern prefix. Each pattern's match is recorded at the state its last
// byte leads to; an empty pattern records its match on StartState.
func (a *Automaton) buildTrie(patterns []Pattern) {
	for i := 0; i < 3; i++ {
		a.addState(0)
	}

	for _, p := range patterns {
		cur := StartState
		for i, b := range p.Value {
			class := a.classes.Get(b)
			next := a.next(cur, class)
			if next == FailState {
				next = a.addState(i + 1)
				a.row(cur)[class] = next
			}
			cur = next
		}
		a.states[cur].matches = append(a.states[cur].matches, Match{
			PatternID:  p.ID,
			PatternLen: len(p.Value),
		})
	}
}

// addState appends a state with an all-FAIL row. Its fail link defaults to
// StartState until encodeFailure resolves it.
func (a *Automaton) addState(depth int) StateID {
	id := StateID(conv.IntToUint32(len(a.states)))
	a.states = append(a.states, state{fail: StartState, depth: depth})
	a.trans = append(a.trans, make([]StateID, a.stride)...)
	return id
}

// encodeStartToStart turns every undefined START transition into a self-loop.
func (a *Automaton) encodeStartToStart() {
	row := a.row(StartState)
	for c := range row {
		if row[c] == FailState {
			row[c] = StartState
		}
	}
}

// encodeDeadToDead makes DEAD absorbing.
func (a *Automaton) encodeDeadToDead() {
	row := a.row(DeadState)
	for c := range row {
		if row[c] == FailState {
			row[c] = DeadState
		}
	}
}

// encodeStartToDead redirects START's self-loops to DEAD. It only runs when
// START carries a match: a match at the root would otherwise be reported
// again at every following offset, so the search stops right after it.
func (a *Automaton) encodeStartToDead() {
	row := a.row(StartState)
	for c := range row {
		if row[c] == StartState {
			row[c] = DeadState
		}
	}
}
