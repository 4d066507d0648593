package automaton

// Find returns the leftmost-longest match in haystack[at:], reporting offsets
// relative to the whole haystack.
//
// Among all matches starting at the smallest offset >= at, the longest one is
// returned; between identical patterns the one added first wins. The boolean
// is false when nothing matches. Find holds no cursor: to enumerate
// successive non-overlapping matches, call it again at the previous End (or
// End+1 after a zero-width match).
//
// at must be in [0, len(haystack)]; any other offset finds nothing.
func (a *Automaton) Find(haystack []byte, at int) (Location, bool) {
	if at < 0 || at > len(haystack) {
		return Location{}, false
	}

	var last Location
	found := false
	if st := &a.states[StartState]; st.hasMatch() {
		last, found = Location{Match: st.matches[0], End: at}, true
	}

	id := StartState
	for at < len(haystack) {
		id = a.nextState(id, haystack[at])
		at++
		if id == DeadState {
			return last, found
		}
		if st := &a.states[id]; st.hasMatch() {
			last, found = Location{Match: st.matches[0], End: at}, true
		}
	}
	return last, found
}

// IsMatch reports whether any pattern occurs in haystack[at:]. Unlike Find it
// stops at the first match state instead of extending to the longest match.
func (a *Automaton) IsMatch(haystack []byte, at int) bool {
	if at < 0 || at > len(haystack) {
		return false
	}
	if a.StartHasMatch() {
		return true
	}
	id := StartState
	for ; at < len(haystack); at++ {
		id = a.nextState(id, haystack[at])
		if id == DeadState {
			return false
		}
		if a.states[id].hasMatch() {
			return true
		}
	}
	return false
}

// nextState returns the transition of id on b, following fail links while
// the transition is undefined. After flattening the first lookup always
// succeeds; the walk terminates regardless because START and DEAD rows are
// total.
func (a *Automaton) nextState(id StateID, b byte) StateID {
	class := a.classes.Get(b)
	for {
		if next := a.next(id, class); next != FailState {
			return next
		}
		id = a.states[id].fail
	}
}
