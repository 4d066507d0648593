package automaton

import (
	"github.com/coregx/longestmatch/internal/conv"
	"github.com/coregx/longestmatch/internal/sparse"
)

// Verify checks the structural invariants of a built automaton:
//
//   - no transition of a reachable state targets FailState;
//   - DeadState transitions to itself on every byte;
//   - StartState's non-pattern transitions target StartState, or DeadState
//     when StartState carries a match;
//   - no pattern state fails to itself, to FailState, or to a deeper state;
//   - no pattern state carrying a match fails to StartState;
//   - every state's first match is its longest.
//
// It returns a *BuildError wrapping ErrInvariant for the first violation.
func (a *Automaton) Verify() error {
	if len(a.states) < 3 {
		return &BuildError{Message: "missing sentinel states", State: FailState}
	}

	for _, next := range a.row(DeadState) {
		if next != DeadState {
			return &BuildError{Message: "dead state is not absorbing", State: DeadState}
		}
	}

	loop := StartState
	if a.StartHasMatch() {
		loop = DeadState
	}
	for _, next := range a.row(StartState) {
		if next == FailState || next == StartState && loop == DeadState || next == DeadState && loop == StartState {
			return &BuildError{Message: "start state has a misencoded self-loop", State: StartState}
		}
	}

	seen := sparse.NewSparseSet(conv.IntToUint32(len(a.states)))
	seen.Insert(uint32(StartState))
	for i := 0; i < seen.Len(); i++ {
		id := StateID(seen.At(i))
		if err := a.verifyState(id); err != nil {
			return err
		}
		for _, next := range a.row(id) {
			if next == FailState {
				return &BuildError{Message: "transition resolves to the fail sentinel", State: id}
			}
			if int(next) >= len(a.states) {
				return &BuildError{Message: "transition out of range", State: id}
			}
			seen.Insert(uint32(next))
		}
	}
	return nil
}

// verifyState checks the per-state invariants of id.
func (a *Automaton) verifyState(id StateID) error {
	st := &a.states[id]
	for _, m := range st.matches[min(1, len(st.matches)):] {
		if m.PatternLen > st.matches[0].PatternLen {
			return &BuildError{Message: "first match is not the longest", State: id}
		}
	}

	if id <= StartState {
		return nil
	}
	switch {
	case st.fail == id:
		return &BuildError{Message: "state fails to itself", State: id}
	case st.fail == FailState:
		return &BuildError{Message: "fail link is the fail sentinel", State: id}
	case st.fail == StartState && st.hasMatch():
		return &BuildError{Message: "match state fails to start", State: id}
	case st.fail != DeadState && a.states[st.fail].depth >= st.depth:
		return &BuildError{Message: "fail link does not point to a shallower state", State: id}
	}
	return nil
}
