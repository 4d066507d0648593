package automaton

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stateShape struct {
	ID      StateID
	Depth   int
	Fail    StateID
	Matches []Match
}

func shapes(a *Automaton) []stateShape {
	var out []stateShape
	for id := StartState + 1; int(id) < a.NumStates(); id++ {
		st := a.states[id]
		out = append(out, stateShape{ID: id, Depth: st.depth, Fail: st.fail, Matches: st.matches})
	}
	return out
}

func TestEncodeFailure_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []stateShape
	}{
		{
			name:     "prefix pair fails to dead",
			patterns: []string{"a", "ab"},
			want: []stateShape{
				{3, 1, DeadState, []Match{{0, 1}}},
				{4, 2, DeadState, []Match{{1, 2}}},
			},
		},
		{
			name:     "suffix match is propagated",
			patterns: []string{"abcd", "bc"},
			want: []stateShape{
				{3, 1, StartState, nil},
				{4, 2, 7, nil},
				{5, 3, 8, []Match{{1, 2}}},
				{6, 4, DeadState, []Match{{0, 4}}},
				{7, 1, StartState, nil},
				{8, 2, DeadState, []Match{{1, 2}}},
			},
		},
		{
			name:     "he she hers",
			patterns: []string{"he", "she", "hers"},
			want: []stateShape{
				{3, 1, StartState, nil},
				{4, 2, DeadState, []Match{{0, 2}}},
				{5, 1, StartState, nil},
				{6, 2, 3, nil},
				{7, 3, DeadState, []Match{{1, 3}}},
				{8, 3, DeadState, nil},
				{9, 4, DeadState, []Match{{2, 4}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(patternsOf(tt.patterns...))
			if diff := cmp.Diff(tt.want, shapes(a)); diff != "" {
				t.Errorf("state shapes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeFailure_DuplicateContent(t *testing.T) {
	a := New([]Pattern{
		{ID: 10, Value: []byte("ab")},
		{ID: 20, Value: []byte("ab")},
	})
	got := a.states[4].matches
	want := []Match{{10, 2}, {20, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("matches at shared state (-want +got):\n%s", diff)
	}
}

func TestEncodeStart(t *testing.T) {
	a := New(patternsOf("x"))
	xClass := a.classes.Get('x')
	for c, next := range a.row(StartState) {
		switch {
		case byte(c) == xClass && next != 3:
			t.Errorf("start transition on 'x' = %d, want 3", next)
		case byte(c) != xClass && next != StartState:
			t.Errorf("start transition on class %d = %d, want start", c, next)
		}
	}

	withEmpty := New(patternsOf("", "x"))
	for c, next := range withEmpty.row(StartState) {
		if byte(c) != withEmpty.classes.Get('x') && next != DeadState {
			t.Errorf("start transition on class %d = %d, want dead", c, next)
		}
	}
}

// TestFlatten_NoFailEntries checks every row except the FAIL sentinel's own,
// which is never part of a search.
func TestFlatten_NoFailEntries(t *testing.T) {
	a := New(patternsOf("abcd", "bcx", "cd", "d"))
	for i := int(DeadState) * a.stride; i < len(a.trans); i++ {
		if a.trans[i] == FailState {
			t.Fatalf("transition %d (state %d) still targets the fail sentinel", i, i/a.stride)
		}
	}
}

// TestFlatten_MatchesFailureWalk rebuilds the same automaton without
// flattening and checks that walking fail links gives the same transitions.
func TestFlatten_MatchesFailureWalk(t *testing.T) {
	patterns := patternsOf("abcd", "bcx", "cd", "d", "xbc")
	flat := New(patterns)

	b := NewBuilder().AddPatterns(patterns...)
	raw := &Automaton{classes: b.classes.ByteClasses()}
	raw.stride = raw.classes.AlphabetLen()
	raw.buildTrie(b.patterns)
	raw.encodeStartToStart()
	raw.encodeDeadToDead()
	raw.encodeFailure()

	for id := StateID(1); int(id) < flat.NumStates(); id++ {
		for bt := 0; bt < 256; bt++ {
			if got, want := flat.nextState(id, byte(bt)), raw.nextState(id, byte(bt)); got != want {
				t.Fatalf("state %d byte %q: flattened %d, walked %d", id, byte(bt), got, want)
			}
		}
	}
}

func TestVerify_Valid(t *testing.T) {
	sets := [][]string{
		nil,
		{""},
		{"", "a", "ab"},
		{"a", "ab", "abc", "b", "bc", "c"},
		{"he", "she", "his", "hers"},
		{"aaaa", "aa", "a", "aaa"},
	}
	for _, set := range sets {
		a := NewBuilder().SetVerify(false).AddPatterns(patternsOf(set...)...).Build()
		if err := a.Verify(); err != nil {
			t.Errorf("Verify(%q) = %v", set, err)
		}
	}
}

func TestVerify_DetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(a *Automaton)
		state   StateID
	}{
		{"fail sentinel transition", func(a *Automaton) { a.row(3)[0] = FailState }, 3},
		{"dead not absorbing", func(a *Automaton) { a.row(DeadState)[0] = StartState }, DeadState},
		{"start loop to dead", func(a *Automaton) {
			row := a.row(StartState)
			for c := range row {
				if row[c] == StartState {
					row[c] = DeadState
					return
				}
			}
		}, StartState},
		{"self fail", func(a *Automaton) { a.states[3].fail = 3 }, 3},
		{"match fails to start", func(a *Automaton) { a.states[4].fail = StartState }, 4},
		{"deeper fail", func(a *Automaton) { a.states[3].fail = 4 }, 3},
		{"match order", func(a *Automaton) {
			a.states[4].matches = []Match{{0, 1}, {1, 2}}
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(patternsOf("a", "ab"))
			tt.corrupt(a)
			err := a.Verify()
			if !errors.Is(err, ErrInvariant) {
				t.Fatalf("Verify() = %v, want ErrInvariant", err)
			}
			var be *BuildError
			if !errors.As(err, &be) || be.State != tt.state {
				t.Errorf("Verify() = %v, want a BuildError at state %d", err, tt.state)
			}
		})
	}
}

func TestBuildError_Message(t *testing.T) {
	err := &BuildError{Message: "state fails to itself", State: 7}
	if got, want := err.Error(), "automaton build error at state 7: state fails to itself"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
