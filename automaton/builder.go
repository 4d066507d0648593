package automaton

// Builder accumulates patterns and compiles them into an Automaton.
//
// Example:
//
//	b := automaton.NewBuilder()
//	b.AddPattern(0, []byte("he"))
//	b.AddPattern(1, []byte("hers"))
//	a := b.Build()
type Builder struct {
	patterns []Pattern
	classes  ByteClassSet
	verify   bool
}

// NewBuilder creates a Builder with invariant verification enabled.
func NewBuilder() *Builder {
	return &Builder{verify: true}
}

// AddPattern appends a pattern. The value is copied, so the caller may reuse
// its buffer. Insertion order decides which of two identical patterns is
// reported.
func (b *Builder) AddPattern(id int, value []byte) *Builder {
	v := make([]byte, len(value))
	copy(v, value)
	b.patterns = append(b.patterns, Pattern{ID: id, Value: v})
	b.classes.SetBytes(v)
	return b
}

// AddPatterns appends each pattern in order.
func (b *Builder) AddPatterns(patterns ...Pattern) *Builder {
	for _, p := range patterns {
		b.AddPattern(p.ID, p.Value)
	}
	return b
}

// SetVerify toggles the post-construction invariant check. When enabled,
// Build panics with a *BuildError if the automaton is malformed.
func (b *Builder) SetVerify(verify bool) *Builder {
	b.verify = verify
	return b
}

// PatternCount returns the number of patterns added so far.
func (b *Builder) PatternCount() int {
	return len(b.patterns)
}

// Build compiles the accumulated patterns. The builder may be reused; later
// additions do not affect automata already built.
func (b *Builder) Build() *Automaton {
	classes := b.classes.ByteClasses()
	a := &Automaton{
		classes:     classes,
		stride:      classes.AlphabetLen(),
		numPatterns: len(b.patterns),
	}

	a.buildTrie(b.patterns)
	a.encodeStartToStart()
	a.encodeDeadToDead()
	a.encodeFailure()
	if a.StartHasMatch() {
		a.encodeStartToDead()
	}
	a.flatten()

	if b.verify {
		if err := a.Verify(); err != nil {
			panic(err)
		}
	}
	return a
}

// New builds an automaton from patterns with verification enabled.
func New(patterns []Pattern) *Automaton {
	return NewBuilder().AddPatterns(patterns...).Build()
}
