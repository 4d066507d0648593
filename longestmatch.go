// Package longestmatch finds byte patterns in text with leftmost-longest
// semantics.
//
// Given a fixed set of patterns, every search reports the match that starts
// earliest and, among those starting there, the longest one. Patterns are
// opaque byte sequences: there is no case folding, Unicode awareness or
// pattern syntax.
//
// Basic usage:
//
//	m := longestmatch.MustCompile("he", "she", "hers")
//	loc, ok := m.Find([]byte("ushers"))
//	// ok == true, loc.Start() == 1, loc.End == 4 ("she")
//
//	for _, loc := range m.FindAll([]byte("she sells hers"), -1) {
//	    fmt.Println(loc.Match.PatternID, loc.Start(), loc.End)
//	}
//
// A Matcher is safe for concurrent use by multiple goroutines. Searches hold
// no cursor between calls; to scan a haystack piecewise (for example to check
// for cancellation between chunks), resume with FindAt at the previous End.
package longestmatch

import (
	"fmt"
	"sync/atomic"

	"github.com/coregx/longestmatch/automaton"
	"github.com/coregx/longestmatch/prefilter"
)

// Matcher is a compiled pattern set.
type Matcher struct {
	auto     *automaton.Automaton
	pf       prefilter.Prefilter
	patterns []automaton.Pattern
	config   Config
	stats    Stats
}

// Stats tracks execution statistics for performance analysis.
// Find-family calls and IsMatch update every counter the same way.
type Stats struct {
	// Searches counts searches, one per Find or IsMatch call or FindAll step.
	Searches uint64

	// Matches counts searches that found a match.
	Matches uint64

	// PrefilterSkips counts haystack bytes the prefilter skipped over.
	PrefilterSkips uint64
}

// Compile builds a Matcher from string patterns. Pattern IDs are the
// argument positions.
//
// Example:
//
//	m, err := longestmatch.Compile("error", "warning", "fatal")
func Compile(patterns ...string) (*Matcher, error) {
	set := make([]automaton.Pattern, len(patterns))
	for i, p := range patterns {
		set[i] = automaton.Pattern{ID: i, Value: []byte(p)}
	}
	return NewWithConfig(set, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
//
// Example:
//
//	var keywords = longestmatch.MustCompile("func", "func()", "var")
func MustCompile(patterns ...string) *Matcher {
	m, err := Compile(patterns...)
	if err != nil {
		panic("longestmatch: Compile: " + err.Error())
	}
	return m
}

// New builds a Matcher from patterns with the default configuration.
// Pattern IDs must be unique; this is not checked.
func New(patterns []automaton.Pattern) (*Matcher, error) {
	return NewWithConfig(patterns, DefaultConfig())
}

// NewWithConfig builds a Matcher with a custom configuration.
func NewWithConfig(patterns []automaton.Pattern, config Config) (*Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(patterns) > config.MaxPatterns {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyPatterns, len(patterns), config.MaxPatterns)
	}

	builder := automaton.NewBuilder().SetVerify(config.VerifyInvariants)
	owned := make([]automaton.Pattern, len(patterns))
	for i, p := range patterns {
		value := append([]byte(nil), p.Value...)
		owned[i] = automaton.Pattern{ID: p.ID, Value: value}
		builder.AddPattern(p.ID, value)
	}

	m := &Matcher{
		auto:     builder.Build(),
		patterns: owned,
		config:   config,
	}
	if config.EnablePrefilter {
		m.pf = prefilter.New(m.auto)
	}
	return m, nil
}

// Find returns the leftmost-longest match in b.
func (m *Matcher) Find(b []byte) (automaton.Location, bool) {
	return m.FindAt(b, 0)
}

// FindString is like Find for a string haystack.
func (m *Matcher) FindString(s string) (automaton.Location, bool) {
	return m.Find([]byte(s))
}

// FindAt returns the leftmost-longest match in b starting at or after at.
// Offsets in the result are relative to b. An offset outside [0, len(b)]
// finds nothing.
func (m *Matcher) FindAt(b []byte, at int) (automaton.Location, bool) {
	if at < 0 || at > len(b) {
		return automaton.Location{}, false
	}
	return m.findAt(b, at)
}

func (m *Matcher) findAt(b []byte, at int) (automaton.Location, bool) {
	atomic.AddUint64(&m.stats.Searches, 1)

	if m.pf != nil {
		pos := m.pf.Find(b, at)
		if pos < 0 {
			atomic.AddUint64(&m.stats.PrefilterSkips, uint64(len(b)-at))
			return automaton.Location{}, false
		}
		atomic.AddUint64(&m.stats.PrefilterSkips, uint64(pos-at))
		at = pos
	}

	loc, ok := m.auto.Find(b, at)
	if ok {
		atomic.AddUint64(&m.stats.Matches, 1)
	}
	return loc, ok
}

// FindIndex returns the location of the leftmost-longest match as
// b[loc[0]:loc[1]], or nil if there is none.
func (m *Matcher) FindIndex(b []byte) []int {
	loc, ok := m.Find(b)
	if !ok {
		return nil
	}
	return []int{loc.Start(), loc.End}
}

// FindAll returns successive non-overlapping matches in b.
// If n >= 0, it returns at most n matches; if n < 0, all of them.
//
// Each search resumes where the previous match ended, or one byte later
// after a zero-width match. Searches start only at offsets before len(b).
func (m *Matcher) FindAll(b []byte, n int) []automaton.Location {
	if n == 0 {
		return nil
	}

	var locs []automaton.Location
	for at := 0; at < len(b); {
		loc, ok := m.findAt(b, at)
		if !ok {
			// A failed search already covers the rest of b.
			break
		}
		locs = append(locs, loc)
		if n > 0 && len(locs) == n {
			break
		}
		if loc.End > at {
			at = loc.End
		} else {
			at++
		}
	}
	return locs
}

// FindAllIndex is like FindAll but returns [start, end] pairs.
func (m *Matcher) FindAllIndex(b []byte, n int) [][]int {
	locs := m.FindAll(b, n)
	if locs == nil {
		return nil
	}
	out := make([][]int, len(locs))
	for i, loc := range locs {
		out[i] = []int{loc.Start(), loc.End}
	}
	return out
}

// FindAllString returns the text of successive non-overlapping matches in s.
func (m *Matcher) FindAllString(s string, n int) []string {
	locs := m.FindAll([]byte(s), n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc.Start():loc.End]
	}
	return out
}

// IsMatch reports whether any pattern occurs in b. It stops at the first
// match state instead of extending to the longest match.
func (m *Matcher) IsMatch(b []byte) bool {
	atomic.AddUint64(&m.stats.Searches, 1)

	at := 0
	if m.pf != nil {
		if at = m.pf.Find(b, 0); at < 0 {
			atomic.AddUint64(&m.stats.PrefilterSkips, uint64(len(b)))
			return false
		}
		atomic.AddUint64(&m.stats.PrefilterSkips, uint64(at))
	}

	if !m.auto.IsMatch(b, at) {
		return false
	}
	atomic.AddUint64(&m.stats.Matches, 1)
	return true
}

// IsMatchString is like IsMatch for a string haystack.
func (m *Matcher) IsMatchString(s string) bool {
	return m.IsMatch([]byte(s))
}

// Count returns the number of successive non-overlapping matches in b,
// capped at n when n >= 0.
func (m *Matcher) Count(b []byte, n int) int {
	return len(m.FindAll(b, n))
}

// ReplaceAllLiteral returns a copy of src with every match replaced by repl.
func (m *Matcher) ReplaceAllLiteral(src, repl []byte) []byte {
	return m.ReplaceAllFunc(src, func(automaton.Match, []byte) []byte { return repl })
}

// ReplaceAllLiteralString is like ReplaceAllLiteral for strings.
func (m *Matcher) ReplaceAllLiteralString(src, repl string) string {
	return string(m.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// ReplaceAllFunc returns a copy of src with every match replaced by the
// result of fn, which receives the match and the matched bytes.
//
// Example:
//
//	m := longestmatch.MustCompile("password", "token")
//	redacted := m.ReplaceAllFunc(line, func(_ automaton.Match, text []byte) []byte {
//	    return bytes.Repeat([]byte("*"), len(text))
//	})
func (m *Matcher) ReplaceAllFunc(src []byte, fn func(automaton.Match, []byte) []byte) []byte {
	locs := m.FindAll(src, -1)
	if len(locs) == 0 {
		return append([]byte(nil), src...)
	}

	out := make([]byte, 0, len(src))
	last := 0
	for _, loc := range locs {
		start := loc.Start()
		out = append(out, src[last:start]...)
		out = append(out, fn(loc.Match, src[start:loc.End])...)
		last = loc.End
	}
	return append(out, src[last:]...)
}

// NumPatterns returns the number of patterns in the set.
func (m *Matcher) NumPatterns() int {
	return len(m.patterns)
}

// NumStates returns the number of automaton states, sentinels included.
func (m *Matcher) NumStates() int {
	return m.auto.NumStates()
}

// Patterns returns a copy of the pattern set in insertion order.
func (m *Matcher) Patterns() []automaton.Pattern {
	out := make([]automaton.Pattern, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = automaton.Pattern{ID: p.ID, Value: append([]byte(nil), p.Value...)}
	}
	return out
}

// Config returns the configuration the Matcher was built with.
func (m *Matcher) Config() Config {
	return m.config
}

// HeapBytes returns the approximate heap memory held by the compiled set.
func (m *Matcher) HeapBytes() int {
	n := m.auto.HeapBytes()
	if m.pf != nil {
		n += m.pf.HeapBytes()
	}
	for _, p := range m.patterns {
		n += len(p.Value)
	}
	return n
}

// Stats returns a snapshot of the execution statistics.
func (m *Matcher) Stats() Stats {
	return Stats{
		Searches:       atomic.LoadUint64(&m.stats.Searches),
		Matches:        atomic.LoadUint64(&m.stats.Matches),
		PrefilterSkips: atomic.LoadUint64(&m.stats.PrefilterSkips),
	}
}

// ResetStats resets execution statistics to zero.
func (m *Matcher) ResetStats() {
	atomic.StoreUint64(&m.stats.Searches, 0)
	atomic.StoreUint64(&m.stats.Matches, 0)
	atomic.StoreUint64(&m.stats.PrefilterSkips, 0)
}
