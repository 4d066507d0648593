package automaton

import (
	"math/rand"
	"testing"

	"github.com/coregx/ahocorasick"
)

// TestOracle_CoregxAhoCorasick cross-checks against an independent
// Aho-Corasick implementation. Its match kind differs (leftmost-first), so
// only properties shared by both leftmost semantics are compared: whether a
// match exists and where the leftmost match starts.
func TestOracle_CoregxAhoCorasick(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 500; iter++ {
		patterns := randomPatterns(rng, "abcde", 1+rng.Intn(12), 1, 6)
		haystack := randomBytes(rng, "abcdef", rng.Intn(64))

		ours := New(patterns)
		builder := ahocorasick.NewBuilder()
		for _, p := range patterns {
			builder.AddPattern(p.Value)
		}
		theirs, err := builder.Build()
		if err != nil {
			t.Fatalf("ahocorasick build: %v", err)
		}

		for at := 0; at < len(haystack); at++ {
			loc, ok := ours.Find(haystack, at)
			m := theirs.Find(haystack, at)
			if ok != (m != nil) {
				t.Fatalf("patterns %q, haystack %q, at %d: found=%v, oracle found=%v",
					values(patterns), haystack, at, ok, m != nil)
			}
			if ok && loc.Start() != m.Start {
				t.Fatalf("patterns %q, haystack %q, at %d: start %d, oracle start %d",
					values(patterns), haystack, at, loc.Start(), m.Start)
			}
		}
		if got, want := ours.IsMatch(haystack, 0), theirs.IsMatch(haystack); got != want {
			t.Fatalf("patterns %q, haystack %q: IsMatch %v, oracle %v", values(patterns), haystack, got, want)
		}
	}
}
