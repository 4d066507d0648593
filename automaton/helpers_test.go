package automaton

// patternsOf numbers values by position, the way most tests build sets.
func patternsOf(values ...string) []Pattern {
	patterns := make([]Pattern, len(values))
	for i, v := range values {
		patterns[i] = Pattern{ID: i, Value: []byte(v)}
	}
	return patterns
}

// findAll enumerates successive non-overlapping matches from at, resuming at
// each match end (one past it for zero-width matches).
func findAll(a *Automaton, haystack []byte, at int) []Location {
	var locs []Location
	for at < len(haystack) {
		loc, ok := a.Find(haystack, at)
		if !ok {
			break
		}
		if loc.End == at {
			at++
		} else {
			at = loc.End
		}
		locs = append(locs, loc)
	}
	return locs
}

// bruteFind is the reference leftmost-longest scanner: for each start offset
// from at upward, the longest pattern occurring there wins, ties going to the
// pattern listed first. It runs in O(len(patterns) * len(haystack)^2).
func bruteFind(patterns []Pattern, haystack []byte, at int) (Location, bool) {
	for start := at; start <= len(haystack); start++ {
		best := -1
		for i, p := range patterns {
			end := start + len(p.Value)
			if end > len(haystack) || string(haystack[start:end]) != string(p.Value) {
				continue
			}
			if best < 0 || len(p.Value) > len(patterns[best].Value) {
				best = i
			}
		}
		if best >= 0 {
			p := patterns[best]
			return Location{
				Match: Match{PatternID: p.ID, PatternLen: len(p.Value)},
				End:   start + len(p.Value),
			}, true
		}
	}
	return Location{}, false
}

func loc(id, length, end int) Location {
	return Location{Match: Match{PatternID: id, PatternLen: length}, End: end}
}
