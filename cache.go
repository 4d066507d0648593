package longestmatch

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/coregx/longestmatch/automaton"
)

// Cache memoizes compiled Matchers by pattern set and configuration.
//
// Compiling a large pattern set costs far more than searching with it, so
// callers that rebuild the same sets (per-tenant filters reloaded from
// configuration, for example) can share one Cache. The zero value is not
// usable; create caches with NewCache. A Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64][]*Matcher
	size    int
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64][]*Matcher)}
}

// Get returns the Matcher compiled from patterns and config, compiling it on
// first use. Pattern order and IDs are part of the key.
func (c *Cache) Get(patterns []automaton.Pattern, config Config) (*Matcher, error) {
	key := Fingerprint(patterns, config)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.entries[key] {
		if m.config == config && samePatterns(m.patterns, patterns) {
			return m, nil
		}
	}

	m, err := NewWithConfig(patterns, config)
	if err != nil {
		return nil, err
	}
	c.entries[key] = append(c.entries[key], m)
	c.size++
	return m, nil
}

// Len returns the number of cached Matchers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Purge drops every cached Matcher. Matchers already handed out stay valid.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64][]*Matcher)
	c.size = 0
}

// Fingerprint returns a 64-bit hash of an ordered pattern set and config.
// Equal inputs always hash equally; distinct inputs may collide.
func Fingerprint(patterns []automaton.Pattern, config Config) uint64 {
	d := xxhash.New()

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}

	var flags int
	if config.EnablePrefilter {
		flags |= 1
	}
	if config.VerifyInvariants {
		flags |= 2
	}
	writeInt(flags)
	writeInt(config.MaxPatterns)
	writeInt(len(patterns))
	for _, p := range patterns {
		// Length prefix keeps {"ab","c"} and {"a","bc"} apart.
		writeInt(p.ID)
		writeInt(len(p.Value))
		_, _ = d.Write(p.Value)
	}
	return d.Sum64()
}

func samePatterns(a, b []automaton.Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || !bytes.Equal(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}
