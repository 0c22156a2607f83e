package lazy

import (
	"strconv"
	"strings"

	"github.com/coregx/rescan/nfa"
)

// Cache stores lazily-discovered DFA states keyed by their canonical NFA
// subset. It is the only mutable object owned by a DFA (spec 5): safe to
// reuse across any number of scans with the same NFA, but not shared
// across goroutines - each thread that wants parallelism should clone the
// DFA's immutable NFA and build its own Cache (spec 4.G, 5).
type Cache struct {
	config Config
	states []*State
	byKey  map[string]StateID

	// clears counts how many times a bounded cache has been reset after
	// filling up, for diagnostics; unbounded caches never increment it.
	// It also serves as the cache's generation number: a *State created
	// before the most recent clear carries a stale generation and its
	// memoized trans entries (StateIDs from the old, discarded index
	// space) must not be trusted - see DFA.next.
	clears int
}

// NewCache returns an empty cache. It is populated lazily as the DFA scans
// input; state 0 is created on first use as the epsilon-closure of the
// NFA's start state (see DFA.start).
func NewCache(config Config) *Cache {
	return &Cache{
		config: config,
		byKey:  make(map[string]StateID),
	}
}

// key canonicalizes a sorted NFA state-ID subset into a cache lookup key.
func key(subset []nfa.StateID) string {
	var b strings.Builder
	for i, id := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

// getOrCreate returns the cached state for subset, creating and
// registering one if this is the first time the subset has been seen.
// subset must already be epsilon-closed and canonically sorted (see
// nfa.Closure); the cache does not sort or close on its own.
func (c *Cache) getOrCreate(subset []nfa.StateID, accept bool) (*State, error) {
	k := key(subset)
	if id, ok := c.byKey[k]; ok {
		return c.states[id], nil
	}

	if c.config.Bounded() && uint32(len(c.states)) >= c.config.MaxStates {
		return nil, ErrCacheFull
	}

	id := StateID(len(c.states))
	st := newState(id, c.clears, subset, accept)
	c.states = append(c.states, st)
	c.byKey[k] = id
	return st, nil
}

// Generation returns the cache's current generation, bumped by every call
// to clear. A *State is only safe to index d.cache.states[id] through if
// its own generation matches the cache's current one.
func (c *Cache) Generation() int { return c.clears }

// clear drops every cached state, keeping allocated backing storage where
// convenient. Used by the bounded-cache fallback path: "clear and
// continue" before recomputing (spec 4.G's bounded variant).
func (c *Cache) clear() {
	c.states = c.states[:0]
	for k := range c.byKey {
		delete(c.byKey, k)
	}
	c.clears++
}

// NumStates returns how many states are currently cached.
func (c *Cache) NumStates() int { return len(c.states) }

// Clears returns how many times a bounded cache has been reset.
func (c *Cache) Clears() int { return c.clears }
