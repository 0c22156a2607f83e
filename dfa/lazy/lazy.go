package lazy

import "github.com/coregx/rescan/nfa"

// Match is an alias for nfa.Match so every matcher in the engine shares one
// result type.
type Match = nfa.Match

// DFA is a lazy (on-the-fly) DFA: it shares spec 4.D's subset-construction
// rule (including the ANYCHAR-subsumption fix) but only ever computes the
// transitions a given scan actually visits, memoizing them in a Cache.
//
// Not safe for concurrent use: the Cache is mutated during scanning. The
// underlying NFA is immutable and may be shared; give each goroutine that
// wants to scan in parallel its own DFA (and therefore its own Cache) over
// the same NFA (spec 5).
type DFA struct {
	nfa   *nfa.NFA
	cache *Cache
}

// New returns a lazy DFA over n with the given cache configuration.
func New(n *nfa.NFA, config Config) *DFA {
	return &DFA{nfa: n, cache: NewCache(config)}
}

// start returns the (possibly newly-created) start state, state 0, the
// epsilon-closure of the NFA's start state.
func (d *DFA) start() *State {
	subset := nfa.Closure(d.nfa, []nfa.StateID{d.nfa.Start})
	accept := containsAccept(d.nfa, subset)
	// The start subset is always inserted first and with an unbounded or
	// freshly-cleared cache can never return ErrCacheFull.
	st, err := d.cache.getOrCreate(subset, accept)
	if err != nil {
		d.cache.clear()
		st, _ = d.cache.getOrCreate(subset, accept)
	}
	return st
}

func containsAccept(n *nfa.NFA, subset []nfa.StateID) bool {
	for _, id := range subset {
		if n.Accepts(id) {
			return true
		}
	}
	return false
}

// next returns the target state for (state, c), computing and memoizing
// it on demand if it has not been visited before. This is exactly spec
// 4.D step 2's Move computation (char targets folded with any targets,
// then epsilon-closed), applied to one stored subset instead of the whole
// NFA's reachable set.
func (d *DFA) next(state *State, c rune) (*State, bool) {
	fresh := state.generation == d.cache.Generation()
	if fresh {
		if id, ok := state.Transition(c); ok {
			if id == InvalidState {
				return nil, false
			}
			return d.cache.states[id], true
		}
	}
	// state was created before the cache's most recent clear: its trans
	// map holds StateIDs indexing the old, discarded state slice, so those
	// entries (and state.id itself) can't be trusted. Recompute the
	// transition from its NFA subset, which remains valid, and skip
	// memoizing into this stale object.

	raw := nfa.CharTargets(d.nfa, state.nfaStates, c)
	raw = append(raw, nfa.AnyTargets(d.nfa, state.nfaStates)...)
	if len(raw) == 0 {
		if fresh {
			state.trans[c] = InvalidState
		}
		return nil, false
	}

	subset := nfa.Closure(d.nfa, raw)
	accept := containsAccept(d.nfa, subset)

	target, err := d.cache.getOrCreate(subset, accept)
	if err == ErrCacheFull {
		d.cache.clear()
		// The clear invalidates fresh too; skip re-memoizing below.
		fresh = false
		target, err = d.cache.getOrCreate(subset, accept)
	}
	if err != nil {
		// Unbounded cache, or a bounded one that still can't fit a single
		// fresh state right after a clear: defensively report no
		// transition rather than propagate - this can only happen with a
		// pathologically small MaxStates.
		return nil, false
	}

	if fresh {
		state.trans[c] = target.ID()
	}
	return target, true
}

// Cache exposes the DFA's state cache for inspection (NumStates, Clears).
func (d *DFA) Cache() *Cache { return d.cache }
