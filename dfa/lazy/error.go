package lazy

import "errors"

// ErrCacheFull is returned by Cache.getOrCreate when a bounded cache (see
// Config.MaxStates) has reached capacity. DFA.next recovers from this by
// clearing the cache and creating the requested state in the emptied
// cache; the transition is then not memoized on the source state, which
// predates the clear.
var ErrCacheFull = errors.New("lazy: state cache full")
