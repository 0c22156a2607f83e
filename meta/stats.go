package meta

import "github.com/coregx/rescan/selector"

// Stats tracks per-Engine execution counters, mirroring the teacher's own
// Stats/ResetStats convention for a compiled matcher.
type Stats struct {
	// Searches counts calls to Match, FindAll, and per-line SearchStream
	// matching, broken down by backend kind.
	NFASearches         uint64
	DFASearches         uint64
	LazyDFASearches     uint64
	LiteralSearches     uint64
	AhoCorasickSearches uint64

	// PrefilterPasses counts lines the prefilter let through to the
	// matcher; PrefilterRejects counts lines it rejected outright.
	PrefilterPasses  uint64
	PrefilterRejects uint64

	// InvariantErrors counts InternalInvariantError occurrences reported
	// during matching, whether or not a DiagnosticsSink was installed.
	InvariantErrors uint64
}

func (s *Stats) recordSearch(kind selector.Kind) {
	switch kind {
	case selector.KindNFA:
		s.NFASearches++
	case selector.KindMinDFA:
		s.DFASearches++
	case selector.KindLazyDFA:
		s.LazyDFASearches++
	case selector.KindLiteralKMP, selector.KindLiteralBM:
		s.LiteralSearches++
	case selector.KindAhoCorasick:
		s.AhoCorasickSearches++
	}
}

func (s *Stats) recordPrefilter(passed bool) {
	if passed {
		s.PrefilterPasses++
	} else {
		s.PrefilterRejects++
	}
}
