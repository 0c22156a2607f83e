package scan

// BoyerMoore is a Boyer-Moore scanner for a single literal pattern,
// combining a bad-character table with a good-suffix shift table over the
// observed alphabet (spec 4.H).
type BoyerMoore struct {
	pattern    []rune
	badChar    map[rune]int
	goodSuffix []int
}

// NewBoyerMoore precomputes both shift tables for pattern.
func NewBoyerMoore(pattern []rune) *BoyerMoore {
	bm := &BoyerMoore{pattern: pattern}
	bm.buildBadCharTable()
	bm.buildGoodSuffixTable()
	return bm
}

// buildBadCharTable records, for each rune appearing in the pattern, the
// offset of its last occurrence. Runes absent from the pattern are simply
// absent from the map; a miss falls back to a full-pattern-length shift.
func (bm *BoyerMoore) buildBadCharTable() {
	bm.badChar = make(map[rune]int, len(bm.pattern))
	for i, r := range bm.pattern {
		bm.badChar[r] = i
	}
}

// buildGoodSuffixTable computes, for each position in the pattern, how far
// the pattern can shift after a mismatch given the matched suffix, via the
// standard suffix-length construction.
func (bm *BoyerMoore) buildGoodSuffixTable() {
	m := len(bm.pattern)
	bm.goodSuffix = make([]int, m)
	if m == 0 {
		return
	}

	suffixLen := make([]int, m)
	suffixLen[m-1] = m
	g := m - 1
	f := 0
	for i := m - 2; i >= 0; i-- {
		if i > g && suffixLen[i+m-1-f] < i-g {
			suffixLen[i] = suffixLen[i+m-1-f]
		} else {
			if i < g {
				g = i
			}
			f = i
			for g >= 0 && bm.pattern[g] == bm.pattern[g+m-1-f] {
				g--
			}
			suffixLen[i] = f - g
		}
	}

	for i := range bm.goodSuffix {
		bm.goodSuffix[i] = m
	}
	j := 0
	for i := m - 1; i >= 0; i-- {
		if suffixLen[i] == i+1 {
			for ; j < m-1-i; j++ {
				if bm.goodSuffix[j] == m {
					bm.goodSuffix[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i <= m-2; i++ {
		bm.goodSuffix[m-1-suffixLen[i]] = m - 1 - i
	}
}

func (bm *BoyerMoore) shift(badCharOffset, mismatchPos int) int {
	m := len(bm.pattern)
	badShift := mismatchPos - badCharOffset
	goodShift := bm.goodSuffix[mismatchPos]
	shift := badShift
	if goodShift > shift {
		shift = goodShift
	}
	if shift < 1 {
		shift = 1
	}
	if shift > m {
		shift = m
	}
	return shift
}

// Search returns the start offsets of every non-overlapping occurrence of
// the pattern in text, scanning left to right and comparing right to left.
// After a hit the scanner advances by the full pattern length, so matches
// never overlap (documented behavior, spec 4.H).
func (bm *BoyerMoore) Search(text []rune) []int {
	m := len(bm.pattern)
	if m == 0 {
		return nil
	}
	var hits []int
	n := len(text)
	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && bm.pattern[j] == text[i+j] {
			j--
		}
		if j < 0 {
			hits = append(hits, i)
			i += m
			continue
		}

		badOffset, ok := bm.badChar[text[i+j]]
		if !ok {
			badOffset = -1
		}
		i += bm.shift(badOffset, j)
	}
	return hits
}

// Contains reports whether the pattern occurs anywhere in text, stopping
// at the first match.
func (bm *BoyerMoore) Contains(text []rune) bool {
	m := len(bm.pattern)
	if m == 0 {
		return true
	}
	n := len(text)
	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && bm.pattern[j] == text[i+j] {
			j--
		}
		if j < 0 {
			return true
		}
		badOffset, ok := bm.badChar[text[i+j]]
		if !ok {
			badOffset = -1
		}
		i += bm.shift(badOffset, j)
	}
	return false
}
