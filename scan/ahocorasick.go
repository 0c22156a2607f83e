package scan

import "container/list"

// acNode is a node in the Aho-Corasick trie.
type acNode struct {
	root     bool
	output   bool
	patterns []int // indices into the dictionary accepted at this node
	children map[rune]*acNode
	fail     *acNode
	suffix   *acNode // nearest ancestor (via fail) that is itself an output node
}

// Hit is one occurrence reported by a search: which dictionary pattern
// matched and where it ends (the position right after its last rune).
type Hit struct {
	Pattern int
	End     int
}

// Automaton is an Aho-Corasick automaton over a fixed dictionary of
// literal patterns, built once and reused across any number of searches
// (spec 4.H).
type Automaton struct {
	root *acNode
}

// NewBuilder constructs an Automaton over dictionary: a trie is built over
// all patterns, then failure links are computed by breadth-first
// traversal, inheriting outputs along failure edges via each node's
// suffix link.
func NewBuilder(dictionary [][]rune) *Automaton {
	a := &Automaton{root: &acNode{root: true, children: make(map[rune]*acNode)}}
	a.buildTrie(dictionary)
	a.buildFailureLinks()
	return a
}

func (a *Automaton) buildTrie(dictionary [][]rune) {
	for i, pattern := range dictionary {
		n := a.root
		for _, r := range pattern {
			child, ok := n.children[r]
			if !ok {
				child = &acNode{children: make(map[rune]*acNode)}
				n.children[r] = child
			}
			n = child
		}
		n.output = true
		n.patterns = append(n.patterns, i)
	}
}

func (a *Automaton) buildFailureLinks() {
	queue := list.New()
	for _, child := range a.root.children {
		child.fail = a.root
		queue.PushBack(child)
	}

	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(*acNode)
		for r, child := range n.children {
			queue.PushBack(child)

			f := n.fail
			for {
				if next, ok := f.children[r]; ok {
					child.fail = next
					break
				}
				if f.root {
					child.fail = a.root
					break
				}
				f = f.fail
			}

			if child.fail.output {
				child.suffix = child.fail
			} else {
				child.suffix = child.fail.suffix
			}
		}
	}
}

func (a *Automaton) step(n *acNode, r rune) *acNode {
	child, ok := n.children[r]
	for !ok && !n.root {
		n = n.fail
		child, ok = n.children[r]
	}
	if ok {
		return child
	}
	return n
}

// Search returns every hit in text: a (pattern, end-position) pair for
// each dictionary pattern found, including all patterns matching at a
// given position via the suffix chain.
func (a *Automaton) Search(text []rune) []Hit {
	var hits []Hit
	n := a.root
	for i, r := range text {
		n = a.step(n, r)

		if n.output {
			for _, p := range n.patterns {
				hits = append(hits, Hit{Pattern: p, End: i + 1})
			}
		}
		for f := n.suffix; f != nil; f = f.suffix {
			for _, p := range f.patterns {
				hits = append(hits, Hit{Pattern: p, End: i + 1})
			}
		}
	}
	return hits
}

// Contains reports whether any dictionary pattern occurs anywhere in
// text.
func (a *Automaton) Contains(text []rune) bool {
	n := a.root
	for _, r := range text {
		n = a.step(n, r)
		if n.output || n.suffix != nil {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every dictionary pattern occurs somewhere in
// text, in any order.
func (a *Automaton) ContainsAll(text []rune, numPatterns int) bool {
	seen := make([]bool, numPatterns)
	remaining := numPatterns
	if remaining == 0 {
		return true
	}

	n := a.root
	for _, r := range text {
		n = a.step(n, r)

		for _, p := range n.patterns {
			if n.output && !seen[p] {
				seen[p] = true
				remaining--
			}
		}
		for f := n.suffix; f != nil; f = f.suffix {
			for _, p := range f.patterns {
				if !seen[p] {
					seen[p] = true
					remaining--
				}
			}
		}
		if remaining == 0 {
			return true
		}
	}
	return remaining == 0
}

// FindFirst returns the leftmost hit in text - the one with the smallest
// end position, breaking ties by dictionary index - and reports whether
// any hit was found.
func (a *Automaton) FindFirst(text []rune) (Hit, bool) {
	n := a.root
	for i, r := range text {
		n = a.step(n, r)

		best := Hit{End: -1}
		found := false
		consider := func(p int) {
			if !found || p < best.Pattern {
				best = Hit{Pattern: p, End: i + 1}
				found = true
			}
		}
		if n.output {
			for _, p := range n.patterns {
				consider(p)
			}
		}
		for f := n.suffix; f != nil; f = f.suffix {
			for _, p := range f.patterns {
				consider(p)
			}
		}
		if found {
			return best, true
		}
	}
	return Hit{}, false
}
