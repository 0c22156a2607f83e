package nfa

import "github.com/coregx/rescan/ast"

// MaxDepth bounds the recursion depth the Builder will walk. Patterns
// nested deeper than this are rejected rather than risking a stack
// overflow on pathological input; ordinary patterns never come close.
const MaxDepth = 1000

// frag is a partially-built fragment of the automaton: start is its entry
// state, end is a dangling state allocated by the fragment's constructor
// and left unfinalized (Kind == KindInvalid) for the enclosing combinator
// (Concat/Alt/Star, or the top-level Build call) to patch.
type frag struct {
	start, end StateID
}

// Builder performs Thompson construction over an ast.Node, allocating
// states from a monotonic counter as described in spec 4.B.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build compiles n into an NFA. It is the only exported entry point; a
// fresh Builder should be used per call (Build is not reentrant-safe for
// concurrent use on the same Builder).
func Build(n ast.Node) (*NFA, error) {
	if d := ast.Depth(n); d > MaxDepth {
		return nil, &BuildError{Message: "pattern nesting exceeds maximum depth"}
	}
	b := NewBuilder()
	root := b.build(n)
	b.states[root.end] = State{Kind: KindMatch}
	return &NFA{States: b.states, Start: root.start, Accept: root.end}, nil
}

func (b *Builder) alloc() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindInvalid})
	return id
}

func (b *Builder) build(n ast.Node) frag {
	switch v := n.(type) {
	case ast.Char:
		return b.buildChar(v)
	case ast.Dot:
		return b.buildDot()
	case ast.Concat:
		return b.buildConcat(v)
	case ast.Alt:
		return b.buildAlt(v)
	case ast.Star:
		return b.buildStar(v)
	default:
		panic("nfa: unknown ast node type")
	}
}

// buildChar implements: two fresh states s, e; s --c--> e, or s --eps--> e
// when c is the empty-string marker.
func (b *Builder) buildChar(c ast.Char) frag {
	s := b.alloc()
	e := b.alloc()
	if c.IsEmpty() {
		b.states[s] = State{Kind: KindEpsilon, Next: e}
	} else {
		b.states[s] = State{Kind: KindChar, Char: c.Ch, Next: e}
	}
	return frag{s, e}
}

// buildDot implements: s --ANYCHAR--> e.
func (b *Builder) buildDot() frag {
	s := b.alloc()
	e := b.alloc()
	b.states[s] = State{Kind: KindAny, Next: e}
	return frag{s, e}
}

// buildConcat implements: build L, build R, L.end --eps--> R.start; new
// fragment is (L.start, R.end).
func (b *Builder) buildConcat(c ast.Concat) frag {
	l := b.build(c.Left)
	r := b.build(c.Right)
	b.states[l.end] = State{Kind: KindEpsilon, Next: r.start}
	return frag{l.start, r.end}
}

// buildAlt implements: fresh s, e; s --eps--> L.start, s --eps--> R.start;
// L.end --eps--> e, R.end --eps--> e.
func (b *Builder) buildAlt(a ast.Alt) frag {
	l := b.build(a.Left)
	r := b.build(a.Right)
	s := b.alloc()
	e := b.alloc()
	b.states[s] = State{Kind: KindSplit, Out1: l.start, Out2: r.start}
	b.states[l.end] = State{Kind: KindEpsilon, Next: e}
	b.states[r.end] = State{Kind: KindEpsilon, Next: e}
	return frag{s, e}
}

// buildStar implements: fresh s, e; s --eps--> C.start, s --eps--> e;
// C.end --eps--> C.start, C.end --eps--> e.
func (b *Builder) buildStar(st ast.Star) frag {
	c := b.build(st.Child)
	s := b.alloc()
	e := b.alloc()
	b.states[s] = State{Kind: KindSplit, Out1: c.start, Out2: e}
	b.states[c.end] = State{Kind: KindSplit, Out1: c.start, Out2: e}
	return frag{s, e}
}
