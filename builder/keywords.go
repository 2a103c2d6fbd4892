package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// ErrTooManyStates is returned by FromKeywords when the keyword trie
// would need more states than a tape can address (spec.md §1: automata
// of more than 65536 states are out of scope).
var ErrTooManyStates = errors.New("builder: keyword set needs more states than a tape can address")

// trieNode is one node of the keyword trie FromKeywords builds before
// flattening it into tape states. children is sorted at flatten time only
// (map iteration order is not used for anything observable — the
// resulting transitions are looked up by byte, not enumerated, except via
// the inspect package, which sorts independently).
type trieNode struct {
	children map[byte]int
	final    bool
}

// FromKeywords builds a new tape directly from a set of keywords: an FST
// that echoes its input byte-for-byte (outchar == the byte just consumed)
// for as long as the input follows one of the keywords' shared prefix
// trie, and is FINAL exactly at the states where a keyword ends. Any byte
// that leaves the trie routes to a dead state with no further output,
// the same "branch-free fallback to a sink" shape as a hand-built
// PEGREG fixture (spec.md §6; original_source's create_pegreg_* functions).
//
// This is a convenience on top of Builder's primitives, not a
// replacement for them: every state FromKeywords produces could equally
// have been built by hand with ClearInstr/Outgoing/SetOutState/
// SetOutChar/Finish, and it satisfies the same invariants (I1-I5).
func FromKeywords(words []string) (*tape.Tape, error) {
	nodes := []*trieNode{{children: map[byte]int{}}} // root = state 0

	for _, w := range words {
		cur := 0
		for i := 0; i < len(w); i++ {
			c := w[i]
			next, ok := nodes[cur].children[c]
			if !ok {
				nodes = append(nodes, &trieNode{children: map[byte]int{}})
				next = len(nodes) - 1
				nodes[cur].children[c] = next
			}
			cur = next
		}
		nodes[cur].final = true
	}

	deadState := len(nodes)
	totalStates := len(nodes) + 1
	if totalStates > tape.MaxStates {
		return nil, fmt.Errorf("%w: %d states needed, max %d", ErrTooManyStates, totalStates, tape.MaxStates)
	}

	tp := tape.New()
	b := New(tp)

	for i, node := range nodes {
		b.ClearInstr(deadState)
		if i == 0 {
			b.SetInitialFlags()
		}
		if node.final {
			b.SetFinalFlags()
		}
		for _, c := range sortedBytes(node.children) {
			next := node.children[c]
			h := b.Outgoing(c)
			b.SetOutState(h, next)
			b.SetOutChar(h, c)
		}
		b.Finish()
	}

	// The dead state: every byte self-loops with no output, as
	// original_source's fixtures all do for their sink state.
	b.ClearInstr(deadState)
	b.Finish()

	return tp, nil
}

func sortedBytes(m map[byte]int) []byte {
	out := make([]byte, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
