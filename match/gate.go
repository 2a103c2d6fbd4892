package match

import (
	"github.com/coregx/ahocorasick"
	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// Gate is an optional fast-reject layered in front of Match: it holds a
// multi-literal Aho-Corasick automaton over a set of substrings known to
// be necessary (but not sufficient) for some tape to accept — for
// instance the keywords a FST built with builder.FromKeywords requires
// somewhere in its accepted paths.
//
// This mirrors the teacher's own meta.Engine, which runs
// ahoCorasick.IsMatch/Find ahead of its DFA for literal-heavy patterns
// (meta/ismatch.go, meta/find.go) rather than walking the DFA on inputs
// that provably cannot match.
type Gate struct {
	automaton *ahocorasick.Automaton
}

// NewGate builds a Gate over the given literals. An empty literal set is
// a valid Gate that rejects every input — harmless, but not useful.
func NewGate(literals [][]byte) (*Gate, error) {
	b := ahocorasick.NewBuilder()
	for _, lit := range literals {
		b.AddPattern(lit)
	}
	automaton, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Gate{automaton: automaton}, nil
}

// MightAccept reports whether input contains at least one of the Gate's
// literals. false means WithGate can skip the tape walk entirely; true
// means the full Match must still run to know for certain.
func (g *Gate) MightAccept(input []byte) bool {
	return g.automaton.IsMatch(input)
}

// WithGate runs Match(t, input) only if gate.MightAccept(input); it is a
// pure optimization layered on top of Match and must never change the
// Accept verdict Match itself would have produced (P12 in SPEC_FULL.md) — a
// false-negative gate would be a correctness bug in the gate's literal
// set, not in WithGate. When the gate rejects, the returned Result has
// Accept false and no Output or Trajectory.
func WithGate(t *tape.Tape, gate *Gate, input []byte) Result {
	if gate != nil && !gate.MightAccept(input) {
		return Result{Accept: false}
	}
	return Match(t, input)
}
