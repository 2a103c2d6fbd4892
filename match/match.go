// Package match implements the deterministic walk over a finished
// Instruction Tape: given an input byte string, it produces the emitted
// output byte string, the trajectory of visited states, and whether the
// walk ended in acceptance.
//
// Grounded on dfa/onepass/search.go's Search loop (teacher:
// github.com/coregx/coregex), simplified to this system's contract: no
// capture slots, no early-exit match-wins flag, no byte-class
// compression — one direct 256-wide table lookup per input byte.
package match

import "github.com/jsalzbergedu/fst-fast-system/tape"

// Result is one match run's output: the aggregator-style MatchObject
// spec.md §9 says a port should ship (the source's newer match_string
// variant, as opposed to an older one returning a bare string).
type Result struct {
	Output     []byte
	Trajectory []uint16
	Accept     bool
}

// Match walks t from state 0 over input, byte by byte. It never
// consults the VALID flag (on a well-formed deterministic tape every
// entry is VALID by construction); acceptance is decided solely by
// whether the final visited state carries FINAL.
func Match(t *tape.Tape, input []byte) Result {
	if len(input) == 0 {
		return Result{}
	}

	res := Result{
		Output:     make([]byte, 0, len(input)),
		Trajectory: make([]uint16, 0, len(input)),
	}

	state := 0
	for _, in := range input {
		e := stepOneByte(t, state, in)
		if e.OutChar != 0 {
			res.Output = append(res.Output, e.OutChar)
		}
		res.Trajectory = append(res.Trajectory, e.OutState)
		state = int(e.OutState)
	}

	// state is now the last visited state; its own entries (flags are
	// homogeneous across all 256 of a state's entries, spec.md §3) carry
	// whether it is FINAL — not the transition entry consumed to reach
	// it, which belongs to the *previous* state's table.
	res.Accept = t.EntryAt(state, 0).IsFinal()
	return res
}

// stepOneByte looks up the single transition entry for reading byte in
// while in the given state. This is match_one_char from the source,
// kept as its own step so callers stepping one byte at a time (e.g. a
// future streaming matcher) have the same seam the original C code did.
func stepOneByte(t *tape.Tape, state int, in byte) tape.Entry {
	return t.EntryAt(state, in)
}
