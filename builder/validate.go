package builder

import (
	"errors"
	"fmt"

	"github.com/jsalzbergedu/fst-fast-system/internal/sparse"
	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// ErrNoInitialState is returned by Validate when a tape has no state
// with the INITIAL flag set (I5).
var ErrNoInitialState = errors.New("builder: tape has no initial state")

// ErrDanglingTransition is returned by Validate when some state's entry
// names an out_state at or beyond the tape's finished length (I3).
var ErrDanglingTransition = errors.New("builder: transition targets an unfinished state")

// Validate walks the states reachable from every INITIAL state of t and
// checks I3 (every out_state seen along the walk is < Length) and I5 (at
// least one INITIAL state exists). States unreachable from any INITIAL
// state are not visited and so cannot trip I3 by themselves — a
// dangling transition only matters if something can actually reach it.
//
// Grounded on dfa/onepass.Builder's post-construction validation pass
// (teacher: github.com/coregx/coregex), generalized from DFA transition
// tables to tape.Tape's byte-indexed entries. internal/sparse.StateSet
// is the visited-set/frontier, the same role it plays tracking visited
// NFA states during closure search.
func Validate(t *tape.Tape) error {
	n := t.Length()
	if n == 0 {
		return fmt.Errorf("%w: tape has no finished states", ErrNoInitialState)
	}

	visited := sparse.NewStateSet(n)
	var frontier []uint16
	sawInitial := false

	for s := 0; s < n; s++ {
		if t.EntryAt(s, 0).IsInitial() {
			sawInitial = true
			if !visited.Contains(uint16(s)) {
				visited.Insert(uint16(s))
				frontier = append(frontier, uint16(s))
			}
		}
	}
	if !sawInitial {
		return ErrNoInitialState
	}

	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for b := 0; b < tape.StateEntries; b++ {
			e := t.EntryAt(int(s), byte(b))
			if int(e.OutState) >= n {
				return fmt.Errorf("%w: state %d byte %#02x -> state %d, length %d", ErrDanglingTransition, s, b, e.OutState, n)
			}
			if !visited.Contains(e.OutState) {
				visited.Insert(e.OutState)
				frontier = append(frontier, e.OutState)
			}
		}
	}

	return nil
}
