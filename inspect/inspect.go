// Package inspect provides read-only queries over a finished Instruction
// Tape: length, per-state flags, and the enumeration of a state's
// meaningful outgoing transitions.
//
// Grounded on dfa/onepass.DFA's read-only accessor set (NumCaptures,
// isMatchState, getTransition — teacher: github.com/coregx/coregex),
// generalized from DFA-specific queries to the flag/outgoing queries
// spec.md §4.5 names.
package inspect

import (
	"errors"
	"fmt"

	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// ErrOutOfRange is returned when a query names a state index n >= the
// tape's Length — spec.md §7's OutOfRangeState kind, which the source
// leaves as the caller's responsibility but this package surfaces rather
// than letting callers read garbage or panic on a slice bounds check.
var ErrOutOfRange = errors.New("inspect: state index out of range")

// Length returns the number of finished states in t.
func Length(t *tape.Tape) int { return t.Length() }

func checkRange(t *tape.Tape, n int) error {
	if n < 0 || n >= t.Length() {
		return fmt.Errorf("%w: state %d, length %d", ErrOutOfRange, n, t.Length())
	}
	return nil
}

// IsValid reports whether state n carries the VALID bit.
func IsValid(t *tape.Tape, n int) (bool, error) {
	if err := checkRange(t, n); err != nil {
		return false, err
	}
	return t.EntryAt(n, 0).IsValid(), nil
}

// IsInitial reports whether state n carries the INITIAL bit.
func IsInitial(t *tape.Tape, n int) (bool, error) {
	if err := checkRange(t, n); err != nil {
		return false, err
	}
	return t.EntryAt(n, 0).IsInitial(), nil
}

// IsFinal reports whether state n carries the FINAL bit.
func IsFinal(t *tape.Tape, n int) (bool, error) {
	if err := checkRange(t, n); err != nil {
		return false, err
	}
	return t.EntryAt(n, 0).IsFinal(), nil
}

// Transition is one meaningful outgoing edge from a state, as returned
// by Outgoings: the input byte, the output byte it emits, and the
// destination state.
type Transition struct {
	In  byte
	Out byte
	To  int
}

// Outgoings enumerates state n's transitions with a nonzero outchar, in
// ascending order of the input byte. Transitions to the dead/error state
// with zero outchar are the "implicit" fill and are omitted (P10).
func Outgoings(t *tape.Tape, n int) ([]Transition, error) {
	if err := checkRange(t, n); err != nil {
		return nil, err
	}
	var out []Transition
	for b := 0; b < tape.StateEntries; b++ {
		e := t.EntryAt(n, byte(b))
		if e.OutChar == 0 {
			continue
		}
		out = append(out, Transition{In: byte(b), Out: e.OutChar, To: int(e.OutState)})
	}
	return out, nil
}
