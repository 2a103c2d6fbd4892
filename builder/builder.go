// Package builder implements the state-by-state construction API over an
// Instruction Tape: one logical FST state at a time.
//
// The typical construction idiom, for each logical state:
//
//	b.ClearInstr(deadState)
//	b.SetInitialFlags() // if this state is initial
//	b.SetFinalFlags()   // if this state is final
//	for each (inByte, outByte, toState) transition:
//	    h := b.Outgoing(inByte)
//	    b.SetOutState(h, toState)
//	    b.SetOutChar(h, outByte)
//	b.Finish()
package builder

import (
	"errors"
	"fmt"

	"github.com/jsalzbergedu/fst-fast-system/internal/conv"
	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// ErrBadArgument is returned by the String-accepting convenience wrappers
// (OutgoingString, SetOutCharString) when given an argument whose length
// is not exactly one byte — spec.md §7's BadArgument error kind, surfaced
// here since a Go API has nowhere else to reject it short of the host
// bindings layer this module does not implement.
var ErrBadArgument = errors.New("builder: argument must be exactly one byte")

// Builder builds one Instruction Tape state at a time, mutating the
// "current" state — the one most recently started with ClearInstr and
// not yet completed with Finish.
type Builder struct {
	tape    *tape.Tape
	current int
	started bool
}

// New wraps a tape for state-by-state construction. The tape may already
// have finished states (e.g. resumed construction); the builder always
// starts its next ClearInstr at the tape's current Length.
func New(t *tape.Tape) *Builder {
	return &Builder{tape: t}
}

// Tape returns the tape this builder is constructing.
func (b *Builder) Tape() *tape.Tape { return b.tape }

// Handle is a mutable reference to one state entry — the byte b of the
// builder's current state at the time the handle was obtained. Unlike the
// source's raw FstStateEntry*, a Handle is an index pair, not a pointer:
// it is recomputed against the tape on every use, so it is never left
// dangling by a Grow-triggered reallocation. It is still only valid for
// as long as its enclosing state remains current — using a Handle from an
// earlier state after ClearInstr starts a new one is a caller error, same
// as the source's invalidation contract (spec.md §4.2).
type Handle struct {
	state int
	in    byte
}

// ClearInstr begins a new state: grows the tape if needed and writes all
// 256 entries of the new current state to
// {flags=VALID, outchar=0, out_state=errorState} (P1). errorState is the
// implicit destination for every byte not subsequently overridden via
// Outgoing/SetOutState — by convention the dead/sink state's index.
func (b *Builder) ClearInstr(errorState int) {
	n := b.tape.Length()
	b.tape.EnsureState(n)
	b.tape.FillState(n, conv.IntToUint16(errorState))
	b.current = n
	b.started = true
}

// SetInitialFlags ORs the INITIAL bit into all 256 entries of the
// current state. Idempotent (P3).
func (b *Builder) SetInitialFlags() {
	b.tape.OrFlags(b.current, tape.FlagInitial)
}

// SetFinalFlags ORs the FINAL bit into all 256 entries of the current
// state. Idempotent (P3).
func (b *Builder) SetFinalFlags() {
	b.tape.OrFlags(b.current, tape.FlagFinal)
}

// Outgoing returns a handle to entry b of the current state.
func (b *Builder) Outgoing(in byte) Handle {
	return Handle{state: b.current, in: in}
}

// OutgoingString is Outgoing for callers holding a string rather than a
// byte (the shape a host binding would receive a one-character argument
// in). It rejects any input whose length is not 1 with ErrBadArgument,
// per spec.md §4.7/§7, and leaves the tape unchanged on rejection.
func (b *Builder) OutgoingString(s string) (Handle, error) {
	if len(s) != 1 {
		return Handle{}, fmt.Errorf("%w: got %d bytes", ErrBadArgument, len(s))
	}
	return b.Outgoing(s[0]), nil
}

// SetOutState sets the destination state of the entry h refers to.
func (b *Builder) SetOutState(h Handle, toState int) {
	e := b.tape.EntryAt(h.state, h.in)
	e.OutState = conv.IntToUint16(toState)
	b.tape.SetEntry(h.state, h.in, e)
}

// SetOutChar sets the output byte of the entry h refers to.
func (b *Builder) SetOutChar(h Handle, out byte) {
	e := b.tape.EntryAt(h.state, h.in)
	e.OutChar = out
	b.tape.SetEntry(h.state, h.in, e)
}

// SetOutCharString is SetOutChar for a string argument; see
// OutgoingString.
func (b *Builder) SetOutCharString(h Handle, out string) error {
	if len(out) != 1 {
		return fmt.Errorf("%w: got %d bytes", ErrBadArgument, len(out))
	}
	b.SetOutChar(h, out[0])
	return nil
}

// Finish advances the tape's committed length by one full state (P2).
// After Finish, the just-completed state is frozen: the Matcher and
// Inspector see it, and further Outgoing/SetOutState/SetOutChar calls
// against its handles are no longer meaningful (a new ClearInstr must be
// called to resume building).
func (b *Builder) Finish() int {
	n := b.tape.CommitState()
	b.started = false
	return n
}

// Building reports whether ClearInstr has been called without a matching
// Finish yet.
func (b *Builder) Building() bool { return b.started }
