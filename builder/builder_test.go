package builder

import (
	"testing"

	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// identityTransducer builds the a:a fixture from spec.md §8 scenario 1:
// state 0 (initial) -a:a-> 1, -other:0-> 2; state 1 (final) routes to 2
// on everything; state 2 is the dead state.
func identityTransducer(t *testing.T) *tape.Tape {
	t.Helper()
	tp := tape.New()
	b := New(tp)

	// State 0: initial.
	b.ClearInstr(2)
	b.SetInitialFlags()
	h := b.Outgoing('a')
	b.SetOutState(h, 1)
	b.SetOutChar(h, 'a')
	b.Finish()

	// State 1: final, everything routes to the dead state.
	b.ClearInstr(2)
	b.SetFinalFlags()
	b.Finish()

	// State 2: dead state.
	b.ClearInstr(2)
	b.Finish()

	return tp
}

func TestClearInstrFillsAllEntries(t *testing.T) {
	tp := tape.New()
	b := New(tp)
	b.ClearInstr(9)

	for i := 0; i < tape.StateEntries; i++ {
		e := tp.EntryAt(0, byte(i))
		if !e.IsValid() || e.OutChar != 0 || e.OutState != 9 {
			t.Fatalf("entry %d = %v, want VALID/outchar=0/out_state=9", i, e)
		}
	}
}

func TestFinishAdvancesLength(t *testing.T) {
	tp := tape.New()
	b := New(tp)
	before := tp.Length()
	b.ClearInstr(0)
	b.Finish()
	if got, want := tp.Length(), before+1; got != want {
		t.Fatalf("Length() = %d, want %d", got, want)
	}
}

func TestSetInitialFlagsIdempotent(t *testing.T) {
	tp := tape.New()
	b := New(tp)
	b.ClearInstr(0)
	b.SetInitialFlags()
	first := tp.EntryAt(0, 0).Flags
	b.SetInitialFlags()
	second := tp.EntryAt(0, 0).Flags
	if first != second {
		t.Fatalf("SetInitialFlags not idempotent: %v vs %v", first, second)
	}
}

func TestOutgoingStringRejectsNonSingleByte(t *testing.T) {
	tp := tape.New()
	b := New(tp)
	b.ClearInstr(0)

	if _, err := b.OutgoingString("ab"); err == nil {
		t.Fatalf("OutgoingString(\"ab\") returned no error")
	}
	if _, err := b.OutgoingString(""); err == nil {
		t.Fatalf("OutgoingString(\"\") returned no error")
	}
	h, err := b.OutgoingString("x")
	if err != nil {
		t.Fatalf("OutgoingString(\"x\") error: %v", err)
	}
	b.SetOutState(h, 0)
}

func TestIdentityTransducerShape(t *testing.T) {
	tp := identityTransducer(t)
	if tp.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", tp.Length())
	}
	if !tp.EntryAt(0, 0).IsInitial() {
		t.Fatalf("state 0 is not INITIAL")
	}
	if !tp.EntryAt(1, 0).IsFinal() {
		t.Fatalf("state 1 is not FINAL")
	}
	if got := tp.EntryAt(0, 'a'); got.OutState != 1 || got.OutChar != 'a' {
		t.Fatalf("state 0 on 'a' = %v, want out_state=1 outchar='a'", got)
	}
	if got := tp.EntryAt(0, 'b'); got.OutState != 2 || got.OutChar != 0 {
		t.Fatalf("state 0 on 'b' = %v, want out_state=2 outchar=0", got)
	}
}
