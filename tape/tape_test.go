package tape

import "testing"

// addState mimics what the builder package does: ensure storage, fill,
// then commit — used here so tape's own tests don't need the builder
// package (which depends on tape, not the other way around).
func addState(tp *Tape, errorState uint16) int {
	n := tp.Length()
	tp.EnsureState(n)
	tp.FillState(n, errorState)
	return tp.CommitState()
}

func TestNewTape(t *testing.T) {
	tp := New()
	if tp.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", tp.Length())
	}
	if tp.Capacity() < 1 {
		t.Fatalf("Capacity() = %d, want >= 1", tp.Capacity())
	}
	if tp.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want 0", tp.Cursor())
	}
}

func TestGrowOffByOne(t *testing.T) {
	tp := New() // capacity == 1
	tp.Grow(1)  // capacity <= target (1 <= 1): must reallocate per spec
	if tp.Capacity() < 2 {
		t.Fatalf("Grow(1) from capacity 1 left capacity %d, want >= 2 (off-by-one preserved)", tp.Capacity())
	}
}

func TestGrowPreservesContent(t *testing.T) {
	tp := New()
	n := addState(tp, 7)
	before := tp.EntryAt(n, 'a')

	for i := 0; i < 10; i++ {
		tp.Grow(tp.Capacity() + 1)
	}

	after := tp.EntryAt(n, 'a')
	if before != after {
		t.Fatalf("entry changed across Grow: before=%v after=%v", before, after)
	}
}

func TestFillStateClearFill(t *testing.T) {
	tp := New()
	n := addState(tp, 42)

	for b := 0; b < StateEntries; b++ {
		e := tp.EntryAt(n, byte(b))
		if !e.IsValid() || e.OutChar != 0 || e.OutState != 42 {
			t.Fatalf("entry %d after FillState = %v, want VALID/outchar=0/out_state=42", b, e)
		}
	}
}

func TestOrFlagsIdempotent(t *testing.T) {
	tp := New()
	n := tp.Length()
	tp.EnsureState(n)
	tp.FillState(n, 0)

	tp.OrFlags(n, FlagInitial)
	once := tp.EntryAt(n, 0).Flags
	tp.OrFlags(n, FlagInitial)
	twice := tp.EntryAt(n, 0).Flags

	if once != twice {
		t.Fatalf("OrFlags not idempotent: once=%#02x twice=%#02x", once, twice)
	}
	if once&FlagInitial == 0 {
		t.Fatalf("OrFlags did not set FlagInitial")
	}
}

func TestRawLengthMatchesFinishedStates(t *testing.T) {
	tp := New()
	addState(tp, 0)
	addState(tp, 0)

	raw := tp.Raw()
	if len(raw) != 2*StateSize {
		t.Fatalf("len(Raw()) = %d, want %d", len(raw), 2*StateSize)
	}
}

func TestFromRaw(t *testing.T) {
	tp := New()
	addState(tp, 5)

	raw := append([]byte(nil), tp.Raw()...)
	tp2 := FromRaw(raw, 1)
	if tp2.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", tp2.Length())
	}
	if got := tp2.EntryAt(0, 'z'); got.OutState != 5 {
		t.Fatalf("EntryAt(0, 'z').OutState = %d, want 5", got.OutState)
	}
}
