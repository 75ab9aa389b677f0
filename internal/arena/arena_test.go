package arena

import "testing"

func TestInternCopiesStorage(t *testing.T) {
	a := New()
	buf := []byte("uint32_t")
	owned := a.Intern(string(buf))
	buf[0] = 'X'
	if owned != "uint32_t" {
		t.Fatalf("interned string changed with caller buffer: %q", owned)
	}
}

func TestInternDeduplicates(t *testing.T) {
	a := New()
	first := a.InternID("entry")
	second := a.InternID("entry")
	if first != second {
		t.Fatalf("same content interned twice: %d vs %d", first, second)
	}
	if a.Strings() != 2 { // sentinel + "entry"
		t.Fatalf("expected 2 stored strings, got %d", a.Strings())
	}
}

func TestLookupRejectsUnknownID(t *testing.T) {
	a := New()
	if _, ok := a.Lookup(StringID(42)); ok {
		t.Fatalf("lookup of unissued ID succeeded")
	}
	if s, ok := a.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("sentinel lookup: %q %v", s, ok)
	}
}

func TestPinKeepsValues(t *testing.T) {
	a := New()
	a.Pin(&struct{ n int }{1})
	a.Pin(&struct{ n int }{2})
	if a.Pinned() != 2 {
		t.Fatalf("expected 2 pinned values, got %d", a.Pinned())
	}
}
