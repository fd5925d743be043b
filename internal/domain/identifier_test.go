package domain

import "testing"

func TestIdentifierResolver_SuppliedVerbatim(t *testing.T) {
	r := NewIdentifierResolver(TokenFunc(func() string {
		t.Fatal("token source must not be used when an id is supplied")
		return ""
	}))

	for _, in := range []string{"icon-arrow", "Weird Id <x>", " spaced "} {
		id, generated, err := r.Resolve(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != in || generated {
			t.Fatalf("expected %q verbatim, got %q (generated=%v)", in, id, generated)
		}
	}
}

func TestIdentifierResolver_GeneratesFromTwoTokens(t *testing.T) {
	tokens := []string{"aaaaaaaaaaaaa", "bbbbbbbbbbbbb"}
	i := 0
	r := NewIdentifierResolver(TokenFunc(func() string {
		tok := tokens[i]
		i++
		return tok
	}))

	id, generated, err := r.Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !generated {
		t.Fatalf("expected generated id")
	}
	if id != "aaaaaaaaaaaaabbbbbbbbbbbbb" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestIdentifierResolver_NilSource(t *testing.T) {
	_, _, err := NewIdentifierResolver(nil).Resolve("")
	if !IsKind(err, KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestIdentifierResolver_EmptyTokens(t *testing.T) {
	r := NewIdentifierResolver(TokenFunc(func() string { return "" }))
	if _, _, err := r.Resolve(""); err == nil {
		t.Fatal("expected error for empty tokens")
	}
}
