package ustr

import "testing"

func TestIterForward(t *testing.T) {
	u := mustFrom(t, "aé日")

	it := u.Iter()
	want := []struct {
		char       rune
		size       int
		charOffset int
		byteOffset int
	}{
		{char: 'a', size: 1, charOffset: 0, byteOffset: 0},
		{char: 'é', size: 2, charOffset: 1, byteOffset: 1},
		{char: '日', size: 3, charOffset: 2, byteOffset: 3},
	}

	for i, w := range want {
		if !it.Next() {
			t.Fatalf("iterator ended early at step %d", i)
		}
		if it.Char() != w.char {
			t.Errorf("step %d: expected %q, got %q", i, w.char, it.Char())
		}
		if it.Size() != w.size {
			t.Errorf("step %d: expected size %d, got %d", i, w.size, it.Size())
		}
		if it.CharOffset() != w.charOffset {
			t.Errorf("step %d: expected char offset %d, got %d", i, w.charOffset, it.CharOffset())
		}
		if it.ByteOffset() != w.byteOffset {
			t.Errorf("step %d: expected byte offset %d, got %d", i, w.byteOffset, it.ByteOffset())
		}
	}

	if it.Next() {
		t.Error("iterator should be exhausted")
	}
}

func TestIterBackward(t *testing.T) {
	u := mustFrom(t, "aé日")

	it := u.ReverseIter()
	want := []rune{'日', 'é', 'a'}

	var got []rune
	for it.Next() {
		got = append(got, it.Char())
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d characters, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestIterEmpty(t *testing.T) {
	u := New()

	if u.Iter().Next() {
		t.Error("forward iterator over empty string should be exhausted")
	}
	if u.ReverseIter().Next() {
		t.Error("reverse iterator over empty string should be exhausted")
	}
}

func TestIterReset(t *testing.T) {
	u := mustFrom(t, "ab")

	it := u.Iter()
	for it.Next() {
	}

	it.Reset()
	if !it.Next() {
		t.Fatal("reset iterator should restart")
	}
	if it.Char() != 'a' {
		t.Errorf("expected 'a' after reset, got %q", it.Char())
	}
}

func TestReverseIterReset(t *testing.T) {
	u := mustFrom(t, "ab")

	it := u.ReverseIter()
	for it.Next() {
	}

	it.Reset()
	if !it.Next() {
		t.Fatal("reset iterator should restart")
	}
	if it.Char() != 'b' {
		t.Errorf("expected 'b' after reset, got %q", it.Char())
	}
}

func TestIndependentIterators(t *testing.T) {
	u := mustFrom(t, "abc")

	a := u.Iter()
	b := u.Iter()

	a.Next()
	a.Next()
	b.Next()

	if a.Char() != 'b' {
		t.Errorf("expected first iterator at 'b', got %q", a.Char())
	}
	if b.Char() != 'a' {
		t.Errorf("expected second iterator at 'a', got %q", b.Char())
	}
}

func TestIterDoesNotMutate(t *testing.T) {
	u := mustFrom(t, "aé日")

	it := u.Iter()
	for it.Next() {
	}
	rit := u.ReverseIter()
	for rit.Next() {
	}

	if u.String() != "aé日" {
		t.Errorf("iteration must not change the value, got %q", u.String())
	}
	checkInvariants(t, u)
}
