package ustr

import (
	"testing"
	"unicode/utf8"
)

// FuzzFromBytes tests construction from arbitrary byte input.
func FuzzFromBytes(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte("aé日"))
	f.Add([]byte("emoji 🎉 test"))
	f.Add([]byte{0x80})
	f.Add([]byte{0xC3})
	f.Add([]byte{0xED, 0xA0, 0x80})

	f.Fuzz(func(t *testing.T, b []byte) {
		u, err := FromBytes(b)

		if !utf8.Valid(b) {
			if err == nil {
				t.Errorf("malformed input %q must fail construction", b)
			}
			if u != nil {
				t.Error("failed construction must not produce an instance")
			}
			return
		}

		if err != nil {
			t.Fatalf("valid input %q failed: %v", b, err)
		}
		if u.String() != string(b) {
			t.Errorf("content mismatch: got %q, want %q", u.String(), b)
		}
		if u.CharCount() != utf8.RuneCount(b) {
			t.Errorf("char count: got %d, want %d", u.CharCount(), utf8.RuneCount(b))
		}
		if u.ByteLen() != len(b) {
			t.Errorf("byte length: got %d, want %d", u.ByteLen(), len(b))
		}
		if !checkOffsets(u.buf, u.offsets) {
			t.Errorf("offset invariants violated for %q", b)
		}

		// Every character must match a rune-by-rune decode of the input.
		want := []rune(string(b))
		for i, w := range want {
			got, err := u.CharAt(i)
			if err != nil {
				t.Fatalf("CharAt(%d) failed: %v", i, err)
			}
			if got != w {
				t.Errorf("CharAt(%d): got %q, want %q", i, got, w)
			}
		}
	})
}

// FuzzEditSequence applies a random edit sequence and compares the result
// against a []rune reference model.
func FuzzEditSequence(f *testing.F) {
	f.Add("hello", "xyé日", uint(3), uint(1))
	f.Add("", "a", uint(0), uint(0))
	f.Add("日本語", "🎉", uint(2), uint(5))
	f.Add("aé日", "", uint(1), uint(2))

	f.Fuzz(func(t *testing.T, initial, inserts string, at, removeAt uint) {
		if !utf8.ValidString(initial) || !utf8.ValidString(inserts) {
			return
		}

		u, err := FromString(initial)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		model := []rune(initial)

		for _, c := range inserts {
			i := int(at % uint(len(model)+1))
			if err := u.InsertCharAt(i, c); err != nil {
				t.Fatalf("insert %q at %d failed: %v", c, i, err)
			}
			model = append(model[:i], append([]rune{c}, model[i:]...)...)
			at++
		}

		if len(model) > 0 {
			i := int(removeAt % uint(len(model)))
			if err := u.RemoveCharAt(i); err != nil {
				t.Fatalf("remove at %d failed: %v", i, err)
			}
			model = append(model[:i], model[i+1:]...)
		}

		if u.String() != string(model) {
			t.Errorf("edit sequence diverged: got %q, want %q", u.String(), string(model))
		}
		if u.CharCount() != len(model) {
			t.Errorf("char count diverged: got %d, want %d", u.CharCount(), len(model))
		}
		if !checkOffsets(u.buf, u.offsets) {
			t.Error("offset invariants violated after edit sequence")
		}
	})
}

// FuzzSliceConcat checks that slicing a concatenation recovers the parts.
func FuzzSliceConcat(f *testing.F) {
	f.Add("hello", "world")
	f.Add("", "日本語")
	f.Add("aé", "日🎉")

	f.Fuzz(func(t *testing.T, s1, s2 string) {
		if !utf8.ValidString(s1) || !utf8.ValidString(s2) {
			return
		}

		a, err := FromString(s1)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		b, err := FromString(s2)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}

		c := a.Concat(b)
		if c.String() != s1+s2 {
			t.Errorf("concat mismatch: got %q, want %q", c.String(), s1+s2)
		}

		left, err := c.Slice(0, a.CharCount())
		if err != nil {
			t.Fatalf("left slice failed: %v", err)
		}
		if !left.Equal(a) {
			t.Errorf("left part diverged: got %q, want %q", left.String(), s1)
		}

		right, err := c.Slice(a.CharCount(), c.CharCount())
		if err != nil {
			t.Fatalf("right slice failed: %v", err)
		}
		if !right.Equal(b) {
			t.Errorf("right part diverged: got %q, want %q", right.String(), s2)
		}
	})
}
