package ustr

import "unicode/utf8"

// scanOffsets validates b as UTF-8 and builds its codepoint boundary table.
// The returned slice has one entry per character plus the terminal entry
// len(b). On malformed input it returns an error wrapping ErrInvalidUTF8
// with the position of the first bad byte.
func scanOffsets(b []byte) ([]int, error) {
	if isASCII(b) {
		offsets := make([]int, len(b)+1)
		for i := range offsets {
			offsets[i] = i
		}
		return offsets, nil
	}

	offsets := make([]int, 1, utf8.RuneCount(b)+1)
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			offsets = append(offsets, i)
			continue
		}
		_, size := utf8.DecodeRune(b[i:])
		if size == 1 {
			// DecodeRune reports malformed input as (RuneError, 1).
			return nil, invalidByteError(i)
		}
		i += size
		offsets = append(offsets, i)
	}
	return offsets, nil
}

// isASCII reports whether every byte in b is below RuneSelf.
// ASCII input gets the trivial one-byte-per-character boundary table.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// checkOffsets verifies the structural invariants of an offset table against
// its byte buffer: first entry 0, last entry len(b), strictly increasing,
// and every span decoding to exactly one scalar value. It is used by tests
// and by internal assertions; violations indicate an implementation bug,
// never bad input.
func checkOffsets(b []byte, offsets []int) bool {
	if len(offsets) == 0 || offsets[0] != 0 || offsets[len(offsets)-1] != len(b) {
		return false
	}
	for i := 1; i < len(offsets); i++ {
		lo, hi := offsets[i-1], offsets[i]
		if lo >= hi {
			return false
		}
		r, size := utf8.DecodeRune(b[lo:hi])
		if size != hi-lo || (r == utf8.RuneError && size == 1) {
			return false
		}
	}
	return true
}
