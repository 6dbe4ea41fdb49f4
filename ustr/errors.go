package ustr

import (
	"errors"
	"fmt"
)

// Errors returned by UString operations.
var (
	ErrInvalidUTF8      = errors.New("invalid UTF-8 sequence")
	ErrIndexOutOfRange  = errors.New("character index out of range")
	ErrCapacityOverflow = errors.New("capacity overflow")
)

// invalidByteError wraps ErrInvalidUTF8 with the byte position of the first
// offending byte.
func invalidByteError(pos int) error {
	return fmt.Errorf("byte %d: %w", pos, ErrInvalidUTF8)
}

// scalarError wraps ErrInvalidUTF8 for a rune that is not a valid Unicode
// scalar value (a surrogate or a value above U+10FFFF).
func scalarError(r rune) error {
	return fmt.Errorf("rune %#U is not a valid scalar value: %w", r, ErrInvalidUTF8)
}

// indexError wraps ErrIndexOutOfRange with the rejected index and the
// current character count.
func indexError(index, count int) error {
	return fmt.Errorf("index %d with length %d: %w", index, count, ErrIndexOutOfRange)
}

// rangeError wraps ErrIndexOutOfRange for a rejected [start, end) range.
func rangeError(start, end, count int) error {
	return fmt.Errorf("range [%d:%d) with length %d: %w", start, end, count, ErrIndexOutOfRange)
}
