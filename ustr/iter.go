package ustr

import "unicode/utf8"

// Iterator walks the characters of a UString in ascending order. Each step
// is O(1): one offset lookup and one decode. The iterator reads but never
// mutates the source; it is valid only while no mutation occurs.
type Iterator struct {
	u       *UString
	idx     int
	current rune
	size    int
	started bool
}

// Iter returns a forward iterator over all characters.
func (u *UString) Iter() *Iterator {
	return &Iterator{u: u}
}

// Next advances to the next character.
// Returns true if there is a character, false if iteration is complete.
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		it.idx = 0
	} else {
		it.idx++
	}

	if it.idx >= it.u.CharCount() {
		return false
	}

	lo, hi := it.u.offsets[it.idx], it.u.offsets[it.idx+1]
	it.current, it.size = utf8.DecodeRune(it.u.buf[lo:hi])
	return true
}

// Char returns the current character.
func (it *Iterator) Char() rune {
	return it.current
}

// Size returns the encoded byte width of the current character.
func (it *Iterator) Size() int {
	return it.size
}

// CharOffset returns the character index of the current character.
func (it *Iterator) CharOffset() int {
	return it.idx
}

// ByteOffset returns the byte offset of the current character.
func (it *Iterator) ByteOffset() int {
	return it.u.offsets[it.idx]
}

// Reset restarts the iteration from the beginning.
func (it *Iterator) Reset() {
	it.started = false
	it.idx = 0
	it.current = 0
	it.size = 0
}

// ReverseIterator walks the characters of a UString in descending order.
// Each step is O(1) by walking the offset index backward.
type ReverseIterator struct {
	u       *UString
	idx     int
	current rune
	size    int
	started bool
}

// ReverseIter returns a backward iterator over all characters.
func (u *UString) ReverseIter() *ReverseIterator {
	return &ReverseIterator{u: u, idx: u.CharCount()}
}

// Next moves to the previous character (advances the reverse iteration).
// Returns true if there is a character, false if iteration is complete.
func (it *ReverseIterator) Next() bool {
	if !it.started {
		it.started = true
		it.idx = it.u.CharCount()
	}

	if it.idx == 0 {
		return false
	}
	it.idx--

	lo, hi := it.u.offsets[it.idx], it.u.offsets[it.idx+1]
	it.current, it.size = utf8.DecodeRune(it.u.buf[lo:hi])
	return true
}

// Char returns the current character.
func (it *ReverseIterator) Char() rune {
	return it.current
}

// Size returns the encoded byte width of the current character.
func (it *ReverseIterator) Size() int {
	return it.size
}

// CharOffset returns the character index of the current character.
func (it *ReverseIterator) CharOffset() int {
	return it.idx
}

// ByteOffset returns the byte offset of the current character.
func (it *ReverseIterator) ByteOffset() int {
	return it.u.offsets[it.idx]
}

// Reset restarts the iteration from the end.
func (it *ReverseIterator) Reset() {
	it.started = false
	it.idx = it.u.CharCount()
	it.current = 0
	it.size = 0
}
