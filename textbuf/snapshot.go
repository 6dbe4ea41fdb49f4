package textbuf

import "github.com/dshills/unistring/ustr"

// Snapshot provides a read-only view of a buffer at a specific point in
// time. It is safe for concurrent access and will not change even if the
// original buffer is modified.
type Snapshot struct {
	str        *ustr.UString
	revisionID RevisionID
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.str.String()
}

// TextRange returns the text of the characters in [start, end).
func (s *Snapshot) TextRange(start, end CharOffset) (string, error) {
	sub, err := s.str.Slice(start, end)
	if err != nil {
		return "", ErrRangeInvalid
	}
	return sub.String(), nil
}

// CharCount returns the number of characters in the snapshot.
func (s *Snapshot) CharCount() int {
	return s.str.CharCount()
}

// ByteLen returns the encoded length of the snapshot in bytes.
func (s *Snapshot) ByteLen() int {
	return s.str.ByteLen()
}

// CharAt returns the character at the given offset.
func (s *Snapshot) CharAt(offset CharOffset) (rune, error) {
	r, err := s.str.CharAt(offset)
	if err != nil {
		return 0, ErrOffsetOutOfRange
	}
	return r, nil
}

// Bytes returns a copy of the snapshot's encoded text.
func (s *Snapshot) Bytes() []byte {
	return s.str.Bytes()
}

// Runes returns the snapshot content as a newly allocated rune slice.
func (s *Snapshot) Runes() []rune {
	return s.str.Runes()
}

// IsEmpty returns true if the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return s.str.IsEmpty()
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// Iter returns a forward iterator over all characters in the snapshot.
func (s *Snapshot) Iter() *ustr.Iterator {
	return s.str.Iter()
}

// ReverseIter returns a backward iterator over all characters in the snapshot.
func (s *Snapshot) ReverseIter() *ustr.ReverseIterator {
	return s.str.ReverseIter()
}
