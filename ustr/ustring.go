package ustr

import (
	"bytes"
	"unicode/utf8"
)

// maxInt is the largest representable length on this platform.
const maxInt = int(^uint(0) >> 1)

// UString is an indexed Unicode string. It owns a UTF-8 byte buffer and an
// offset index with one entry per codepoint boundary plus a terminal entry
// equal to the byte length. The two are updated together under every
// mutation; a failed operation never changes either.
//
// The zero value is an empty string, ready to use.
type UString struct {
	buf     []byte
	offsets []int
}

// New creates an empty UString.
func New() *UString {
	return &UString{offsets: []int{0}}
}

// NewWithCapacity creates an empty UString with room for byteCap bytes of
// encoded text before either buffer reallocates.
func NewWithCapacity(byteCap int) *UString {
	if byteCap < 0 {
		byteCap = 0
	}
	u := &UString{
		buf:     make([]byte, 0, byteCap),
		offsets: make([]int, 1, byteCap+1),
	}
	return u
}

// FromBytes creates a UString by validating and copying b.
// Returns an error wrapping ErrInvalidUTF8 if b is not well-formed UTF-8;
// no instance is produced in that case.
func FromBytes(b []byte) (*UString, error) {
	offsets, err := scanOffsets(b)
	if err != nil {
		return nil, err
	}
	return &UString{
		buf:     append([]byte(nil), b...),
		offsets: offsets,
	}, nil
}

// FromString creates a UString from s. Go strings are not guaranteed to
// hold valid UTF-8, so construction validates like FromBytes.
func FromString(s string) (*UString, error) {
	return FromBytes([]byte(s))
}

// FromRunes creates a UString by encoding each rune in rs.
// Returns an error wrapping ErrInvalidUTF8 if any rune is not a valid
// Unicode scalar value (surrogates, values above U+10FFFF).
func FromRunes(rs []rune) (*UString, error) {
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			return nil, scalarError(r)
		}
	}

	u := &UString{
		buf:     make([]byte, 0, len(rs)),
		offsets: make([]int, 1, len(rs)+1),
	}
	for _, r := range rs {
		u.buf = utf8.AppendRune(u.buf, r)
		u.offsets = append(u.offsets, len(u.buf))
	}
	return u, nil
}

// init makes the zero value usable by installing the empty offset table.
func (u *UString) init() {
	if u.offsets == nil {
		u.offsets = []int{0}
	}
}

// Read Operations

// CharCount returns the number of Unicode scalar values. O(1).
func (u *UString) CharCount() int {
	if len(u.offsets) == 0 {
		return 0
	}
	return len(u.offsets) - 1
}

// ByteLen returns the encoded length in bytes. O(1).
func (u *UString) ByteLen() int {
	if len(u.offsets) == 0 {
		return 0
	}
	return u.offsets[len(u.offsets)-1]
}

// IsEmpty returns true if the string contains no characters.
func (u *UString) IsEmpty() bool {
	return u.CharCount() == 0
}

// CharAt returns the character at index i. O(1): one offset lookup plus one
// decode, independent of i and of the string length.
func (u *UString) CharAt(i int) (rune, error) {
	if i < 0 || i >= u.CharCount() {
		return 0, indexError(i, u.CharCount())
	}
	r, _ := utf8.DecodeRune(u.buf[u.offsets[i]:u.offsets[i+1]])
	return r, nil
}

// ByteOffsetOf returns the byte offset of the start of character i.
// i may equal CharCount, in which case the terminal offset (the byte
// length) is returned.
func (u *UString) ByteOffsetOf(i int) (int, error) {
	if i < 0 || i > u.CharCount() {
		return 0, indexError(i, u.CharCount())
	}
	if len(u.offsets) == 0 {
		return 0, nil
	}
	return u.offsets[i], nil
}

// String returns the text as a Go string.
func (u *UString) String() string {
	return string(u.buf)
}

// Bytes returns a copy of the encoded text. The copy keeps callers from
// aliasing the live buffer; use AppendTo to avoid the allocation.
func (u *UString) Bytes() []byte {
	return append([]byte(nil), u.buf...)
}

// AppendTo appends the encoded text to dst and returns the extended slice.
func (u *UString) AppendTo(dst []byte) []byte {
	return append(dst, u.buf...)
}

// Runes returns the characters as a newly allocated slice.
func (u *UString) Runes() []rune {
	rs := make([]rune, 0, u.CharCount())
	for i := 0; i < u.CharCount(); i++ {
		r, _ := utf8.DecodeRune(u.buf[u.offsets[i]:u.offsets[i+1]])
		rs = append(rs, r)
	}
	return rs
}

// Clone returns an independent copy.
func (u *UString) Clone() *UString {
	c := &UString{
		buf:     append([]byte(nil), u.buf...),
		offsets: append([]int(nil), u.offsets...),
	}
	c.init()
	return c
}

// Write Operations

// PushChar appends a single character. Amortized O(1); the cost does not
// depend on the existing length.
func (u *UString) PushChar(c rune) error {
	if !utf8.ValidRune(c) {
		return scalarError(c)
	}
	if err := u.checkGrowth(utf8.RuneLen(c)); err != nil {
		return err
	}

	u.init()
	u.buf = utf8.AppendRune(u.buf, c)
	u.offsets = append(u.offsets, len(u.buf))
	return nil
}

// Append appends all of other's characters. O(len of other).
// Appending a string to itself is allowed.
func (u *UString) Append(other *UString) error {
	n := other.ByteLen()
	if err := u.checkGrowth(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	u.init()
	base := u.ByteLen()
	u.buf = append(u.buf, other.buf[:n]...)

	// Snapshot the entry count first: when other == u, the loop below must
	// read only the original entries.
	m := len(other.offsets)
	for i := 1; i < m; i++ {
		u.offsets = append(u.offsets, base+other.offsets[i])
	}
	return nil
}

// InsertCharAt inserts a character before index i; i may equal CharCount,
// which appends. Worst-case O(n): all bytes after the insertion point shift
// right, the documented trade-off of the contiguous-array layout.
func (u *UString) InsertCharAt(i int, c rune) error {
	if !utf8.ValidRune(c) {
		return scalarError(c)
	}
	if i < 0 || i > u.CharCount() {
		return indexError(i, u.CharCount())
	}

	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], c)
	if err := u.checkGrowth(n); err != nil {
		return err
	}

	u.init()
	at := u.offsets[i]

	u.buf = append(u.buf, enc[:n]...)
	copy(u.buf[at+n:], u.buf[at:])
	copy(u.buf[at:], enc[:n])

	u.offsets = append(u.offsets, 0)
	copy(u.offsets[i+1:], u.offsets[i:])
	for j := i + 1; j < len(u.offsets); j++ {
		u.offsets[j] += n
	}
	return nil
}

// InsertAt inserts all of other's characters before index i; i may equal
// CharCount. Worst-case O(n + m). Inserting a string into itself is allowed.
func (u *UString) InsertAt(i int, other *UString) error {
	if i < 0 || i > u.CharCount() {
		return indexError(i, u.CharCount())
	}

	ins := other.buf
	insOffsets := other.offsets
	if other == u {
		ins = append([]byte(nil), u.buf...)
		insOffsets = append([]int(nil), u.offsets...)
	}
	if len(insOffsets) == 0 {
		return nil
	}

	n := len(ins)
	if err := u.checkGrowth(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	u.init()
	at := u.offsets[i]

	u.buf = append(u.buf, ins...)
	copy(u.buf[at+n:], u.buf[at:])
	copy(u.buf[at:], ins)

	m := len(insOffsets) - 1
	u.offsets = append(u.offsets, make([]int, m)...)
	copy(u.offsets[i+m:], u.offsets[i:])
	// Entry i+m (the boundary between the last inserted character and the
	// old tail) comes from the shifted tail below, so the rebase stops at m-1.
	for k := 1; k < m; k++ {
		u.offsets[i+k] = at + insOffsets[k]
	}
	for j := i + m; j < len(u.offsets); j++ {
		u.offsets[j] += n
	}
	return nil
}

// RemoveCharAt removes the character at index i. Worst-case O(n) for the
// same reason as InsertCharAt.
func (u *UString) RemoveCharAt(i int) error {
	if i < 0 || i >= u.CharCount() {
		return indexError(i, u.CharCount())
	}

	lo, hi := u.offsets[i], u.offsets[i+1]
	n := hi - lo

	u.buf = append(u.buf[:lo], u.buf[hi:]...)

	copy(u.offsets[i+1:], u.offsets[i+2:])
	u.offsets = u.offsets[:len(u.offsets)-1]
	for j := i + 1; j < len(u.offsets); j++ {
		u.offsets[j] -= n
	}
	return nil
}

// RemoveRange removes the characters in [start, end). Worst-case O(n).
func (u *UString) RemoveRange(start, end int) error {
	if start < 0 || start > end || end > u.CharCount() {
		return rangeError(start, end, u.CharCount())
	}
	if start == end {
		return nil
	}

	lo, hi := u.offsets[start], u.offsets[end]
	n := hi - lo

	u.buf = append(u.buf[:lo], u.buf[hi:]...)

	removed := end - start
	copy(u.offsets[start+1:], u.offsets[end+1:])
	u.offsets = u.offsets[:len(u.offsets)-removed]
	for j := start + 1; j < len(u.offsets); j++ {
		u.offsets[j] -= n
	}
	return nil
}

// Derivations

// Slice returns a new independent UString holding the characters in
// [start, end). start may equal end, producing an empty string. Cost is
// proportional to the slice length; the offset index is rebased rather
// than rescanned.
func (u *UString) Slice(start, end int) (*UString, error) {
	if start < 0 || start > end || end > u.CharCount() {
		return nil, rangeError(start, end, u.CharCount())
	}
	if len(u.offsets) == 0 {
		return New(), nil
	}

	lo, hi := u.offsets[start], u.offsets[end]

	s := &UString{
		buf:     append([]byte(nil), u.buf[lo:hi]...),
		offsets: make([]int, end-start+1),
	}
	for k := range s.offsets {
		s.offsets[k] = u.offsets[start+k] - lo
	}
	return s, nil
}

// Concat returns a new independent UString holding u's characters followed
// by other's. Neither input is modified; no storage is shared.
func (u *UString) Concat(other *UString) *UString {
	c := &UString{
		buf:     make([]byte, 0, u.ByteLen()+other.ByteLen()),
		offsets: make([]int, 1, u.CharCount()+other.CharCount()+1),
	}
	c.buf = append(c.buf, u.buf...)
	c.buf = append(c.buf, other.buf...)

	for i := 1; i < len(u.offsets); i++ {
		c.offsets = append(c.offsets, u.offsets[i])
	}
	base := u.ByteLen()
	for i := 1; i < len(other.offsets); i++ {
		c.offsets = append(c.offsets, base+other.offsets[i])
	}
	return c
}

// Comparison

// Equal returns true if both strings hold the same text. UTF-8 encodes
// each scalar value exactly one way, so byte equality is character
// equality. O(min byte lengths).
func (u *UString) Equal(other *UString) bool {
	return bytes.Equal(u.buf, other.buf)
}

// Compare returns -1, 0, or 1 ordering u against other byte-wise, which
// for UTF-8 coincides with codepoint order.
func (u *UString) Compare(other *UString) int {
	return bytes.Compare(u.buf, other.buf)
}

// checkGrowth returns ErrCapacityOverflow if growing the byte buffer by n
// would exceed the platform's representable size.
func (u *UString) checkGrowth(n int) error {
	if n > maxInt-len(u.buf) {
		return ErrCapacityOverflow
	}
	return nil
}
