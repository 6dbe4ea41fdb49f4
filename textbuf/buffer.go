package textbuf

import (
	"errors"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/unistring/ustr"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("character offset out of range")
	ErrRangeInvalid     = errors.New("invalid character range")
	ErrEditsOverlap     = errors.New("edits overlap or are not in reverse order")
)

// Buffer wraps a ustr.UString with exclusive-mutation guarantees.
// It provides the primary interface for character-addressed editing.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	str        *ustr.UString
	revisionID RevisionID
	capacity   int
	normalize  bool
	form       norm.Form
}

// New creates a new empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		revisionID: NewRevisionID(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.capacity > 0 {
		b.str = ustr.NewWithCapacity(b.capacity)
	} else {
		b.str = ustr.New()
	}
	return b
}

// NewFromString creates a buffer with initial content.
// Returns an error wrapping ustr.ErrInvalidUTF8 if the content is not
// well-formed UTF-8.
func NewFromString(s string, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	str, err := ustr.FromString(b.normalizeText(s))
	if err != nil {
		return nil, err
	}
	b.str = str
	return b, nil
}

// normalizeText applies the configured normalization form, if any.
func (b *Buffer) normalizeText(s string) string {
	if !b.normalize {
		return s
	}
	return b.form.String(s)
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.str.String()
}

// TextRange returns the text of the characters in [start, end).
func (b *Buffer) TextRange(start, end CharOffset) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, err := b.str.Slice(start, end)
	if err != nil {
		return "", ErrRangeInvalid
	}
	return s.String(), nil
}

// CharCount returns the number of characters in the buffer.
func (b *Buffer) CharCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.str.CharCount()
}

// ByteLen returns the encoded length of the buffer in bytes.
func (b *Buffer) ByteLen() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.str.ByteLen()
}

// CharAt returns the character at the given offset.
func (b *Buffer) CharAt(offset CharOffset) (rune, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, err := b.str.CharAt(offset)
	if err != nil {
		return 0, ErrOffsetOutOfRange
	}
	return r, nil
}

// Runes returns the buffer content as a newly allocated rune slice.
func (b *Buffer) Runes() []rune {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.str.Runes()
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.str.IsEmpty()
}

// Write Operations

// Insert inserts text at the given character offset.
// Returns the character offset just past the inserted text.
func (b *Buffer) Insert(offset CharOffset, text string) (CharOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > b.str.CharCount() {
		return 0, ErrOffsetOutOfRange
	}

	ins, err := ustr.FromString(b.normalizeText(text))
	if err != nil {
		return 0, err
	}
	if err := b.str.InsertAt(offset, ins); err != nil {
		return 0, err
	}
	b.revisionID = NewRevisionID()

	return offset + ins.CharCount(), nil
}

// AppendChar appends a single character to the end of the buffer.
func (b *Buffer) AppendChar(c rune) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.str.PushChar(c); err != nil {
		return err
	}
	b.revisionID = NewRevisionID()
	return nil
}

// Delete removes the characters in [start, end).
func (b *Buffer) Delete(start, end CharOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.str.CharCount() {
		return ErrRangeInvalid
	}

	if err := b.str.RemoveRange(start, end); err != nil {
		return ErrRangeInvalid
	}
	b.revisionID = NewRevisionID()

	return nil
}

// Replace replaces the characters in [start, end) with new text.
// Returns the character offset just past the replacement text.
// The new content is assembled off to the side and swapped in whole, so a
// failure leaves the buffer exactly as it was.
func (b *Buffer) Replace(start, end CharOffset, text string) (CharOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := b.replaceLocked(start, end, text)
	if err != nil {
		return 0, err
	}
	b.revisionID = NewRevisionID()
	return next, nil
}

// replaceLocked performs a replace with the write lock held.
func (b *Buffer) replaceLocked(start, end CharOffset, text string) (CharOffset, error) {
	if start < 0 || start > end || end > b.str.CharCount() {
		return 0, ErrRangeInvalid
	}

	ins, err := ustr.FromString(b.normalizeText(text))
	if err != nil {
		return 0, err
	}

	left, err := b.str.Slice(0, start)
	if err != nil {
		return 0, ErrRangeInvalid
	}
	right, err := b.str.Slice(end, b.str.CharCount())
	if err != nil {
		return 0, ErrRangeInvalid
	}

	b.str = left.Concat(ins).Concat(right)
	return start + ins.CharCount(), nil
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End ||
		edit.Range.End > b.str.CharCount() {
		return EditResult{}, ErrRangeInvalid
	}

	old, err := b.str.Slice(edit.Range.Start, edit.Range.End)
	if err != nil {
		return EditResult{}, ErrRangeInvalid
	}
	oldText := old.String()

	next, err := b.replaceLocked(edit.Range.Start, edit.Range.End, edit.NewText)
	if err != nil {
		return EditResult{}, err
	}
	b.revisionID = NewRevisionID()

	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: next},
		OldText:  oldText,
		Delta:    (next - edit.Range.Start) - edit.Range.Len(),
	}, nil
}

// ApplyEdits applies multiple edits atomically.
// Edits must be in reverse order (highest offset first) so earlier edits do
// not move the ranges of later ones.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Validate edits are in reverse order and non-overlapping
	for i := 1; i < len(edits); i++ {
		if edits[i].Range.End > edits[i-1].Range.Start {
			return ErrEditsOverlap
		}
	}

	// Validate all ranges and all replacement text before touching the
	// buffer, so the batch either applies in full or not at all.
	count := b.str.CharCount()
	for _, edit := range edits {
		if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End ||
			edit.Range.End > count {
			return ErrRangeInvalid
		}
		if _, err := ustr.FromString(b.normalizeText(edit.NewText)); err != nil {
			return err
		}
	}

	// Apply edits in reverse order
	for _, edit := range edits {
		if _, err := b.replaceLocked(edit.Range.Start, edit.Range.End, edit.NewText); err != nil {
			return err
		}
	}

	b.revisionID = NewRevisionID()
	return nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines. Unlike the buffer
// itself, a snapshot never changes, so it also exposes iterators.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{
		str:        b.str.Clone(), // UString is mutable, so snapshots copy
		revisionID: b.revisionID,
	}
}
