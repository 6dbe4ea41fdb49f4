// Package textbuf provides a thread-safe text buffer built on top of the
// indexed Unicode string in package ustr. It is the ownership layer the
// core structure requires: every mutation happens under an exclusive lock,
// so no reader can observe a partially updated pair of buffers.
//
// The textbuf package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Character-addressed editing (insert, delete, replace, batch edits)
//   - Read-only snapshots for concurrent access
//   - Revision tracking for change management
//   - Optional Unicode normalization of incoming text
//
// Basic usage:
//
//	buf, err := textbuf.NewFromString("Hello, World!")
//	if err != nil {
//		// input was not valid UTF-8
//	}
//
//	// Insert at a character offset
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//
//	// Delete a character range
//	buf.Delete(0, 7)  // "Beautiful World!"
//
//	// Get a snapshot for concurrent reading
//	snap := buf.Snapshot()
//	go func() {
//	    text := snap.Text()
//	    // Process text...
//	}()
//
// All offsets in this package are character offsets, not byte offsets: the
// underlying offset index makes character addressing as cheap as byte
// addressing, and it cannot be used to split a multi-byte character.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// write operations acquire an exclusive write lock. For multiple reads
// without intervening writes, use Snapshot() to obtain a consistent
// read-only view.
package textbuf
