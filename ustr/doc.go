// Package ustr provides an indexed Unicode string with constant-time
// character access.
//
// A UString pairs a UTF-8 byte buffer with an offset index recording every
// codepoint boundary. The index converts the O(n) scan that variable-width
// encodings normally require into a single table lookup, so CharAt is O(1)
// regardless of position or length. Both buffers are maintained in lock-step
// under every mutation; a failed operation leaves the value untouched.
//
// Key properties:
//   - O(1) CharAt, CharCount, and ByteLen
//   - Amortized O(1) PushChar; O(m) Append
//   - O(n) worst-case interior InsertCharAt/RemoveCharAt (contiguous-array
//     trade-off; a rope or gap-buffer backing is a possible extension for
//     edit-heavy workloads)
//   - Slice and Concat produce independent copies; no shared storage
//   - Validation at every boundary: construction scans the whole input,
//     mutations validate only the bytes they introduce
//
// Basic usage:
//
//	s, err := ustr.FromString("aé日")
//	if err != nil {
//		// input was not valid UTF-8
//	}
//	s.CharCount()   // 3
//	s.ByteLen()     // 6
//	s.CharAt(2)     // '日', nil
//
// UString is not safe for concurrent mutation. Multiple readers are safe
// only in the absence of writers; see package textbuf for a lock-guarded
// wrapper with snapshots.
package ustr
