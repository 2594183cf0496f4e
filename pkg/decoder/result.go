package decoder

import "github.com/offsetlab/quotemap/pkg/types"

// Unmapped marks a decoded position with no attributable source offset.
const Unmapped = -1

// Result is the outcome of one successful decode: the literal run-time text
// and the offset table mapping every decoded position back into the source.
// Results are immutable; a re-decode produces a fresh value.
type Result struct {
	decoded string
	offsets []int // len == len(decoded)+1, entries are source offsets or Unmapped
}

// Text returns the decoded text.
func (r *Result) Text() string {
	return r.decoded
}

// Len returns the length of the decoded text in bytes.
func (r *Result) Len() int {
	return len(r.decoded)
}

// SourceOffset maps a decoded offset to its byte offset in the un-decoded
// source text. Offsets in [0, Len()] are meaningful; the entry at Len() is
// the source offset just past the last decoded byte. Out-of-bounds offsets
// and positions with no attributable source return Unmapped.
func (r *Result) SourceOffset(decodedOffset int) int {
	if decodedOffset < 0 || decodedOffset >= len(r.offsets) {
		return Unmapped
	}
	return r.offsets[decodedOffset]
}

// HostOffset maps a decoded offset to an absolute offset in the host
// document, given the literal's content range. The source offset is clamped
// to the range length so the end-of-input entry never points past the
// literal's span. Unmappable offsets return -1; no valid host offset is
// ever negative.
func (r *Result) HostOffset(contentRange types.ContentRange, decodedOffset int) int {
	src := r.SourceOffset(decodedOffset)
	if src == Unmapped {
		return -1
	}
	if src > contentRange.Length {
		src = contentRange.Length
	}
	return contentRange.Start + src
}

// Table returns a copy of the offset table. Its length is always
// Len() + 1; unmappable entries hold Unmapped.
func (r *Result) Table() []int {
	table := make([]int, len(r.offsets))
	copy(table, r.offsets)
	return table
}
