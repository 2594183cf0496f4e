package types

// ContentRange is the span a literal's inner content occupies inside the
// host document, measured in host byte offsets. The zero value is an empty
// range at offset 0. Values are immutable; construct a new one instead of
// mutating.
type ContentRange struct {
	Start  int
	Length int
}

// NewContentRange builds a range from a start offset and length.
func NewContentRange(start, length int) ContentRange {
	return ContentRange{Start: start, Length: length}
}

// End returns the host offset one past the last content byte.
func (r ContentRange) End() int {
	return r.Start + r.Length
}

// Contains reports whether the absolute host offset lies within the range,
// end offset included. The end is included so that a caret sitting directly
// after the literal still resolves against it.
func (r ContentRange) Contains(offset int) bool {
	return offset >= r.Start && offset <= r.End()
}

// ContainsRange reports whether the absolute span [start, end] lies fully
// within the range.
func (r ContentRange) ContainsRange(start, end int) bool {
	return start >= r.Start && end <= r.End()
}
