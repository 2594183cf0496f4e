package types

// HostPosition is an absolute byte offset in the host document together
// with its rendered line:column form (1-based).
type HostPosition struct {
	Offset int
	Line   int
	Column int
}

// ComputeLineColumn computes line and column numbers from a byte offset in
// the host document content. Lines and columns are 1-indexed (first line is
// 1, first column is 1). Offsets past the end of content clamp to the final
// position.
func ComputeLineColumn(content []byte, byteOffset int) (line, column int) {
	line = 1
	column = 1
	for i := 0; i < byteOffset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// PositionAt resolves a host byte offset into a HostPosition within content.
// A negative offset yields an invalid position with Offset -1.
func PositionAt(content []byte, byteOffset int) HostPosition {
	if byteOffset < 0 {
		return HostPosition{Offset: -1}
	}
	line, column := ComputeLineColumn(content, byteOffset)
	return HostPosition{Offset: byteOffset, Line: line, Column: column}
}
