// Package quotemap decodes escaped string literals from shell-like eval
// contexts while preserving an invertible mapping from every decoded
// position back to the byte offset in the un-decoded source.
//
// Editor tooling (syntax highlighting, error reporting, rename ranges,
// hover) analyzes the decoded text but must point back at the original
// document. The offset table built during decoding makes that reverse
// mapping exact, including escapes that collapse several source bytes into
// one output byte and unknown escapes that pass through verbatim.
//
// # Basic Usage
//
// Create a preprocessor for the literal's span in the host document, decode
// its inner content, then resolve decoded offsets back into the host:
//
//	p := quotemap.New(quotemap.NewContentRange(5, 11))
//	if !p.Decode(`echo \"$x\"`) {
//	    // literal cannot be interpreted; treat the raw text as opaque
//	}
//
//	host := p.OffsetInHost(6) // host offset of `$` in the decoded text
//
// # Pure Decoding
//
// Decode is also available as a pure function when no host range is
// involved yet:
//
//	result, err := quotemap.Decode(`a\tb`)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Text())
package quotemap

import (
	"github.com/offsetlab/quotemap/pkg/decoder"
	"github.com/offsetlab/quotemap/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/offsetlab/quotemap" without subpackages.
type (
	// ContentRange is the literal's span inside the host document.
	ContentRange = types.ContentRange

	// HostPosition is a host offset rendered as 1-based line:column.
	HostPosition = types.HostPosition

	// Result is a decoded text plus its offset table.
	Result = decoder.Result
)

// Decode failure kinds, re-exported for errors.Is checks.
var (
	ErrUnterminatedEscape = decoder.ErrUnterminatedEscape
	ErrMalformedOctal     = decoder.ErrMalformedOctal
)

// NewContentRange builds a range from a host start offset and length.
func NewContentRange(start, length int) ContentRange {
	return types.NewContentRange(start, length)
}

// Decode translates recognized backslash escapes in src and returns the
// decoded text with its offset table. See pkg/decoder for the grammar.
func Decode(src string) (*Result, error) {
	return decoder.Decode(src)
}

// TextPreprocessor is the contract the host document layer consumes: decode
// a literal's content, then query reverse-mapped offsets and range
// containment.
type TextPreprocessor interface {
	// Decode processes the literal's inner content. It must succeed before
	// OffsetInHost can return meaningful values.
	Decode(content string) bool

	// OffsetInHost maps an offset in the decoded text to an absolute host
	// document offset, or -1 if the offset cannot be mapped.
	OffsetInHost(decodedOffset int) int

	// ContentRange returns the literal's span in the host document.
	ContentRange() types.ContentRange

	// ContainsRange reports whether the absolute span [start, end] lies
	// fully inside the literal's span.
	ContainsRange(start, end int) bool
}

// Preprocessor decodes one literal and answers offset queries against it.
// A Preprocessor belongs to a single decode session: create a fresh one per
// literal and do not share instances across goroutines without external
// serialization.
type Preprocessor struct {
	contentRange types.ContentRange
	result       *decoder.Result
}

var _ TextPreprocessor = (*Preprocessor)(nil)

// New creates a Preprocessor for a literal spanning contentRange in the
// host document.
func New(contentRange ContentRange) *Preprocessor {
	return &Preprocessor{contentRange: contentRange}
}

// Decode decodes the literal's inner content (quotes already stripped) and
// stores the result for later queries. It returns false if the content ends
// in an unterminated escape or contains a malformed octal escape; in that
// case every subsequent OffsetInHost query answers -1.
func (p *Preprocessor) Decode(content string) bool {
	result, err := decoder.Decode(content)
	if err != nil {
		p.result = nil
		return false
	}
	p.result = result
	return true
}

// Text returns the decoded text of the last successful Decode, or the empty
// string if none.
func (p *Preprocessor) Text() string {
	if p.result == nil {
		return ""
	}
	return p.result.Text()
}

// Result returns the decoded result of the last successful Decode, or nil.
func (p *Preprocessor) Result() *Result {
	return p.result
}

// OffsetInHost maps an offset in the decoded text to an absolute offset in
// the host document. It returns -1 for offsets outside [0, decoded length]
// and whenever no successful Decode has happened.
func (p *Preprocessor) OffsetInHost(decodedOffset int) int {
	if p.result == nil {
		return -1
	}
	return p.result.HostOffset(p.contentRange, decodedOffset)
}

// ContentRange returns the literal's span in the host document.
func (p *Preprocessor) ContentRange() ContentRange {
	return p.contentRange
}

// ContainsRange reports whether the absolute span [start, end] lies fully
// inside the literal's span. Only range geometry is consulted; no decoding
// state is involved.
func (p *Preprocessor) ContainsRange(start, end int) bool {
	return p.contentRange.ContainsRange(start, end)
}
