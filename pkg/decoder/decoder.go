// Package decoder turns the escaped inner content of a quoted literal into
// its run-time text while recording, for every decoded position, the byte
// offset in the original source that produced it.
//
// The recognized escape grammar is fixed: \n \r \t \v \b \a, the literal
// escapes \$ \" \' \\, and the two-digit octal form \0NN. Any other
// backslash sequence passes through verbatim. The offset table the decoder
// builds is invertible: editor tooling that analyzes the decoded text can
// map any position in it back to the un-decoded source.
package decoder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decode failure kinds, tested with errors.Is. Both mean the literal cannot
// be interpreted; callers fall back to treating the raw text as opaque.
var (
	// ErrUnterminatedEscape reports a trailing backslash with no character
	// after it.
	ErrUnterminatedEscape = errors.New("unterminated escape")

	// ErrMalformedOctal reports a \0 escape that is not followed by exactly
	// two octal digits.
	ErrMalformedOctal = errors.New("malformed octal escape")
)

// Decode scans src left to right, translating recognized backslash escapes
// into their literal byte values and leaving everything else unchanged. It
// returns the decoded text together with its offset table, or an error
// wrapping ErrUnterminatedEscape or ErrMalformedOctal. On error no partial
// result is returned.
//
// src is the literal's inner content; surrounding quotes must already be
// stripped by the caller. Empty input is valid and decodes to empty output.
func Decode(src string) (*Result, error) {
	// Scratch table sized for the source: every escape consumes at least as
	// many source bytes as it emits, so decoded length never exceeds source
	// length. Truncated to decoded length + 1 before returning.
	offsets := make([]int, len(src)+1)
	for i := range offsets {
		offsets[i] = Unmapped
	}

	// Escape-free sources map one to one.
	if !strings.Contains(src, `\`) {
		for i := range offsets {
			offsets[i] = i
		}
		return &Result{decoded: src, offsets: offsets}, nil
	}

	var out strings.Builder
	out.Grow(len(src))

	index := 0
	for index < len(src) {
		c := src[index]
		index++

		// Bracket the unit about to be emitted: the next output position
		// maps to this source byte, and the one after it to the following
		// source byte. The closing write below overwrites the second entry
		// whenever an escape consumes more than one byte.
		offsets[out.Len()] = index - 1
		offsets[out.Len()+1] = index

		if c != '\\' {
			out.WriteByte(c)
			continue
		}

		if index == len(src) {
			return nil, fmt.Errorf("%w at offset %d", ErrUnterminatedEscape, index-1)
		}

		c = src[index]
		index++

		switch c {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'v':
			out.WriteByte(0x0B)
		case 'b':
			out.WriteByte('\b')
		case 'a':
			out.WriteByte(0x07)
		case '$', '"', '\'', '\\':
			out.WriteByte(c)
		case '0':
			// Fixed two-digit form \0NN. Bash allows one to three octal
			// digits; widening this is a known followup.
			if index+2 > len(src) {
				return nil, fmt.Errorf("%w at offset %d: need two octal digits", ErrMalformedOctal, index-2)
			}
			v, err := strconv.ParseUint(src[index:index+2], 8, 8)
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d: %q is not a two-digit octal number", ErrMalformedOctal, index-2, src[index:index+2])
			}
			out.WriteByte(byte(v))
			index += 2
		default:
			// Unrecognized escapes do not change the content.
			out.WriteByte('\\')
			out.WriteByte(c)
		}

		// Close the bracket: the position after whatever was just emitted
		// maps to the source offset past the full escape sequence.
		offsets[out.Len()] = index
	}

	decoded := out.String()
	return &Result{decoded: decoded, offsets: offsets[:len(decoded)+1]}, nil
}
