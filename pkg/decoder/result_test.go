package decoder

import (
	"testing"

	"github.com/offsetlab/quotemap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultHostOffset(t *testing.T) {
	// Literal `\n` occupies host offsets [10, 12).
	contentRange := types.NewContentRange(10, 2)

	result, err := Decode(`\n`)
	require.NoError(t, err)

	assert.Equal(t, 10, result.HostOffset(contentRange, 0))
	// End-of-input entry is 2, equal to the range length, so the result is
	// exactly start+length.
	assert.Equal(t, 12, result.HostOffset(contentRange, 1))
}

func TestResultHostOffsetClamp(t *testing.T) {
	// A range shorter than the source: raw table entries past the length
	// clamp to start+length rather than pointing outside the literal.
	contentRange := types.NewContentRange(100, 1)

	result, err := Decode("ab")
	require.NoError(t, err)

	assert.Equal(t, 100, result.HostOffset(contentRange, 0))
	assert.Equal(t, 101, result.HostOffset(contentRange, 1))
	assert.Equal(t, 101, result.HostOffset(contentRange, 2), "raw entry 2 must clamp to the range length")
}

func TestResultHostOffsetInvalid(t *testing.T) {
	contentRange := types.NewContentRange(5, 4)

	result, err := Decode("text")
	require.NoError(t, err)

	assert.Equal(t, -1, result.HostOffset(contentRange, -1))
	assert.Equal(t, -1, result.HostOffset(contentRange, result.Len()+1))
	assert.Equal(t, -1, result.HostOffset(contentRange, 9999))
}

func TestResultSourceOffsetBounds(t *testing.T) {
	result, err := Decode(`a\tb`)
	require.NoError(t, err)

	assert.Equal(t, Unmapped, result.SourceOffset(-1))
	assert.Equal(t, Unmapped, result.SourceOffset(result.Len()+1))
	assert.Equal(t, 0, result.SourceOffset(0))
	assert.Equal(t, 4, result.SourceOffset(result.Len()))
}

func TestResultTableIsACopy(t *testing.T) {
	result, err := Decode("abc")
	require.NoError(t, err)

	table := result.Table()
	table[0] = 999

	assert.Equal(t, 0, result.SourceOffset(0), "mutating the returned table must not affect the result")
}
