package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDecodeFlags() {
	decodeStart = 0
	decodeLength = -1
	decodeFormat = "human"
	decodeHostFile = ""
	decodeOffsets = false
	decodeColor = "never"
}

func TestRunDecodeHuman(t *testing.T) {
	resetDecodeFlags()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runDecode(cmd, []string{`a\tb`})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"a\tb"`)
	assert.Contains(t, output, "host [0, 4)")
	assert.NotContains(t, output, "Offsets:")
}

func TestRunDecodeJSON(t *testing.T) {
	resetDecodeFlags()
	decodeFormat = "json"
	decodeStart = 6
	decodeLength = 4

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runDecode(cmd, []string{`a\tb`})
	require.NoError(t, err)

	var out decodeOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "a\tb", out.Decoded)
	assert.Equal(t, []int{0, 1, 3, 4}, out.Offsets)
	assert.Equal(t, 6, out.Range.Start)
	assert.Equal(t, 4, out.Range.Length)
	assert.Equal(t, 10, out.HostEnd)
}

func TestRunDecodeOffsetsDump(t *testing.T) {
	resetDecodeFlags()
	decodeOffsets = true
	decodeStart = 6
	decodeLength = 4

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runDecode(cmd, []string{`a\tb`})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Offsets:")
	assert.Contains(t, output, "host 6")
	assert.Contains(t, output, "host 10")
}

func TestRunDecodeHostFilePositions(t *testing.T) {
	resetDecodeFlags()
	decodeOffsets = true

	// Literal a\tb starting at offset 10 of the host document, on line 2.
	tmpDir := t.TempDir()
	hostPath := filepath.Join(tmpDir, "script.sh")
	hostDoc := "x=1\neval \"a\\tb\"\n"
	require.NoError(t, os.WriteFile(hostPath, []byte(hostDoc), 0644))

	decodeHostFile = hostPath
	decodeStart = 10
	decodeLength = 4

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runDecode(cmd, []string{`a\tb`})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "host 10 (2:7)")
	assert.Contains(t, output, "host 14 (2:11)")
}

func TestRunDecodeFromStdin(t *testing.T) {
	resetDecodeFlags()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader(`echo \"hi\"`))

	err := runDecode(cmd, []string{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"echo \"hi\""`)
}

func TestRunDecodeFailure(t *testing.T) {
	resetDecodeFlags()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runDecode(cmd, []string{`oops\`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated escape")
}

func TestRunDecodeUnknownFormat(t *testing.T) {
	resetDecodeFlags()
	decodeFormat = "xml"

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runDecode(cmd, []string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunDecodeMissingHostFile(t *testing.T) {
	resetDecodeFlags()
	decodeOffsets = true
	decodeHostFile = filepath.Join(t.TempDir(), "missing.sh")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runDecode(cmd, []string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading host file")
}
