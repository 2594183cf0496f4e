package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/offsetlab/quotemap/pkg/decoder"
	"github.com/offsetlab/quotemap/pkg/types"
)

var (
	decodeStart    int
	decodeLength   int
	decodeFormat   string
	decodeHostFile string
	decodeOffsets  bool
	decodeColor    string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [literal]",
	Short: "Decode an escaped literal",
	Long: `Decode the inner content of a quoted literal (quotes already stripped) and
print the run-time text together with its source offset mapping.

The literal is taken from the argument, or from stdin when no argument is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().IntVar(&decodeStart, "start", 0, "Host offset where the literal content starts")
	decodeCmd.Flags().IntVar(&decodeLength, "length", -1, "Length of the literal content in the host document (defaults to input length)")
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "human", "Output format: human, json")
	decodeCmd.Flags().StringVar(&decodeHostFile, "host-file", "", "Host document path, used to render mapped offsets as line:column")
	decodeCmd.Flags().BoolVar(&decodeOffsets, "offsets", false, "Dump the full offset table")
	decodeCmd.Flags().StringVar(&decodeColor, "color", "auto", "Color output: auto, always, never")
}

// styles holds color formatters for human decode output
type styles struct {
	heading *color.Color
	literal *color.Color
	offset  *color.Color
	invalid *color.Color
}

// newStyles creates color formatters; enabled=false disables all of them
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		literal: color.New(color.FgYellow),
		offset:  color.New(color.FgHiBlue),
		invalid: color.New(color.FgHiRed),
	}

	if !enabled {
		s.heading.DisableColor()
		s.literal.DisableColor()
		s.offset.DisableColor()
		s.invalid.DisableColor()
	}

	return s
}

// colorEnabled resolves the --color mode. The color package already turns
// itself off for non-terminals and NO_COLOR, which "auto" inherits.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

// decodeOutput is the JSON shape of a single decode.
type decodeOutput struct {
	Decoded string      `json:"decoded"`
	Offsets []int       `json:"offsets"`
	Range   rangeOutput `json:"range"`
	HostEnd int         `json:"host_end"`
}

type rangeOutput struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	content, err := decodeInput(cmd, args)
	if err != nil {
		return err
	}

	length := decodeLength
	if length < 0 {
		length = len(content)
	}
	contentRange := types.NewContentRange(decodeStart, length)

	result, err := decoder.Decode(content)
	if err != nil {
		return fmt.Errorf("decoding literal: %w", err)
	}

	log.Debug().
		Int("source_len", len(content)).
		Int("decoded_len", result.Len()).
		Int("host_start", contentRange.Start).
		Msg("decoded literal")

	switch decodeFormat {
	case "json":
		return outputDecodeJSON(cmd, result, contentRange)
	case "human":
		return outputDecodeHuman(cmd, result, contentRange)
	default:
		return fmt.Errorf("unknown output format: %s", decodeFormat)
	}
}

// decodeInput takes the literal from the argument or from stdin.
func decodeInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func outputDecodeJSON(cmd *cobra.Command, result *decoder.Result, contentRange types.ContentRange) error {
	out := decodeOutput{
		Decoded: result.Text(),
		Offsets: result.Table(),
		Range:   rangeOutput{Start: contentRange.Start, Length: contentRange.Length},
		HostEnd: result.HostOffset(contentRange, result.Len()),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputDecodeHuman(cmd *cobra.Command, result *decoder.Result, contentRange types.ContentRange) error {
	out := cmd.OutOrStdout()
	s := newStyles(colorEnabled(decodeColor))

	// Host document content, when available, renders offsets as line:column.
	var hostContent []byte
	if decodeHostFile != "" {
		data, err := os.ReadFile(decodeHostFile)
		if err != nil {
			return fmt.Errorf("reading host file: %w", err)
		}
		hostContent = data
	}

	fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("Decoded:"), s.literal.Sprintf("%q", result.Text()))
	fmt.Fprintf(out, "%s host [%d, %d)\n", s.heading.Sprint("Range:"), contentRange.Start, contentRange.End())

	if !decodeOffsets {
		return nil
	}

	fmt.Fprintln(out, s.heading.Sprint("Offsets:"))
	for i := 0; i <= result.Len(); i++ {
		host := result.HostOffset(contentRange, i)
		if host < 0 {
			fmt.Fprintf(out, "  %3d -> %s\n", i, s.invalid.Sprint("unmapped"))
			continue
		}
		if hostContent != nil {
			pos := types.PositionAt(hostContent, host)
			fmt.Fprintf(out, "  %3d -> %s\n", i, s.offset.Sprintf("host %d (%d:%d)", host, pos.Line, pos.Column))
			continue
		}
		fmt.Fprintf(out, "  %3d -> %s\n", i, s.offset.Sprintf("host %d", host))
	}
	return nil
}
