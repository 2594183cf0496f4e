package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/offsetlab/quotemap/pkg/batch"
)

var (
	batchFormat  string
	batchWorkers int
	batchColor   string
)

var batchCmd = &cobra.Command{
	Use:   "batch <corpus.yaml>",
	Short: "Decode a YAML corpus of literals",
	Long: `Decode every literal in a YAML corpus file and report the results.

A corpus lists literal contents with their content ranges:

  items:
    - name: greeting
      content: 'echo \"hi\"'
      range:
        start: 6
        length: 11`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchFormat, "format", "human", "Output format: human, json")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Number of concurrent decode workers")
	batchCmd.Flags().StringVar(&batchColor, "color", "auto", "Color output: auto, always, never")
}

func runBatch(cmd *cobra.Command, args []string) error {
	items, err := batch.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	log.Debug().Int("items", len(items)).Int("workers", batchWorkers).Msg("decoding corpus")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := batch.Run(ctx, items, batchWorkers)
	if err != nil {
		return fmt.Errorf("decoding corpus: %w", err)
	}

	switch batchFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "human":
		return outputBatchHuman(cmd, results)
	default:
		return fmt.Errorf("unknown output format: %s", batchFormat)
	}
}

func outputBatchHuman(cmd *cobra.Command, results []batch.ItemResult) error {
	out := cmd.OutOrStdout()
	s := newStyles(colorEnabled(batchColor))

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			fmt.Fprintf(out, "%s %s\n", s.heading.Sprintf("%s:", r.Name), s.invalid.Sprint(r.Error))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", s.heading.Sprintf("%s:", r.Name), s.literal.Sprintf("%q", r.Decoded))
	}

	fmt.Fprintf(out, "\n%d items, %d failed\n", len(results), failed)
	return nil
}
