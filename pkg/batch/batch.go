// Package batch decodes a corpus of escaped literals in one pass. Corpora
// are YAML files listing literal contents with their spans in the host
// document, typically captured from a parser run for regression checking.
package batch

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/offsetlab/quotemap/pkg/decoder"
	"github.com/offsetlab/quotemap/pkg/types"
)

// Item is one literal to decode: its inner content (quotes stripped) and
// its content range in the host document. When the corpus omits the range,
// it defaults to (0, len(content)).
type Item struct {
	Name    string
	Content string
	Range   types.ContentRange
}

// ItemResult is the decode outcome for one corpus item. Exactly one of the
// decoded fields or Error is populated.
type ItemResult struct {
	Name    string `json:"name"`
	Decoded string `json:"decoded"`
	Offsets []int  `json:"offsets,omitempty"`
	HostEnd int    `json:"host_end"`
	Error   string `json:"error,omitempty"`
}

// Load parses a corpus from YAML bytes.
func Load(data []byte) ([]Item, error) {
	var corpus yamlCorpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(corpus.Items) == 0 {
		return nil, fmt.Errorf("no items found in corpus")
	}

	items := make([]Item, 0, len(corpus.Items))
	for i, y := range corpus.Items {
		name := y.Name
		if name == "" {
			name = fmt.Sprintf("item-%d", i)
		}
		r := types.NewContentRange(0, len(y.Content))
		if y.Range != nil {
			r = types.NewContentRange(y.Range.Start, y.Range.Length)
		}
		items = append(items, Item{
			Name:    name,
			Content: y.Content,
			Range:   r,
		})
	}
	return items, nil
}

// LoadFile parses a corpus from a YAML file path.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Load(data)
}

// Run decodes all items with up to workers concurrent decoders and returns
// one result per item, in corpus order. Individual decode failures are
// recorded in the item's result, not returned as an error; Run itself only
// fails when the context is canceled.
func Run(ctx context.Context, items []Item, workers int) ([]ItemResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]ItemResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = decodeItem(item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func decodeItem(item Item) ItemResult {
	res := ItemResult{Name: item.Name, HostEnd: -1}

	result, err := decoder.Decode(item.Content)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Decoded = result.Text()
	res.Offsets = result.Table()
	res.HostEnd = result.HostOffset(item.Range, result.Len())
	return res
}
