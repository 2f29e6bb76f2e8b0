// Package decoding orchestrates end-to-end generation: it batches text
// inputs through the tokenizer and encoder collaborators, runs the selected
// search strategy per item, and converts the winning token sequences back
// to text.
package decoding

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/samcharles93/seqgen/internal/logger"
	"github.com/samcharles93/seqgen/internal/model"
	"github.com/samcharles93/seqgen/internal/search"
	"github.com/samcharles93/seqgen/internal/tokenizer"
)

// Mode selects the search strategy.
type Mode string

const (
	ModeGreedy Mode = "greedy"
	ModeBeam   Mode = "beam"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGreedy, ModeBeam:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown search mode %q (want greedy or beam)", s)
	}
}

// Result is the outcome for one batch item. Items fail independently: a
// decoder failure on one input never aborts its batch siblings.
type Result struct {
	Text     string
	TokenIDs []int
	Err      error
}

// Driver wires the collaborators together.
type Driver struct {
	Model     model.Seq2Seq
	Tokenizer tokenizer.Tokenizer
	Mode      Mode
	Params    search.Params

	// Parallel bounds the number of items decoded concurrently. Values
	// below 2 keep the driver fully sequential. Items share no mutable
	// state, so this is safe whenever the model's Step is reentrant.
	Parallel int

	Log logger.Logger
}

// Generate decodes a single input to text.
func (d *Driver) Generate(ctx context.Context, input string) (string, error) {
	results, err := d.GenerateBatch(ctx, []string{input})
	if err != nil {
		return "", err
	}
	if results[0].Err != nil {
		return "", results[0].Err
	}
	return results[0].Text, nil
}

// GenerateBatch decodes every input. The returned slice always has one
// Result per input; per-item failures are recorded on the Result. A non-nil
// error is returned only for batch-level failures (tokenization or the
// encoder call).
func (d *Driver) GenerateBatch(ctx context.Context, inputs []string) ([]Result, error) {
	log := d.log()

	batch := make([][]int, len(inputs))
	for i, text := range inputs {
		ids, err := d.Tokenizer.Encode(text)
		if err != nil {
			return nil, fmt.Errorf("encode input %d: %w", i, err)
		}
		batch[i] = ids
	}

	states, err := d.Model.EncodeBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}
	if len(states) != len(inputs) {
		return nil, fmt.Errorf("encoder returned %d states for %d inputs", len(states), len(inputs))
	}

	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	limit := d.Parallel
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i := range states {
		g.Go(func() error {
			results[i] = d.decodeItem(gctx, states[i])
			if results[i].Err != nil {
				log.Warn("item failed", "index", i, "err", results[i].Err)
			}
			return nil
		})
	}
	// Item errors land in results, so the group itself never fails.
	_ = g.Wait()

	return results, nil
}

func (d *Driver) decodeItem(ctx context.Context, st model.State) Result {
	var (
		ids []int
		err error
	)
	switch d.Mode {
	case ModeBeam:
		dec := &search.BeamDecoder{Model: d.Model, Params: d.Params}
		ids, err = dec.Decode(ctx, st)
	default:
		dec := &search.GreedyDecoder{Model: d.Model, Params: d.Params}
		ids, err = dec.Decode(ctx, st)
	}
	if err != nil {
		return Result{Err: err}
	}

	text, err := d.Tokenizer.Decode(ids)
	if err != nil {
		return Result{TokenIDs: ids, Err: fmt.Errorf("detokenize: %w", err)}
	}
	return Result{Text: text, TokenIDs: ids}
}

func (d *Driver) log() logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Default()
}
