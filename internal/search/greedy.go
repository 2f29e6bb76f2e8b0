package search

import (
	"context"
	"fmt"

	"github.com/samcharles93/seqgen/internal/model"
)

// GreedyDecoder produces a single hypothesis by taking the argmax token at
// every step.
type GreedyDecoder struct {
	Model  model.Decoder
	Params Params
}

// Decode runs greedy decoding from the given encoder state. The output
// buffer is pre-filled with pad, position 0 holds the start token, and
// generation stops early on end-of-sequence or after MaxLen-1 tokens.
// The returned slice excludes the start token and keeps its pad tail.
func (g *GreedyDecoder) Decode(ctx context.Context, st model.State) ([]int, error) {
	p := g.Params
	out := make([]int, p.MaxLen)
	for i := range out {
		out[i] = p.PAD
	}
	out[0] = p.BOS

	cur := p.BOS
	for t := 1; t < p.MaxLen; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logits, next, err := g.Model.Step(ctx, cur, st)
		if err != nil {
			return nil, fmt.Errorf("decoder step %d: %w", t, err)
		}
		tok := argmax(logits)
		out[t] = tok
		cur = tok
		st = next

		if tok == p.EOS {
			break
		}
	}

	return out[1:], nil
}

// argmax returns the index of the largest logit. Ties resolve to the lowest
// index, matching the top-k ordering used by beam search.
func argmax(logits []float32) int {
	best := 0
	for i := 1; i < len(logits); i++ {
		if logits[i] > logits[best] {
			best = i
		}
	}
	return best
}
