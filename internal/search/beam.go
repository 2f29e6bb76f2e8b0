package search

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/samcharles93/seqgen/internal/model"
)

// BeamDecoder keeps the BeamWidth best hypotheses alive per step and returns
// the best finished one.
type BeamDecoder struct {
	Model  model.Decoder
	Params Params
}

// Decode runs beam search from the given encoder state.
//
// The frontier is seeded with a single root hypothesis. Each step drains the
// frontier best-first: hypotheses ending in end-of-sequence move to the
// finished set, the rest expand into their BeamWidth best continuations.
// Candidate step costs are -log(softmax) over the top-BeamWidth logits, and
// children are ranked by the scoring policy before re-entering the frontier.
// The loop ends after MaxLen steps or when no live hypothesis remains.
//
// Selection prefers the minimum-score finished hypothesis; if nothing
// finished, the best live hypothesis is returned instead. The output
// excludes the start token.
func (b *BeamDecoder) Decode(ctx context.Context, st model.State) ([]int, error) {
	p := b.Params
	scorer := p.scorer()

	front := newFrontier(p.BeamWidth)
	front.push(0, newRoot(p.BOS, st))
	var done finishedSet

	batch := make([]entry, 0, p.BeamWidth)

	for t := 0; t < p.MaxLen && front.len() > 0; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch = batch[:0]
		for len(batch) < p.BeamWidth && front.len() > 0 {
			score, node, err := front.pop()
			if err != nil {
				return nil, err
			}
			batch = append(batch, entry{score: score, node: node})
		}

		for _, cur := range batch {
			if cur.node.last() == p.EOS {
				done.add(cur.score, cur.node)
				continue
			}

			logits, next, err := b.Model.Step(ctx, cur.node.last(), cur.node.State)
			if err != nil {
				return nil, fmt.Errorf("decoder step %d: %w", t, err)
			}

			cands := topK(logits, p.BeamWidth)
			costs := stepCosts(logits, cands)
			for k, tok := range cands {
				child := cur.node.extend(tok, costs[k], next)
				front.push(scorer.Score(child), child)
			}
		}
	}

	if n, ok := done.best(); ok {
		return n.output(), nil
	}
	// Nothing finished within MaxLen: fall back to the best live hypothesis.
	_, n, err := front.pop()
	if err != nil {
		return nil, fmt.Errorf("no hypothesis produced: %w", err)
	}
	return n.output(), nil
}

// topK returns the indices of the k largest logits in descending logit
// order. Ties resolve to the lower index, the same rule argmax uses.
func topK(logits []float32, k int) []int {
	if k > len(logits) {
		k = len(logits)
	}
	idx := make([]int, 0, k)
	for n := 0; n < k; n++ {
		best := -1
		for i := range logits {
			if contains(idx, i) {
				continue
			}
			if best < 0 || logits[i] > logits[best] {
				best = i
			}
		}
		idx = append(idx, best)
	}
	return idx
}

// stepCosts converts the shortlisted logits to penalized negative
// log-probabilities: cost_k = -(logit_k - logsumexp(shortlist)).
func stepCosts(logits []float32, cands []int) []float64 {
	xs := make([]float64, len(cands))
	for i, c := range cands {
		xs[i] = float64(logits[c])
	}
	lse := floats.LogSumExp(xs)
	costs := make([]float64, len(xs))
	for i, x := range xs {
		costs[i] = lse - x
	}
	return costs
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
