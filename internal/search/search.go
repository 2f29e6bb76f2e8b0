// Package search implements the autoregressive decoding strategies: greedy
// single-path decoding and beam search over a bounded hypothesis frontier.
//
// Accumulated log-probabilities are treated strictly as costs: each decode
// step adds -log(softmax) of the chosen token, so lower is always better.
// The frontier is a min-heap over hypothesis scores and the finished set is
// resolved by minimum score.
package search

// Params controls both decoders and the scoring policy.
type Params struct {
	// BeamWidth is the maximum number of live hypotheses per step.
	BeamWidth int
	// MaxLen bounds the work per item: greedy output buffers hold MaxLen
	// positions and beam search runs at most MaxLen steps.
	MaxLen int

	// Scoring knobs.
	MaxRepeat int
	MinLength int
	Alpha     float64

	// Special token ids, normally taken from the tokenizer config.
	BOS int
	EOS int
	PAD int
}

// DefaultParams mirrors the engine defaults: beam width 4, 512-token cap,
// repetition runs above 5 penalized, length normalization alpha 1.2.
func DefaultParams() Params {
	return Params{
		BeamWidth: 4,
		MaxLen:    512,
		MaxRepeat: 5,
		MinLength: 5,
		Alpha:     1.2,
	}
}

// scorer returns the scoring policy for these params.
func (p Params) scorer() Scorer {
	return Scorer{
		MaxRepeat: p.MaxRepeat,
		MinLength: p.MinLength,
		Alpha:     p.Alpha,
		PAD:       p.PAD,
	}
}
