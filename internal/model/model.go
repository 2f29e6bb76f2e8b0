// Package model defines the contracts the decoding engine expects from a
// sequence-to-sequence model. The engine never looks inside a model: it
// encodes a batch of input token-id sequences into per-item states, then
// advances one token at a time through Step.
package model

import "context"

// State is the opaque per-item decoder context. A state belongs to exactly
// one hypothesis; implementations must return a fresh State from Step rather
// than mutating the one passed in, so that multiple hypotheses can branch
// from the same parent state.
type State any

// Encoder turns a batch of input token-id sequences into one State per item.
type Encoder interface {
	EncodeBatch(ctx context.Context, batch [][]int) ([]State, error)
}

// Decoder advances a hypothesis by one token. Given the previous token id
// and the current state it returns logits over the vocabulary and the
// successor state. Implementations must be safe for concurrent Step calls
// on distinct states.
type Decoder interface {
	Step(ctx context.Context, prevToken int, st State) ([]float32, State, error)
}

// Seq2Seq is a full encoder/decoder model.
type Seq2Seq interface {
	Encoder
	Decoder
}
