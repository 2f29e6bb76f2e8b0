package model

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// Toy is a small deterministic encoder/decoder model used for tests,
// benchmarks, and the built-in demo mode. It consists of an embedding
// matrix and a projection back to vocab logits around a simple recurrent
// mixing rule. Weights are derived from a seed, so two Toy models built
// with the same (vocab, hidden, seed) behave identically.
type Toy struct {
	Vocab  int
	Hidden int

	emb [][]float32 // [Vocab][Hidden]
	out [][]float32 // [Hidden][Vocab]
}

// toyState is the per-hypothesis recurrent context. It is never mutated
// after creation; Step allocates a successor instead.
type toyState struct {
	h []float32
}

// NewToy constructs a model with the given vocabulary and hidden size,
// filling the weights deterministically from seed.
func NewToy(vocab, hidden int, seed int64) *Toy {
	m := &Toy{
		Vocab:  vocab,
		Hidden: hidden,
		emb:    fillRand(vocab, hidden, seed+11),
		out:    fillRand(hidden, vocab, seed+23),
	}
	return m
}

// EncodeBatch reduces each input sequence to a hidden state by summing
// token embeddings and squashing through tanh.
func (m *Toy) EncodeBatch(_ context.Context, batch [][]int) ([]State, error) {
	states := make([]State, len(batch))
	for i, ids := range batch {
		h := make([]float32, m.Hidden)
		for _, id := range ids {
			row := m.emb[m.wrap(id)]
			for j := range h {
				h[j] += row[j]
			}
		}
		for j := range h {
			h[j] = float32(math.Tanh(float64(h[j])))
		}
		states[i] = &toyState{h: h}
	}
	return states, nil
}

// Step mixes the previous token's embedding into the hidden state and
// projects the result to vocab logits. The input state is left untouched.
func (m *Toy) Step(_ context.Context, prevToken int, st State) ([]float32, State, error) {
	ts, ok := st.(*toyState)
	if !ok {
		return nil, nil, fmt.Errorf("toy model: unexpected state type %T", st)
	}

	row := m.emb[m.wrap(prevToken)]
	next := make([]float32, m.Hidden)
	for j := range next {
		next[j] = float32(math.Tanh(float64(0.5*ts.h[j] + row[j])))
	}

	logits := make([]float32, m.Vocab)
	for j := 0; j < m.Hidden; j++ {
		w := m.out[j]
		hj := next[j]
		for v := 0; v < m.Vocab; v++ {
			logits[v] += hj * w[v]
		}
	}

	return logits, &toyState{h: next}, nil
}

func (m *Toy) wrap(id int) int {
	if id >= 0 && id < m.Vocab {
		return id
	}
	id %= m.Vocab
	if id < 0 {
		id += m.Vocab
	}
	return id
}

func fillRand(rows, cols int, seed int64) [][]float32 {
	rng := rand.New(rand.NewSource(seed))
	mat := make([][]float32, rows)
	for i := range mat {
		row := make([]float32, cols)
		for j := range row {
			row[j] = rng.Float32()*2 - 1
		}
		mat[i] = row
	}
	return mat
}
