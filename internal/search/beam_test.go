package search

import (
	"context"
	"errors"
	"testing"
)

func TestBeamPrefersFinishedHypothesis(t *testing.T) {
	t.Parallel()
	// EOS dominates from the first step onward.
	m := &scriptModel{script: [][]float32{favor(tEOS)}}
	b := &BeamDecoder{Model: m, Params: testParams(4, 16)}

	out, err := b.Decode(context.Background(), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0] != tEOS {
		t.Fatalf("expected the one-token finished hypothesis, got %v", out)
	}
}

func TestBeamStopsWhenAllHypothesesFinish(t *testing.T) {
	t.Parallel()
	m := &scriptModel{script: [][]float32{favor(tEOS)}}
	b := &BeamDecoder{Model: m, Params: testParams(1, 512)}

	out, err := b.Decode(context.Background(), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0] != tEOS {
		t.Fatalf("output: got %v, want [1]", out)
	}
	// One expansion of the root, then the sole hypothesis finishes and the
	// frontier empties; no further decoder work.
	if m.calls != 1 {
		t.Fatalf("decoder calls: got %d, want 1", m.calls)
	}
}

func TestBeamWidthOneMatchesGreedy(t *testing.T) {
	t.Parallel()
	script := [][]float32{favor(tA), favor(tB), favor(tA), favor(tEOS)}
	params := testParams(1, 32)

	g := &GreedyDecoder{Model: &scriptModel{script: script}, Params: params}
	greedyOut, err := g.Decode(context.Background(), 0)
	if err != nil {
		t.Fatalf("greedy: %v", err)
	}

	b := &BeamDecoder{Model: &scriptModel{script: script}, Params: params}
	beamOut, err := b.Decode(context.Background(), 0)
	if err != nil {
		t.Fatalf("beam: %v", err)
	}

	if len(beamOut) > len(greedyOut) {
		t.Fatalf("beam output longer than greedy buffer: %d > %d", len(beamOut), len(greedyOut))
	}
	for i, tok := range beamOut {
		if greedyOut[i] != tok {
			t.Fatalf("path diverges at %d: greedy %d, beam %d", i, greedyOut[i], tok)
		}
	}
	// Greedy pads past the shared path.
	for i := len(beamOut); i < len(greedyOut); i++ {
		if greedyOut[i] != tPAD {
			t.Fatalf("greedy tail not padded at %d: %d", i, greedyOut[i])
		}
	}
}

func TestBeamFallsBackToLiveHypothesis(t *testing.T) {
	t.Parallel()
	// EOS never wins: the search exhausts MaxLen and returns the best
	// unfinished hypothesis.
	m := &scriptModel{script: [][]float32{favor(tA)}}
	b := &BeamDecoder{Model: m, Params: testParams(2, 4)}

	out, err := b.Decode(context.Background(), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("fallback output length: got %d, want 4", len(out))
	}
	for _, tok := range out {
		if tok == tEOS {
			t.Fatal("unexpected end-of-sequence token in fallback output")
		}
	}
}

func TestBeamKeepsBestOfSeveralFinished(t *testing.T) {
	t.Parallel()
	// Step 0 splits between a and b; everything finishes at step 1. Both
	// finished hypotheses have length 2, so the cheaper first step wins.
	step0 := []float32{-9, -9, -9, 5, 3}
	m := &scriptModel{script: [][]float32{step0, favor(tEOS)}}
	b := &BeamDecoder{Model: m, Params: testParams(2, 16)}

	out, err := b.Decode(context.Background(), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0] != tA || out[1] != tEOS {
		t.Fatalf("selection: got %v, want [3 1]", out)
	}
}

func TestBeamPropagatesDecoderFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	b := &BeamDecoder{Model: &scriptModel{err: boom}, Params: testParams(4, 8)}

	if _, err := b.Decode(context.Background(), 0); !errors.Is(err, boom) {
		t.Fatalf("expected decoder failure to propagate, got %v", err)
	}
}

func TestBeamHonorsContextCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &BeamDecoder{Model: &scriptModel{script: [][]float32{favor(tA)}}, Params: testParams(2, 8)}
	if _, err := b.Decode(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTopKOrderingAndTies(t *testing.T) {
	t.Parallel()
	logits := []float32{1, 5, 5, 0, 3}
	got := topK(logits, 3)
	want := []int{1, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topK: got %v, want %v", got, want)
		}
	}
}

func TestStepCostsArePositiveAndOrdered(t *testing.T) {
	t.Parallel()
	logits := []float32{-9, 5, 1, 0, -9}
	cands := topK(logits, 3)
	costs := stepCosts(logits, cands)

	for i, c := range costs {
		if c < 0 {
			t.Fatalf("cost %d negative: %f", i, c)
		}
		if i > 0 && costs[i] < costs[i-1] {
			t.Fatalf("costs not ascending with rank: %v", costs)
		}
	}
}
