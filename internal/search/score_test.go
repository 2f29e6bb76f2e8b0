package search

import (
	"math"
	"testing"
)

func testScorer() Scorer {
	return Scorer{MaxRepeat: 5, MinLength: 5, Alpha: 1.2, PAD: 2}
}

func TestScoreRootIsZero(t *testing.T) {
	t.Parallel()
	root := newRoot(0, nil)
	if got := testScorer().Score(root); got != 0 {
		t.Fatalf("root score: got %f, want 0", got)
	}
}

func TestScoreIdempotent(t *testing.T) {
	t.Parallel()
	n := &Node{Tokens: []int{0, 3, 4, 3}, Cost: 2.5, Length: 3}
	s := testScorer()
	first := s.Score(n)
	second := s.Score(n)
	if first != second {
		t.Fatalf("score not idempotent: %f vs %f", first, second)
	}
}

func TestScoreLengthPenalty(t *testing.T) {
	t.Parallel()
	s := testScorer()
	n := &Node{Tokens: []int{0, 3, 4, 3}, Cost: 3.0, Length: 3}

	want := 3.0 / math.Pow(float64(3+5)/6.0, 1.2)
	if got := s.Score(n); math.Abs(got-want) > 1e-12 {
		t.Fatalf("score: got %f, want %f", got, want)
	}
}

func TestScoreRepeatPenaltyHalvesAcrossThreshold(t *testing.T) {
	t.Parallel()
	s := testScorer()

	// Same cost and length; only the longest run differs (5 vs 6).
	atLimit := &Node{Tokens: []int{0, 3, 3, 3, 3, 3, 4}, Cost: 4.0, Length: 6}
	overLimit := &Node{Tokens: []int{0, 3, 3, 3, 3, 3, 3}, Cost: 4.0, Length: 6}

	base := s.Score(atLimit)
	penalized := s.Score(overLimit)
	if math.Abs(penalized-base/2) > 1e-12 {
		t.Fatalf("expected halved score past max repeat: base %f, penalized %f", base, penalized)
	}
	if penalized > base {
		t.Fatalf("score increased when repeat crossed the threshold: %f > %f", penalized, base)
	}
}

func TestMaxRun(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		tokens []int
		want   int
	}{
		{"distinct", []int{0, 3, 4, 5}, 1},
		{"run in middle", []int{0, 3, 3, 3, 4}, 3},
		{"pad run not counted", []int{0, 2, 2, 2, 2, 3}, 1},
		{"run at end", []int{0, 4, 3, 3}, 2},
	}
	for _, tc := range cases {
		if got := maxRun(tc.tokens, 2); got != tc.want {
			t.Errorf("%s: maxRun = %d, want %d", tc.name, got, tc.want)
		}
	}
}
