package search

import "math"

// Scorer ranks hypotheses. The raw cost is divided by a length penalty to
// counteract the bias toward short sequences, then multiplied by a
// repetition factor once any run of identical non-pad tokens exceeds
// MaxRepeat. Scoring is pure: the same node always yields the same score.
type Scorer struct {
	MaxRepeat int
	MinLength int
	Alpha     float64
	PAD       int
}

// Score computes the comparable score for a hypothesis. Lower is better.
// The root node (zero cost, nothing generated) scores zero.
func (s Scorer) Score(n *Node) float64 {
	if n.Cost == 0 {
		return n.Cost
	}

	penalty := 1.0
	if maxRun(n.Tokens, s.PAD) > s.MaxRepeat {
		penalty = 0.5
	}

	lengthPenalty := math.Pow(
		float64(n.Length+s.MinLength)/float64(1+s.MinLength),
		s.Alpha,
	)

	return n.Cost / lengthPenalty * penalty
}

// maxRun returns the longest run of consecutive identical tokens, counting
// only non-pad tokens within each run.
func maxRun(tokens []int, pad int) int {
	best := 0
	for i := 0; i < len(tokens); {
		j := i
		count := 0
		for j < len(tokens) && tokens[j] == tokens[i] {
			if tokens[j] != pad {
				count++
			}
			j++
		}
		if count > best {
			best = count
		}
		i = j
	}
	return best
}
