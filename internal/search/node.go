package search

import "github.com/samcharles93/seqgen/internal/model"

// Node is one decoding hypothesis: the token prefix generated so far, its
// accumulated cost, and the decoder state needed to extend it. Nodes form a
// tree through Prev back-links; the chain from any node terminates at a root
// whose Prev is nil and whose Length is 0.
type Node struct {
	// Prev is the parent hypothesis this node extends.
	Prev *Node
	// Tokens is the full prefix including the start token, so
	// len(Tokens) == Length+1 always holds.
	Tokens []int
	// Cost is the sum of per-step -log(softmax) values. Zero only for the
	// root.
	Cost float64
	// State is the decoder context owned exclusively by this node.
	State model.State
	// Length counts tokens generated past the start token.
	Length int
}

// newRoot builds the start hypothesis for a decode.
func newRoot(bos int, st model.State) *Node {
	return &Node{
		Tokens: []int{bos},
		State:  st,
	}
}

// extend returns a child hypothesis with tok appended. The parent's token
// slice is copied, never shared, since several children branch from the
// same parent.
func (n *Node) extend(tok int, stepCost float64, st model.State) *Node {
	tokens := make([]int, len(n.Tokens)+1)
	copy(tokens, n.Tokens)
	tokens[len(n.Tokens)] = tok

	return &Node{
		Prev:   n,
		Tokens: tokens,
		Cost:   n.Cost + stepCost,
		State:  st,
		Length: n.Length + 1,
	}
}

// last returns the most recent token of the hypothesis.
func (n *Node) last() int {
	return n.Tokens[len(n.Tokens)-1]
}

// output returns the generated sequence with the start token stripped.
func (n *Node) output() []int {
	return n.Tokens[1:]
}
