package search

import (
	"container/heap"
	"errors"
)

// ErrFrontierUnderflow is returned when a pop is requested from an empty
// frontier. It signals a logic error in the caller, not a recoverable
// condition.
var ErrFrontierUnderflow = errors.New("search: pop from empty frontier")

// entry pairs a hypothesis with its score. seq preserves insertion order so
// equal scores resolve first-in-first-out, which keeps tie-breaking
// deterministic across runs.
type entry struct {
	score float64
	node  *Node
	seq   int
}

// frontier is the bounded set of live hypotheses, ordered as a min-heap on
// score. Capacity is the beam width: inserting into a full frontier either
// evicts the current worst entry (when the newcomer scores better) or drops
// the newcomer. Underflow and overflow are explicit conditions, never
// exceptions to catch.
type frontier struct {
	capacity int
	items    entryHeap
	nextSeq  int
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		capacity: capacity,
		items:    make(entryHeap, 0, capacity),
	}
}

func (f *frontier) len() int { return len(f.items) }

// push inserts a scored hypothesis, reporting whether it was kept.
func (f *frontier) push(score float64, n *Node) bool {
	if f.capacity > 0 && len(f.items) >= f.capacity {
		w := f.worst()
		if score >= f.items[w].score {
			return false
		}
		heap.Remove(&f.items, w)
	}
	heap.Push(&f.items, &entry{score: score, node: n, seq: f.nextSeq})
	f.nextSeq++
	return true
}

// pop removes and returns the best (lowest-score) hypothesis.
func (f *frontier) pop() (float64, *Node, error) {
	if len(f.items) == 0 {
		return 0, nil, ErrFrontierUnderflow
	}
	e := heap.Pop(&f.items).(*entry)
	return e.score, e.node, nil
}

// worst returns the index of the highest-score entry. With heap ordering the
// maximum sits among the leaves; capacity is the beam width, so a linear
// scan is fine.
func (f *frontier) worst() int {
	w := 0
	for i := 1; i < len(f.items); i++ {
		if f.items[w].less(f.items[i]) {
			w = i
		}
	}
	return w
}

type entryHeap []*entry

func (e *entry) less(other *entry) bool {
	if e.score != other.score {
		return e.score < other.score
	}
	return e.seq < other.seq
}

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// finished collects hypotheses that produced the end-of-sequence token,
// tagged with the score they finished at.
type finished struct {
	score float64
	node  *Node
}

type finishedSet []finished

func (s *finishedSet) add(score float64, n *Node) {
	*s = append(*s, finished{score: score, node: n})
}

// best returns the minimum-score finished hypothesis. Earlier entries win
// ties.
func (s finishedSet) best() (*Node, bool) {
	if len(s) == 0 {
		return nil, false
	}
	bi := 0
	for i := 1; i < len(s); i++ {
		if s[i].score < s[bi].score {
			bi = i
		}
	}
	return s[bi].node, true
}
