package pq

import (
	"container/heap"

	"github.com/nets-route/hyperroute/core"
)

// Queue is a min-heap of *core.Candidate ordered by F, tie-broken by H
// (lower wins), then by Hops (lower wins), then by insertion sequence
// (earlier first) -- the tie-break chain the search engine needs for
// deterministic, reproducible ordering.
type Queue struct {
	h    innerHeap
	next uint64 // next insertion sequence to assign
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Len returns the number of candidates currently queued.
func (q *Queue) Len() int { return q.h.Len() }

// Enqueue pushes c onto the queue, assigning it the next insertion
// sequence (used as the final tie-break).
func (q *Queue) Enqueue(c *core.Candidate) {
	c.SetSeq(q.next)
	q.next++
	heap.Push(&q.h, c)
}

// Dequeue pops and returns the min-F candidate, or nil if the queue is
// empty.
func (q *Queue) Dequeue() *core.Candidate {
	if q.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*core.Candidate)
}

// PeekMany returns up to k candidates in priority order without removing
// them, for read-only introspection (the snapshot hook). It does
// not mutate the queue.
func (q *Queue) PeekMany(k int) []*core.Candidate {
	if k <= 0 || len(q.h) == 0 {
		return nil
	}
	// Copy and sort a scratch slice rather than popping/repushing, so the
	// live heap and its sequence counter are untouched.
	scratch := make(innerHeap, len(q.h))
	copy(scratch, q.h)
	heap.Init(&scratch)
	n := k
	if n > len(scratch) {
		n = len(scratch)
	}
	out := make([]*core.Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, heap.Pop(&scratch).(*core.Candidate))
	}
	return out
}

// Clear empties the queue. The insertion-sequence counter is not reset, so
// candidates enqueued after a Clear still tie-break correctly against any
// that happened to survive via external references.
func (q *Queue) Clear() {
	q.h = q.h[:0]
}

// innerHeap implements container/heap.Interface over *core.Candidate.
type innerHeap []*core.Candidate

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.H != b.H {
		return a.H < b.H // prefer nearer-to-goal
	}
	if a.Hops != b.Hops {
		return a.Hops < b.Hops // prefer fewer hops
	}
	return a.Seq() < b.Seq() // earlier insertion wins
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(*core.Candidate)) }

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
