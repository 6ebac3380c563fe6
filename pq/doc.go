// Package pq implements the A* search engine's candidate priority queue: a
// binary min-heap ordered by Candidate.F, with a stable insertion-sequence
// tie-break and a bulk-peek operation for read-only introspection. The
// queue enforces no size limit of its own.
//
// The heap machinery follows the lazy-decrease-key container/heap pattern
// common to Dijkstra-style solvers: entries are never mutated in place,
// only pushed and popped, and staleness (here, rip-invalidated candidates
// rather than already-visited vertices) is resolved by the caller at pop
// time, not by the heap itself.
package pq
