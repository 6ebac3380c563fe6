// Package astar implements the per-connection best-first search engine:
// candidate initialization at the start region's port(s),
// iterative expansion scored by a variant.Policy, staleness discarding on
// dequeue, and termination once a candidate reaches the connection's end
// region.
//
// An Engine is stepped one expansion at a time via Step, so a driver can
// interleave connections and enforce a global iteration budget
// without the search engine knowing anything about other connections.
package astar
