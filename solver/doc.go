// Package solver implements the multi-connection driver: it processes
// connections in input order, re-queuing any connection ripped
// up by a later one to the tail of the queue, tracks a global iteration
// budget, and exposes a step()/solve() contract so an embedding driver can
// interleave the solver with its own event loop.
package solver
