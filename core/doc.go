// Package core defines the fundamental Region, Port, Connection, Assignment,
// Candidate, and SolvedRoute types that the routing engine operates on, plus
// the Hypergraph container that owns regions and ports and the hydration
// step that builds one from a serialized, ID-based graph description.
//
// Regions and ports live in arena slices inside Hypergraph, addressed by
// integer index; this breaks the region<->port reference cycle for
// ownership purposes and makes region-identity comparisons an integer
// check. Region.Idx() / Port.Idx() expose that index for callers (the
// search engine, the rip-up controller) that want cheap identity keys
// without hashing a pointer.
package core
