// Package heuristic builds the distance-to-end maps used as the A* search
// engine's admissible lower bound: an unweighted breadth-first walk over
// the region graph (nodes = regions, edges = ports), run once per
// distinct end region, plus a Euclidean fallback for distance-based
// variants.
package heuristic
