package core

import "github.com/nets-route/hyperroute/geom"

// Region is a planar area bounded by a polygon or axis-aligned rectangle --
// the atomic unit of routing traversal. Regions are created once at
// hydration and are immutable in identity thereafter; their incident-port
// list and committed-assignment list are the only mutable state, and both
// are owned exclusively by the solver core (append/remove never happens
// from outside package astar/ripup/solver).
//
// The polygon perimeter cache is built lazily on first use and is never
// invalidated afterward: the polygon does not change during solving, and
// the solver is the single writer, so no synchronization is needed.
type Region struct {
	idx int // arena index within the owning Hypergraph

	RegionID string
	Boundary geom.Boundary
	Center   geom.Point

	IsPad              bool
	IsThroughJumper    bool
	IsViaRegion        bool
	IsConnectionRegion bool

	ports       []*Port
	assignments []*Assignment

	perimeter *geom.PerimeterCache // lazy, built on first PerimeterCache() call
}

// Idx returns the region's arena index, a cheap identity key.
func (r *Region) Idx() int { return r.idx }

// Ports returns the region's incident ports, in insertion order. The
// returned slice must not be mutated by callers.
func (r *Region) Ports() []*Port { return r.ports }

// Assignments returns the region's committed assignments, in insertion
// order (deferred-removal order: a rip removes an entry but does not
// reorder the remainder). The returned slice must not be mutated by
// callers.
func (r *Region) Assignments() []*Assignment { return r.assignments }

// PerimeterCache returns the region's perimeter cache, building it on first
// call. Subsequent calls reuse the cached value.
func (r *Region) PerimeterCache() *geom.PerimeterCache {
	if r.perimeter == nil {
		r.perimeter = geom.BuildPerimeterCache(r.Boundary)
	}
	return r.perimeter
}

// addPort appends p to the region's incidence list. Only called by
// Hypergraph during hydration.
func (r *Region) addPort(p *Port) { r.ports = append(r.ports, p) }

// AttachAssignment appends a to the region's committed-assignment list.
// Called only by the rip-up controller when committing a solved path.
func (r *Region) AttachAssignment(a *Assignment) { r.assignments = append(r.assignments, a) }

// DetachAssignment removes a from the region's committed-assignment list,
// preserving the relative order of the remaining assignments (insertion
// order matters for deterministic tie-breaks elsewhere). Returns false if a
// was not found.
func (r *Region) DetachAssignment(a *Assignment) bool {
	for i, cur := range r.assignments {
		if cur == a {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			return true
		}
	}
	return false
}
