package crossing

import (
	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/geom"
)

// CountCrossingsWithOtherNets counts the existing assignments in region r
// whose owning connection's net ID differs from currentNetID and whose
// chord crosses the candidate chord (p1, p2).
//
// Via regions (r.IsViaRegion) are exclusive, not chord-ordered: any
// different-net assignment counts as a crossing regardless of geometry.
func CountCrossingsWithOtherNets(r *core.Region, p1, p2 *core.Port, currentNetID string) int {
	return len(ListCrossingAssignments(r, p1, p2, currentNetID))
}

// ListCrossingAssignments returns the assignments in region r whose owning
// connection's net ID differs from currentNetID and whose chord crosses
// (p1, p2), in insertion order. For via regions, geometry is ignored: every
// different-net assignment is returned.
func ListCrossingAssignments(r *core.Region, p1, p2 *core.Port, currentNetID string) []*core.Assignment {
	var out []*core.Assignment
	for _, a := range r.Assignments() {
		if a.Connection.NetID == currentNetID {
			continue
		}
		if r.IsViaRegion {
			out = append(out, a)
			continue
		}
		if chordsCross(r, p1, p2, a.Port1, a.Port2) {
			out = append(out, a)
		}
	}
	return out
}

// chordsCross reports whether the candidate chord (p1,p2) and the existing
// assignment's chord (q1,q2) geometrically cross on region r.
func chordsCross(r *core.Region, p1, p2, q1, q2 *core.Port) bool {
	e1, ok1 := p1.ChordEndpoint(r)
	e2, ok2 := p2.ChordEndpoint(r)
	e3, ok3 := q1.ChordEndpoint(r)
	e4, ok4 := q2.ChordEndpoint(r)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		// A region without a usable boundary (e.g. a synthetic
		// connection-region marker with no polygon) has no perimeter to
		// interleave chords on; fall back to pure Cartesian straddling.
		return geom.SegmentsIntersect(p1.Pos, p2.Pos, q1.Pos, q2.Pos)
	}
	return geom.GeometricCross(e1, e2, e3, e4, r.PerimeterCache().Perimeter())
}
