package heuristic

import "github.com/nets-route/hyperroute/core"

// HopMap is the result of one BFS walk of the region graph rooted at a
// single end region: for every region reachable from End, the minimum
// number of port-hops needed to reach it.
type HopMap struct {
	End  *core.Region
	dist map[int]int // region.Idx() -> hops from End
}

// BuildHopMap runs unweighted BFS over the region graph -- nodes are
// regions, edges are ports -- starting at end, and records each reached
// region's hop distance. Unreachable regions are simply absent from the
// map; callers treat that as "no admissible estimate available" rather
// than infinity.
func BuildHopMap(end *core.Region) *HopMap {
	m := &HopMap{End: end, dist: map[int]int{end.Idx(): 0}}
	queue := []*core.Region{end}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := m.dist[cur.Idx()]
		for _, p := range cur.Ports() {
			nbr := p.Other(cur)
			if _, seen := m.dist[nbr.Idx()]; seen {
				continue
			}
			m.dist[nbr.Idx()] = d + 1
			queue = append(queue, nbr)
		}
	}
	return m
}

// RegionHops returns the hop distance from region r to the map's end
// region, or false if r was never reached.
func (m *HopMap) RegionHops(r *core.Region) (int, bool) {
	d, ok := m.dist[r.Idx()]
	return d, ok
}

// PortHops returns the admissible hop-distance estimate for port p: the
// minimum of its two regions' distances to the end region. Returns false
// only if neither side was reached by the BFS.
func (m *HopMap) PortHops(p *core.Port) (int, bool) {
	d1, ok1 := m.dist[p.Region1.Idx()]
	d2, ok2 := m.dist[p.Region2.Idx()]
	switch {
	case ok1 && ok2:
		if d1 < d2 {
			return d1, true
		}
		return d2, true
	case ok1:
		return d1, true
	case ok2:
		return d2, true
	default:
		return 0, false
	}
}

// EuclideanPortDistance returns the straight-line distance from port p's
// position to the end region's center -- the heuristic used by
// distance-based variants in place of hop counting. It carries no
// admissibility guarantee on its own; a variant combines it with
// greedyMultiplier to tune how aggressively it's trusted.
func EuclideanPortDistance(p *core.Port, end *core.Region) float64 {
	return p.Pos.Dist(end.Center)
}
