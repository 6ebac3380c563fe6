package solver

import "github.com/nets-route/hyperroute/core"

// CountInputCrossings estimates how much geometric conflict a connection
// set could contain before any search runs, for sizing the iteration
// budget's crossing term. It counts, over every pair of connections on
// different nets, whether they share a start or end region -- a cheap
// static estimate of how many chord conflicts the solver might have to
// rip-and-reroute around (see DESIGN.md). It is not an upper bound: two
// connections with no region in common can still cross.
func CountInputCrossings(conns []*core.Connection) int {
	count := 0
	for i := 0; i < len(conns); i++ {
		for j := i + 1; j < len(conns); j++ {
			a, b := conns[i], conns[j]
			if a.NetID == b.NetID {
				continue
			}
			if sharesRegion(a, b) {
				count++
			}
		}
	}
	return count
}

func sharesRegion(a, b *core.Connection) bool {
	return a.Start == b.Start || a.Start == b.End || a.End == b.Start || a.End == b.End
}
