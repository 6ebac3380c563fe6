package solver

import "github.com/nets-route/hyperroute/core"

// Snapshot is a read-only view of the solver's current activity, for
// introspection by a UI or benchmarking harness. It is a plain value,
// never mutated by the solver after it is returned.
type Snapshot struct {
	CurrentConnection *core.Connection
	CurrentEndRegion  *core.Region
	Frontier          []*core.Candidate
}

// Snapshot returns the solver's current state: the connection being
// searched (nil if none is active), its end region, and the top-k
// frontier candidates by priority.
func (s *Solver) Snapshot(k int) Snapshot {
	snap := Snapshot{CurrentConnection: s.currentConn}
	if s.currentConn != nil {
		snap.CurrentEndRegion = s.currentConn.End
	}
	if s.current != nil {
		snap.Frontier = s.current.PeekFrontier(k)
	}
	return snap
}

// Stats is an O(1) read-only counters summary.
type Stats struct {
	IterationsUsed    int
	ConnectionsSolved int
	ConnectionsFailed int
	RipsPerformed     int
}

// Stats returns the solver's current counters.
func (s *Solver) Stats() Stats {
	failed := 0
	if s.failed {
		failed = s.totalConns - len(s.routes)
	}
	return Stats{
		IterationsUsed:    s.iterations,
		ConnectionsSolved: len(s.routes),
		ConnectionsFailed: failed,
		RipsPerformed:     s.ripsPerformed,
	}
}
