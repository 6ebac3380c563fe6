package core

// Candidate is a search-node record in the per-connection best-first
// search: it names the port a partial route has just crossed, the region
// it is about to traverse, the accumulated cost g, the heuristic estimate
// h, the combined priority f, and a parent pointer forming an acyclic chain
// back to the connection's start.
//
// Candidates form a tree rooted at each of a connection's start candidates; a
// child holds a pointer back to its parent (never the reverse), so the
// whole chain becomes garbage together once nothing references the leaf
// candidates anymore -- no separate arena bookkeeping is needed.
type Candidate struct {
	// Port is the port the partial route just crossed to arrive at
	// NextRegion (nil for the terminal arrival candidate that closes a
	// solved path in the end region, including the single candidate of a
	// route whose start and end regions are the same).
	Port *Port

	// NextRegion is the region this candidate is about to traverse (or
	// already sits in, once dequeued and matched against the connection's
	// end region).
	NextRegion *Region

	G, H, F float64
	Hops    int

	Parent     *Candidate
	LastPort   *Port
	LastRegion *Region

	// RipRequired marks that accepting this candidate requires ripping the
	// assignments in RipSet.
	RipRequired bool
	RipSet      []*Assignment

	// ripCountAtEnqueue records, parallel to RipSet, each assignment's
	// ports' rip counters as observed when this candidate was enqueued.
	// On dequeue, if either port's current rip counter exceeds the
	// recorded value, the candidate is stale and must be discarded.
	ripCountAtEnqueue []ripSnapshot

	// seq is the insertion sequence used as the final priority-queue
	// tie-break (earlier first). Set by the priority queue on Enqueue.
	seq uint64
}

// ripSnapshot pairs a rip-set assignment's two ports with the rip counters
// observed at the moment this candidate was enqueued.
type ripSnapshot struct {
	port1Count, port2Count uint64
}

// RecordRipSnapshot captures the current rip counters of every assignment
// in c.RipSet, for later staleness comparison at dequeue time.
func (c *Candidate) RecordRipSnapshot() {
	c.ripCountAtEnqueue = make([]ripSnapshot, len(c.RipSet))
	for i, a := range c.RipSet {
		c.ripCountAtEnqueue[i] = ripSnapshot{a.Port1.RipCount(), a.Port2.RipCount()}
	}
}

// Stale reports whether any assignment in c.RipSet has been ripped (its
// ports' rip counters advanced) since c was enqueued. A stale candidate
// referencing rip context must be discarded, not expanded.
func (c *Candidate) Stale() bool {
	for i, a := range c.RipSet {
		snap := c.ripCountAtEnqueue[i]
		if a.Port1.RipCount() > snap.port1Count || a.Port2.RipCount() > snap.port2Count {
			return true
		}
	}
	return false
}

// Seq returns the candidate's insertion sequence (priority-queue tie-break
// key).
func (c *Candidate) Seq() uint64 { return c.seq }

// SetSeq assigns the candidate's insertion sequence. Called only by the
// priority queue on Enqueue.
func (c *Candidate) SetSeq(s uint64) { c.seq = s }

// PathFromRoot walks the parent chain from c back to the root and returns
// the path in root-to-c (start-to-current) order.
func (c *Candidate) PathFromRoot() []*Candidate {
	var rev []*Candidate
	for cur := c; cur != nil; cur = cur.Parent {
		rev = append(rev, cur)
	}
	path := make([]*Candidate, len(rev))
	for i, cand := range rev {
		path[len(rev)-1-i] = cand
	}
	return path
}
