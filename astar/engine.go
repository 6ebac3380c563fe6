package astar

import (
	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/heuristic"
	"github.com/nets-route/hyperroute/pq"
	"github.com/nets-route/hyperroute/variant"
)

// Status is the terminal state of one connection's search.
type Status int

const (
	InProgress Status = iota
	Solved
	Failed
)

// Engine runs one connection's best-first search, one expansion per Step
// call. Construct a fresh Engine per connection via New; the driver owns
// sequencing connections and the global iteration budget.
type Engine struct {
	conn           *core.Connection
	policy         variant.Policy
	hops           *heuristic.HopMap
	rippingEnabled bool

	queue  *pq.Queue
	status Status
	route  *core.SolvedRoute
}

// New constructs an Engine for conn, seeding the queue with one root
// candidate per port of the start region (generalized from a single
// start-region connection port so a start region with more than one port
// still searches correctly). A connection whose start region equals its
// end region is solved immediately with a single-candidate,
// zero-assignment path. When rippingEnabled is false, expand refuses to
// generate a candidate for any port pair that would require evicting a
// different net's assignment, so the search routes around contested
// ports instead of displacing them.
func New(conn *core.Connection, policy variant.Policy, hops *heuristic.HopMap, rippingEnabled bool) *Engine {
	e := &Engine{conn: conn, policy: policy, hops: hops, rippingEnabled: rippingEnabled, queue: pq.New(), status: InProgress}

	if conn.Start == conn.End {
		root := &core.Candidate{NextRegion: conn.Start}
		e.status = Solved
		e.route = &core.SolvedRoute{Connection: conn, Path: []*core.Candidate{root}}
		return e
	}

	for _, p := range conn.Start.Ports() {
		h := policy.EstimateCostToEnd(p, conn.End, hops)
		root := &core.Candidate{
			Port:       p,
			NextRegion: p.Other(conn.Start),
			G:          0,
			H:          h,
			F:          policy.GreedyMultiplier() * h,
			Hops:       0,
		}
		root.RecordRipSnapshot()
		e.queue.Enqueue(root)
	}
	if e.queue.Len() == 0 {
		e.status = Failed
	}
	return e
}

// Status returns the engine's current terminal (or in-progress) state.
func (e *Engine) Status() Status { return e.status }

// Route returns the solved route, valid only once Status() == Solved.
func (e *Engine) Route() *core.SolvedRoute { return e.route }

// FrontierLen returns the number of candidates currently queued, for
// introspection.
func (e *Engine) FrontierLen() int { return e.queue.Len() }

// PeekFrontier returns up to k queued candidates in priority order without
// removing them, for read-only introspection.
func (e *Engine) PeekFrontier(k int) []*core.Candidate { return e.queue.PeekMany(k) }

// Step performs one queue pop. If the engine is already terminal, Step is
// a no-op that returns the existing status. Otherwise it pops the min-F
// candidate: a stale one is discarded without expansion (still consuming
// this Step); one whose NextRegion is the connection's end solves the
// connection, closing the path with a terminal arrival candidate in the
// end region; any other is expanded into its region's other ports and
// the children are enqueued.
func (e *Engine) Step() Status {
	if e.status != InProgress {
		return e.status
	}

	c := e.queue.Dequeue()
	if c == nil {
		e.status = Failed
		return e.status
	}
	if c.Stale() {
		return e.status
	}
	if c.NextRegion == e.conn.End {
		// The path ends with a terminal arrival candidate sitting in the end
		// region itself (nil Port -- there is no further port to cross), so a
		// route's path has one candidate per region visited, and the
		// start==end case's single-candidate path is the degenerate arrival.
		arrival := &core.Candidate{
			NextRegion: c.NextRegion,
			G:          c.G,
			F:          c.G,
			Hops:       c.Hops,
			Parent:     c,
			LastPort:   c.Port,
			LastRegion: c.NextRegion,
		}
		path := arrival.PathFromRoot()
		e.route = &core.SolvedRoute{Connection: e.conn, Path: path, RequiredRip: anyRipRequired(path)}
		e.status = Solved
		return e.status
	}

	e.expand(c)
	return e.status
}

// expand generates one child candidate per port of c.NextRegion other
// than the port c arrived through, scoring each via the engine's policy.
// A port pair that would require ripping is skipped entirely when
// rip-up is disabled, rather than enqueued and left for the driver to
// never actually commit.
func (e *Engine) expand(c *core.Candidate) {
	region := c.NextRegion
	for _, pOut := range region.Ports() {
		if pOut == c.Port {
			continue
		}

		// GetRipsRequiredForPortUsage's result doubles as the crossing count
		// and the rip-required flag, so the conflict scan (a chord-crossing
		// check against every existing assignment in region) runs once per
		// candidate rather than once per each of those three questions.
		ripSet := e.policy.GetRipsRequiredForPortUsage(region, c.Port, pOut, e.conn.NetID)
		ripRequired := len(ripSet) > 0
		if ripRequired && !e.rippingEnabled {
			continue
		}

		stepCost := e.policy.ComputeRegionCostIfPortsUsed(region, c.Port, pOut, len(ripSet))
		stepCost += e.policy.GetPortUsagePenalty(pOut)
		stepCost += e.stepUnitCost(c.Port, pOut)
		if ripRequired {
			stepCost += e.policy.RipCost()
		}

		h := e.policy.EstimateCostToEnd(pOut, e.conn.End, e.hops)
		next := &core.Candidate{
			Port:        pOut,
			NextRegion:  pOut.Other(region),
			G:           c.G + stepCost,
			H:           h,
			Hops:        c.Hops + 1,
			Parent:      c,
			LastPort:    c.Port,
			LastRegion:  region,
			RipRequired: ripRequired,
			RipSet:      ripSet,
		}
		next.F = next.G + e.policy.GreedyMultiplier()*h
		next.RecordRipSnapshot()
		e.queue.Enqueue(next)
	}
}

// stepUnitCost returns the base step cost before region-cost and rip-cost
// surcharges: one hop in hop-count mode, or the Euclidean distance
// between the two ports in distance mode.
func (e *Engine) stepUnitCost(in, out *core.Port) float64 {
	if e.policy.UnitOfCost() == variant.UnitHops {
		return 1
	}
	return in.Pos.Dist(out.Pos)
}

func anyRipRequired(path []*core.Candidate) bool {
	for _, c := range path {
		if c.RipRequired {
			return true
		}
	}
	return false
}
