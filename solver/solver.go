package solver

import (
	"fmt"

	"github.com/nets-route/hyperroute/astar"
	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/heuristic"
	"github.com/nets-route/hyperroute/ripup"
	"github.com/nets-route/hyperroute/variant"
)

// Solver is the multi-connection driver. Construct one with New and drive
// it with either Step (one expansion at a time) or Solve (run to
// completion).
type Solver struct {
	policy variant.Policy
	ripCtl *ripup.Controller

	hopCache map[int]*heuristic.HopMap

	connByID map[string]*core.Connection
	order    []string
	queue    []string
	queued   map[string]bool

	routes map[string]*core.SolvedRoute

	current     *astar.Engine
	currentConn *core.Connection

	maxIterations  int
	iterations     int
	ripsPerformed  int
	failed         bool
	err            error
	totalConns     int
	rippingEnabled bool
}

// New constructs a Solver over conns, processed in input order, using
// policy for search scoring. The iteration budget is computed from opts
// (or DefaultOptions) using the formula documented on Options.
func New(conns []*core.Connection, policy variant.Policy, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Solver{
		policy:         policy,
		hopCache:       make(map[int]*heuristic.HopMap),
		connByID:       make(map[string]*core.Connection, len(conns)),
		order:          make([]string, 0, len(conns)),
		queue:          make([]string, 0, len(conns)),
		queued:         make(map[string]bool, len(conns)),
		routes:         make(map[string]*core.SolvedRoute, len(conns)),
		totalConns:     len(conns),
		rippingEnabled: o.RippingEnabled,
	}
	userOnRip := o.OnRip
	s.ripCtl = ripup.NewController(ripup.WithOnRip(func(ev ripup.RipEvent) {
		s.ripsPerformed++
		if userOnRip != nil {
			userOnRip(ev)
		}
	}))

	for _, c := range conns {
		s.connByID[c.ConnectionID] = c
		s.order = append(s.order, c.ConnectionID)
		s.queue = append(s.queue, c.ConnectionID)
		s.queued[c.ConnectionID] = true
	}

	s.maxIterations = o.BaseBudget + o.PerConnectionBudget*len(conns) + o.PerCrossingBudget*CountInputCrossings(conns)
	return s
}

// Solved reports whether every input connection has a committed solved
// route.
func (s *Solver) Solved() bool {
	return !s.failed && len(s.routes) == s.totalConns
}

// Failed reports whether the solver gave up: the iteration budget was
// exhausted, or some connection's search emptied its frontier with no
// path found.
func (s *Solver) Failed() bool { return s.failed }

// Err returns the error kind recorded when the solver transitioned to
// failed (ErrBudgetExhausted, ErrUnreachableGoal, or a commit error), or
// nil while no failure has occurred.
func (s *Solver) Err() error { return s.err }

// Route returns the committed route for connectionID, if solved.
func (s *Solver) Route(connectionID string) (*core.SolvedRoute, bool) {
	r, ok := s.routes[connectionID]
	return r, ok
}

// Routes returns every committed solved route in input-connection order,
// skipping connections not (or no longer, after a rip) routed.
func (s *Solver) Routes() []*core.SolvedRoute {
	out := make([]*core.SolvedRoute, 0, len(s.routes))
	for _, id := range s.order {
		if r, ok := s.routes[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Step performs one unit of work -- starting the next queued connection's
// engine if none is active, then one search expansion -- and reports
// whether the solver has reached a terminal state (Solved or Failed).
func (s *Solver) Step() bool {
	if s.Solved() || s.failed {
		return true
	}

	if s.current == nil {
		if len(s.queue) == 0 {
			return true
		}
		id := s.queue[0]
		s.queue = s.queue[1:]
		delete(s.queued, id)

		conn := s.connByID[id]
		s.currentConn = conn
		s.current = astar.New(conn, s.policy, s.hopMapFor(conn.End), s.rippingEnabled)
	}

	if s.current.Status() == astar.InProgress {
		if s.iterations >= s.maxIterations {
			s.fail(fmt.Errorf("%w: connection %q", ErrBudgetExhausted, s.currentConn.ConnectionID))
			return true
		}
		s.current.Step()
		s.iterations++
	}

	switch s.current.Status() {
	case astar.Solved:
		s.commit(s.current.Route())
		s.current = nil
		s.currentConn = nil
	case astar.Failed:
		s.fail(fmt.Errorf("%w: connection %q", ErrUnreachableGoal, s.currentConn.ConnectionID))
	}

	return s.Solved() || s.failed
}

// Solve runs Step to completion and reports whether every connection
// solved.
func (s *Solver) Solve() bool {
	for !s.Step() {
	}
	return s.Solved()
}

// commit hands the solved route to the rip-up controller and requeues any
// connection reopened by a rip cascade at the tail of the queue.
func (s *Solver) commit(route *core.SolvedRoute) {
	reopened, err := s.ripCtl.Commit(route.Path, route.Connection)
	if err != nil {
		s.fail(err)
		return
	}
	s.routes[route.Connection.ConnectionID] = route

	for _, id := range reopened {
		delete(s.routes, id)
		s.enqueueTail(id)
	}
}

// fail records the first failure's error kind and flips the solver to
// failed. Later failures never overwrite the original kind.
func (s *Solver) fail(err error) {
	s.failed = true
	if s.err == nil {
		s.err = err
	}
}

func (s *Solver) enqueueTail(id string) {
	if s.queued[id] {
		return
	}
	s.queue = append(s.queue, id)
	s.queued[id] = true
}

func (s *Solver) hopMapFor(end *core.Region) *heuristic.HopMap {
	if m, ok := s.hopCache[end.Idx()]; ok {
		return m
	}
	m := heuristic.BuildHopMap(end)
	s.hopCache[end.Idx()] = m
	return m
}
