package ripup

import (
	"fmt"
	"sort"

	"github.com/nets-route/hyperroute/core"
)

// Controller commits solved candidate chains as new assignments and
// resolves conflicts by ripping up prior assignments. It tracks every
// assignment it has committed, keyed by owning connection, so that
// ripping one assignment of a connection can cascade to the rest of that
// connection's chain -- a partially-ripped route is not a route.
type Controller struct {
	onRip func(RipEvent)

	// committed maps a connection ID to the assignments committed for it,
	// in commit order. Entries are cleared as soon as any one of them is
	// ripped, since the whole chain becomes invalid together.
	committed map[string][]*core.Assignment
}

// NewController returns a Controller ready to commit paths.
func NewController(opts ...Option) *Controller {
	c := &Controller{committed: make(map[string][]*core.Assignment)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CommittedAssignments returns the assignments currently committed for
// connectionID, in commit order. The returned slice must not be mutated.
func (c *Controller) CommittedAssignments(connectionID string) []*core.Assignment {
	return c.committed[connectionID]
}

// Commit walks path from root to goal, appending one new Assignment per
// hop and ripping any conflicting assignments a hop's candidate flagged
// RipRequired. path[0] is the root candidate (no LastRegion/LastPort of
// its own); hops are read from path[1:]. A nil-Port final candidate is
// the arrival marker in the end region and commits nothing.
//
// Returns the set of connection IDs reopened by rip cascades during this
// commit (sorted, for deterministic requeueing), excluding conn itself.
func (c *Controller) Commit(path []*core.Candidate, conn *core.Connection) ([]string, error) {
	reopened := make(map[string]bool)

	for i := 1; i < len(path); i++ {
		cand := path[i]
		if i == len(path)-1 && cand.Port == nil {
			// Terminal arrival candidate: the route has reached the end
			// region, and endpoint regions record no assignment.
			break
		}
		region, pIn, pOut := cand.LastRegion, cand.LastPort, cand.Port
		if region == nil || pIn == nil || pOut == nil {
			return nil, fmt.Errorf("%w: hop %d", ErrMalformedPath, i)
		}

		if cand.RipRequired {
			for _, victim := range cand.RipSet {
				c.rip(victim, reopened)
			}
		}

		asg, err := core.NewAssignment(region, pIn, pOut, conn)
		if err != nil {
			return nil, fmt.Errorf("ripup: commit hop %d: %w", i, err)
		}
		region.AttachAssignment(asg)
		c.committed[conn.ConnectionID] = append(c.committed[conn.ConnectionID], asg)
	}

	delete(reopened, conn.ConnectionID)
	out := make([]string, 0, len(reopened))
	for id := range reopened {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// rip detaches asg and cascades: every other assignment already committed
// for asg's owning connection is ripped too, since a route missing one
// hop is no longer a route. Idempotent -- an assignment reached twice by
// overlapping cascades is only counted, and reported, once.
func (c *Controller) rip(asg *core.Assignment, reopened map[string]bool) {
	if !core.RipAssignment(asg) {
		return
	}
	connID := asg.Connection.ConnectionID
	reopened[connID] = true
	c.fireOnRip(asg, connID)

	rest := c.committed[connID]
	delete(c.committed, connID)
	for _, other := range rest {
		if other == asg {
			continue
		}
		if core.RipAssignment(other) {
			c.fireOnRip(other, connID)
		}
	}
}

func (c *Controller) fireOnRip(asg *core.Assignment, reopenedConnID string) {
	if c.onRip == nil {
		return
	}
	c.onRip(RipEvent{Assignment: asg, Region: asg.Region, ReopenedConnectionID: reopenedConnID})
}
