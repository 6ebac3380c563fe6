package variant

import (
	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/heuristic"
)

// Via is the via-region routing strategy: hop units, the BFS distance-to-end
// map as its heuristic, a non-zero crossing penalty, and via-region
// exclusivity (any different-net assignment in a via region requires
// ripping the entire set, not just the crossing chord -- already carried by
// package crossing's via-region branch, so basePolicy's shared conflict
// metric needs no override here).
type Via struct {
	basePolicy
}

// NewVia returns the via policy with its default knobs.
func NewVia(greedyMultiplier, ripCost, crossingPenalty, crossingPenaltySq float64, opts ...Option) *Via {
	if greedyMultiplier < 1.0 {
		panic("variant: NewVia greedyMultiplier must be >= 1.0")
	}
	v := &Via{basePolicy{
		greedyMultiplier:  greedyMultiplier,
		ripCost:           ripCost,
		crossingPenalty:   crossingPenalty,
		crossingPenaltySq: crossingPenaltySq,
	}}
	for _, opt := range opts {
		opt(&v.basePolicy)
	}
	return v
}

func (v *Via) Name() string           { return "via" }
func (v *Via) UnitOfCost() UnitOfCost { return UnitHops }

// EstimateCostToEnd uses the precomputed hop-distance map; a port
// unreachable in hops falls back to 0, the most optimistic admissible
// estimate, rather than blocking expansion outright.
func (v *Via) EstimateCostToEnd(port *core.Port, _ *core.Region, hops *heuristic.HopMap) float64 {
	h, ok := hops.PortHops(port)
	if !ok {
		return 0
	}
	return float64(h)
}
