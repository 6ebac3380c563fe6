package variant

import (
	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/crossing"
	"github.com/nets-route/hyperroute/heuristic"
)

// UnitOfCost selects what stepCost measures between two ports of the same
// region: a fixed per-hop unit, or the Euclidean distance between them.
type UnitOfCost int

const (
	UnitHops UnitOfCost = iota
	UnitDistance
)

// Policy is the capability set a routing strategy injects into the search
// engine. Jumper and Via both implement it by embedding basePolicy
// and overriding only what differs.
type Policy interface {
	Name() string
	UnitOfCost() UnitOfCost

	GreedyMultiplier() float64
	RipCost() float64
	CrossingPenalty() float64
	CrossingPenaltySq() float64
	PortUsagePenalty() float64
	PortUsagePenaltySq() float64

	// EstimateCostToEnd returns the admissible (or, for distance-based
	// variants, merely heuristic) lower-bound cost from port to the end
	// region, consulting hops when the variant's UnitOfCost is UnitHops.
	EstimateCostToEnd(port *core.Port, end *core.Region, hops *heuristic.HopMap) float64

	// GetPortUsagePenalty returns any per-port penalty beyond the flat
	// PortUsagePenalty knob (a hook for variants that weigh specific ports
	// more heavily; the base policy returns 0).
	GetPortUsagePenalty(port *core.Port) float64

	// ComputeRegionCostIfPortsUsed scores entering region r via ports
	// (p1, p2) for priority-queue ranking.
	ComputeRegionCostIfPortsUsed(r *core.Region, p1, p2 *core.Port, crossings int) float64

	// IsRipRequiredForPortUsage reports whether committing to (p1, p2) in
	// region r would require ripping up existing assignments belonging to
	// a different net.
	IsRipRequiredForPortUsage(r *core.Region, p1, p2 *core.Port, currentNetID string) bool

	// GetRipsRequiredForPortUsage returns the assignments that would need
	// ripping to use (p1, p2) in region r.
	GetRipsRequiredForPortUsage(r *core.Region, p1, p2 *core.Port, currentNetID string) []*core.Assignment
}

// basePolicy implements the parts of Policy that are identical across
// variants: the conflict metric (crossing.ListCrossingAssignments, which
// already carries via-region exclusivity) and the region-cost formula.
// Concrete variants embed it and supply only the differing knobs and
// EstimateCostToEnd.
type basePolicy struct {
	greedyMultiplier   float64
	ripCost            float64
	crossingPenalty    float64
	crossingPenaltySq  float64
	portUsagePenalty   float64
	portUsagePenaltySq float64
}

func (b basePolicy) GreedyMultiplier() float64   { return b.greedyMultiplier }
func (b basePolicy) RipCost() float64            { return b.ripCost }
func (b basePolicy) CrossingPenalty() float64    { return b.crossingPenalty }
func (b basePolicy) CrossingPenaltySq() float64  { return b.crossingPenaltySq }
func (b basePolicy) PortUsagePenalty() float64   { return b.portUsagePenalty }
func (b basePolicy) PortUsagePenaltySq() float64 { return b.portUsagePenaltySq }

// GetPortUsagePenalty has no per-port extras by default.
func (b basePolicy) GetPortUsagePenalty(*core.Port) float64 { return 0 }

// ComputeRegionCostIfPortsUsed applies the region-cost formula:
// crossings·crossingPenalty + crossings²·crossingPenaltySq +
// portUsagePenalty + portUsagePenaltySq (both added as flat
// surcharges). Per-port extras (GetPortUsagePenalty) are added by the
// caller, which holds the Policy as an interface value and so dispatches
// any variant override correctly -- a self-call from here would not.
func (b basePolicy) ComputeRegionCostIfPortsUsed(r *core.Region, _, p2 *core.Port, crossings int) float64 {
	c := float64(crossings)
	cost := c*b.crossingPenalty + c*c*b.crossingPenaltySq
	cost += b.portUsagePenalty + b.portUsagePenaltySq
	return cost
}

// IsRipRequiredForPortUsage reports whether any different-net assignment
// conflicts with (p1, p2) in r, per the shared conflict metric (chord
// crossing for ordinary regions, blanket exclusivity for via regions --
// both already implemented by package crossing).
func (b basePolicy) IsRipRequiredForPortUsage(r *core.Region, p1, p2 *core.Port, currentNetID string) bool {
	return crossing.CountCrossingsWithOtherNets(r, p1, p2, currentNetID) > 0
}

// GetRipsRequiredForPortUsage returns the exact conflicting assignments:
// for an ordinary region, those whose chord crosses (p1, p2); for a via
// region, every different-net assignment (via exclusivity).
func (b basePolicy) GetRipsRequiredForPortUsage(r *core.Region, p1, p2 *core.Port, currentNetID string) []*core.Assignment {
	return crossing.ListCrossingAssignments(r, p1, p2, currentNetID)
}
