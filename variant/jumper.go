package variant

import (
	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/heuristic"
)

// Jumper is the through-jumper routing strategy: distance units, zero
// penalties by default, rip-up enabled, chord-crossing as the sole
// conflict metric.
type Jumper struct {
	basePolicy
}

// NewJumper returns the jumper policy with its default knobs. greedyMultiplier
// must be >= 1.0; NewJumper panics if given a smaller value.
func NewJumper(greedyMultiplier, ripCost float64, opts ...Option) *Jumper {
	if greedyMultiplier < 1.0 {
		panic("variant: NewJumper greedyMultiplier must be >= 1.0")
	}
	j := &Jumper{basePolicy{
		greedyMultiplier: greedyMultiplier,
		ripCost:          ripCost,
		// crossing and port-usage penalties default to zero: the jumper
		// variant relies on chord-crossing detection itself (via rip-up),
		// not a cost surcharge, to steer the search.
	}}
	for _, opt := range opts {
		opt(&j.basePolicy)
	}
	return j
}

func (j *Jumper) Name() string           { return "jumper" }
func (j *Jumper) UnitOfCost() UnitOfCost { return UnitDistance }

// EstimateCostToEnd uses Euclidean distance from the port to the end
// region's center; hops is accepted for interface symmetry but unused.
func (j *Jumper) EstimateCostToEnd(port *core.Port, end *core.Region, _ *heuristic.HopMap) float64 {
	return heuristic.EuclideanPortDistance(port, end)
}
