package variant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/geom"
	"github.com/nets-route/hyperroute/heuristic"
	"github.com/nets-route/hyperroute/variant"
)

func threeRegionChain(t *testing.T) (*core.Hypergraph, *core.Region, *core.Region, *core.Region, *core.Port, *core.Port) {
	t.Helper()
	h, _, err := core.Hydrate(core.SerializedGraph{
		Regions: []core.SerializedRegion{
			{RegionID: "A"},
			{RegionID: "B"},
			{RegionID: "C", Center: geom.Point{X: 10, Y: 0}},
		},
		Ports: []core.SerializedPort{
			{PortID: "pab", Region1ID: "A", Region2ID: "B", Pos: geom.Point{X: 0, Y: 0}},
			{PortID: "pbc", Region1ID: "B", Region2ID: "C", Pos: geom.Point{X: 5, Y: 0}},
		},
	}, nil)
	require.NoError(t, err)
	a, _ := h.RegionByID("A")
	b, _ := h.RegionByID("B")
	c, _ := h.RegionByID("C")
	pab, _ := h.PortByID("pab")
	pbc, _ := h.PortByID("pbc")
	return h, a, b, c, pab, pbc
}

func TestJumper_PanicsOnSubUnityGreedyMultiplier(t *testing.T) {
	require.Panics(t, func() { variant.NewJumper(0.5, 1) })
}

func TestJumper_EstimateCostToEndIsEuclidean(t *testing.T) {
	_, _, _, c, _, pbc := threeRegionChain(t)
	j := variant.NewJumper(1.0, 10)
	got := j.EstimateCostToEnd(pbc, c, nil)
	require.InDelta(t, 5.0, got, 1e-9)
}

func TestVia_EstimateCostToEndUsesHopMap(t *testing.T) {
	_, _, _, c, _, pbc := threeRegionChain(t)
	hops := heuristic.BuildHopMap(c)
	v := variant.NewVia(1.0, 10, 2, 1)
	got := v.EstimateCostToEnd(pbc, c, hops)
	require.Equal(t, 0.0, got, "pbc is directly incident to the end region C")
}

func TestIsRipRequiredForPortUsage_NoConflictWhenNoAssignments(t *testing.T) {
	_, _, b, _, pab, pbc := threeRegionChain(t)
	j := variant.NewJumper(1.0, 10)
	require.False(t, j.IsRipRequiredForPortUsage(b, pab, pbc, "net1"))
}

func TestIsRipRequiredForPortUsage_ConflictOnDifferentNet(t *testing.T) {
	h, _, b, _, pab, pbc := threeRegionChain(t)
	_ = h
	conn := &core.Connection{ConnectionID: "other", NetID: "other"}
	asg, err := core.NewAssignment(b, pab, pbc, conn)
	require.NoError(t, err)
	b.AttachAssignment(asg)
	// B has only two ports, so no chord through it can cross another;
	// marking it a via region makes any different-net assignment there a
	// conflict.
	b.IsViaRegion = true

	j := variant.NewJumper(1.0, 10)
	require.True(t, j.IsRipRequiredForPortUsage(b, pab, pbc, "mine"))
	rips := j.GetRipsRequiredForPortUsage(b, pab, pbc, "mine")
	require.Len(t, rips, 1)
}

func TestWithPortUsagePenalty_AddsFlatSurchargeToEveryRegionCost(t *testing.T) {
	_, _, b, _, pab, pbc := threeRegionChain(t)
	v := variant.NewVia(1.0, 10, 2, 3, variant.WithPortUsagePenalty(5, 7))
	cost := v.ComputeRegionCostIfPortsUsed(b, pab, pbc, 0)
	require.InDelta(t, 12.0, cost, 1e-9)
}

func TestComputeRegionCostIfPortsUsed_ScalesWithCrossingsSquared(t *testing.T) {
	_, _, b, _, pab, pbc := threeRegionChain(t)
	v := variant.NewVia(1.0, 10, 2, 3)
	cost := v.ComputeRegionCostIfPortsUsed(b, pab, pbc, 2)
	// 2*2 + 2^2*3 = 4 + 12 = 16
	require.InDelta(t, 16.0, cost, 1e-9)
}
