package crossing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/crossing"
	"github.com/nets-route/hyperroute/geom"
)

// squareWithCenterRegion builds a central region X with four ports at
// t=0, P/4, P/2, 3P/4 on a 10x10 square boundary, bridging to regions
// A, B, C, D.
func squareWithCenterRegion(t *testing.T) (h *core.Hypergraph, x *core.Region, pa, pb, pc, pd *core.Port) {
	t.Helper()
	sg := core.SerializedGraph{
		Regions: []core.SerializedRegion{
			{RegionID: "X", Rect: &geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
			{RegionID: "A"}, {RegionID: "B"}, {RegionID: "C"}, {RegionID: "D"},
		},
		Ports: []core.SerializedPort{
			{PortID: "pa", Region1ID: "X", Region2ID: "A", Pos: geom.Point{X: 0, Y: 0}},   // t=0
			{PortID: "pb", Region1ID: "X", Region2ID: "B", Pos: geom.Point{X: 10, Y: 0}},  // t=10 (P/4)
			{PortID: "pc", Region1ID: "X", Region2ID: "C", Pos: geom.Point{X: 10, Y: 10}}, // t=20 (P/2)
			{PortID: "pd", Region1ID: "X", Region2ID: "D", Pos: geom.Point{X: 0, Y: 10}},  // t=30 (3P/4)
		},
	}
	var err error
	h, _, err = core.Hydrate(sg, nil)
	require.NoError(t, err)
	x, _ = h.RegionByID("X")
	pa, _ = h.PortByID("pa")
	pb, _ = h.PortByID("pb")
	pc, _ = h.PortByID("pc")
	pd, _ = h.PortByID("pd")
	return
}

func TestCountCrossingsWithOtherNets_OppositeChordsCross(t *testing.T) {
	_, x, pa, pb, pc, pd := squareWithCenterRegion(t)

	connAC := &core.Connection{ConnectionID: "ac", NetID: "ac"}
	asg, err := core.NewAssignment(x, pa, pc, connAC)
	require.NoError(t, err)
	x.AttachAssignment(asg)

	count := crossing.CountCrossingsWithOtherNets(x, pb, pd, "bd")
	require.Equal(t, 1, count, "A-C and B-D chords interleave on the square")
}

func TestCountCrossingsWithOtherNets_SameNetDoesNotCount(t *testing.T) {
	_, x, pa, pb, pc, pd := squareWithCenterRegion(t)

	conn := &core.Connection{ConnectionID: "ac", NetID: "shared"}
	asg, err := core.NewAssignment(x, pa, pc, conn)
	require.NoError(t, err)
	x.AttachAssignment(asg)

	count := crossing.CountCrossingsWithOtherNets(x, pb, pd, "shared")
	require.Equal(t, 0, count, "same-net assignments never count as crossings")
}

func TestCountCrossingsWithOtherNets_AdjacentChordsDoNotCross(t *testing.T) {
	_, x, pa, pb, _, pd := squareWithCenterRegion(t)

	conn := &core.Connection{ConnectionID: "ab", NetID: "ab"}
	asg, err := core.NewAssignment(x, pa, pb, conn)
	require.NoError(t, err)
	x.AttachAssignment(asg)

	count := crossing.CountCrossingsWithOtherNets(x, pa, pd, "ad")
	// pa is shared: the chords meet at a corner, not a crossing.
	require.Equal(t, 0, count)
}

func TestListCrossingAssignments_ViaRegionIsExclusiveRegardlessOfGeometry(t *testing.T) {
	h, _, err := core.Hydrate(core.SerializedGraph{
		Regions: []core.SerializedRegion{
			{RegionID: "V", IsViaRegion: true},
			{RegionID: "L"}, {RegionID: "R"}, {RegionID: "T"}, {RegionID: "B"},
		},
		Ports: []core.SerializedPort{
			{PortID: "pl", Region1ID: "V", Region2ID: "L"},
			{PortID: "pr", Region1ID: "V", Region2ID: "R"},
			{PortID: "pt", Region1ID: "V", Region2ID: "T"},
			{PortID: "pb", Region1ID: "V", Region2ID: "B"},
		},
	}, nil)
	require.NoError(t, err)

	v, _ := h.RegionByID("V")
	pl, _ := h.PortByID("pl")
	pr, _ := h.PortByID("pr")
	pt, _ := h.PortByID("pt")
	pb, _ := h.PortByID("pb")

	first := &core.Connection{ConnectionID: "n1", NetID: "n1"}
	asg, err := core.NewAssignment(v, pl, pr, first)
	require.NoError(t, err)
	v.AttachAssignment(asg)

	// A second net's chord (T-B) does not geometrically cross (L-R), but
	// via exclusivity still reports it as a crossing.
	list := crossing.ListCrossingAssignments(v, pt, pb, "n2")
	require.Len(t, list, 1)
	require.Same(t, asg, list[0])
}
