package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nets-route/hyperroute/core"
)

func threeRegionChain(t *testing.T) (*core.Hypergraph, *core.Region, *core.Port, *core.Port, *core.Region) {
	t.Helper()
	h := core.NewHypergraph()
	a, err := h.AddRegion("A")
	require.NoError(t, err)
	r, err := h.AddRegion("R")
	require.NoError(t, err)
	b, err := h.AddRegion("B")
	require.NoError(t, err)
	p1, err := h.AddPort("p1", a, r)
	require.NoError(t, err)
	p2, err := h.AddPort("p2", r, b)
	require.NoError(t, err)
	return h, r, p1, p2, b
}

func TestNewAssignment_RejectsSamePortTwice(t *testing.T) {
	_, r, p1, _, _ := threeRegionChain(t)
	_, err := core.NewAssignment(r, p1, p1, &core.Connection{ConnectionID: "c"})
	require.ErrorIs(t, err, core.ErrSamePortTwice)
}

func TestNewAssignment_RejectsNonIncidentPort(t *testing.T) {
	h := core.NewHypergraph()
	x, _ := h.AddRegion("X")
	y, _ := h.AddRegion("Y")
	z, _ := h.AddRegion("Z")
	px, _ := h.AddPort("px", x, y)
	pz, _ := h.AddPort("pz", y, z)
	_, err := core.NewAssignment(x, px, pz, &core.Connection{ConnectionID: "c"})
	require.ErrorIs(t, err, core.ErrPortNotIncident)
}

func TestRegion_AttachDetachAssignmentPreservesOrder(t *testing.T) {
	_, r, p1, p2, _ := threeRegionChain(t)
	conn := &core.Connection{ConnectionID: "c1"}
	a1, err := core.NewAssignment(r, p1, p2, conn)
	require.NoError(t, err)

	r.AttachAssignment(a1)
	require.Len(t, r.Assignments(), 1)

	a2, err := core.NewAssignment(r, p1, p2, conn)
	require.NoError(t, err)
	r.AttachAssignment(a2)
	require.Len(t, r.Assignments(), 2)

	require.True(t, r.DetachAssignment(a1))
	require.Equal(t, []*core.Assignment{a2}, r.Assignments())
	require.False(t, r.DetachAssignment(a1), "detaching again is a no-op that reports false")
}

