package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nets-route/hyperroute/fixture"
)

func TestTwoRegionOnePort_Shape(t *testing.T) {
	h, conns, err := fixture.TwoRegionOnePort()
	require.NoError(t, err)
	require.Len(t, h.Regions(), 2)
	require.Len(t, h.Ports(), 1)
	require.Len(t, conns, 1)
}

func TestSquare_Shape(t *testing.T) {
	h, conns, err := fixture.Square()
	require.NoError(t, err)
	require.Len(t, h.Regions(), 6)
	require.Len(t, h.Ports(), 6)
	require.Len(t, conns, 2)

	x, ok := h.RegionByID("X")
	require.True(t, ok)
	require.Len(t, x.Ports(), 4)
}

func TestViaCross_Shape(t *testing.T) {
	h, conns, err := fixture.ViaCross()
	require.NoError(t, err)
	require.Len(t, conns, 2)

	v, ok := h.RegionByID("V")
	require.True(t, ok)
	require.True(t, v.IsViaRegion)
	require.Len(t, v.Ports(), 4)

	z, ok := h.RegionByID("Z")
	require.True(t, ok)
	require.Len(t, z.Ports(), 2, "Z bridges L and R as a non-via bypass")
}

func TestDenseGrid_ShapeAndConnectionCount(t *testing.T) {
	h, conns, err := fixture.DenseGrid(6)
	require.NoError(t, err)
	require.Len(t, h.Regions(), 36)
	require.Len(t, conns, 6)

	corner, ok := h.RegionByID("0,0")
	require.True(t, ok)
	require.Len(t, corner.Ports(), 2, "a grid corner has exactly two neighbors")

	interior, ok := h.RegionByID("2,2")
	require.True(t, ok)
	require.Len(t, interior.Ports(), 4, "an interior cell has all four neighbors")
}

func TestDenseGrid_RejectsTooSmallN(t *testing.T) {
	_, _, err := fixture.DenseGrid(1)
	require.Error(t, err)
}
