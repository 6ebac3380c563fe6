package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nets-route/hyperroute/geom"
)

func TestParamT_Rectangle_OriginTopLeftClockwise(t *testing.T) {
	r := geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4}
	pc := geom.BuildPerimeterCache(geom.Boundary{Rect: &r})
	require.InDelta(t, 28, pc.Perimeter(), 1e-9)

	tTopLeft, ok := pc.ParamT(geom.Point{X: 0, Y: 0})
	require.True(t, ok)
	require.InDelta(t, 0, tTopLeft, 1e-6)

	tMidTop, ok := pc.ParamT(geom.Point{X: 5, Y: 0})
	require.True(t, ok)
	require.InDelta(t, 5, tMidTop, 1e-6)

	tTopRight, ok := pc.ParamT(geom.Point{X: 10, Y: 0})
	require.True(t, ok)
	require.InDelta(t, 10, tTopRight, 1e-6)

	tBottomRight, ok := pc.ParamT(geom.Point{X: 10, Y: 4})
	require.True(t, ok)
	require.InDelta(t, 14, tBottomRight, 1e-6)
}

func TestParamT_Polygon_TieBreakLowestEdgeIndex(t *testing.T) {
	// A degenerate "polygon" where the query point sits exactly on a shared
	// vertex between edge 0 and edge 1: ties must resolve to the lower
	// edge index, i.e. t is measured as the END of edge 0, not the start
	// of edge 1 (both are numerically the same point here).
	poly := []geom.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	pc := geom.BuildPerimeterCache(geom.Boundary{Polygon: poly})
	tAt, ok := pc.ParamT(geom.Point{X: 4, Y: 0})
	require.True(t, ok)
	require.InDelta(t, 4, tAt, 1e-6)
}

func TestParamT_StableAcrossRepeatedCalls(t *testing.T) {
	poly := []geom.Point{{0, 0}, {3, 0}, {3, 3}, {0, 3}}
	pc := geom.BuildPerimeterCache(geom.Boundary{Polygon: poly})
	q := geom.Point{X: 1.5, Y: 3}
	t1, _ := pc.ParamT(q)
	t2, _ := pc.ParamT(q)
	require.Equal(t, t1, t2, "perimeter-T must be bit-identical across repeated calls")
}

func TestParamT_EmptyBoundary(t *testing.T) {
	pc := geom.BuildPerimeterCache(geom.Boundary{})
	_, ok := pc.ParamT(geom.Point{X: 0, Y: 0})
	require.False(t, ok)
	require.Zero(t, pc.Perimeter())
}
