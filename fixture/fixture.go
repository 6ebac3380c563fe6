package fixture

import (
	"fmt"

	"github.com/nets-route/hyperroute/core"
	"github.com/nets-route/hyperroute/geom"
)

// TwoRegionOnePort builds regions A and B sharing a single port, plus one
// connection A->B. The route it solves to crosses exactly that port and
// leaves no assignment behind in either endpoint region.
func TwoRegionOnePort() (*core.Hypergraph, []*core.Connection, error) {
	h, conns, err := core.Hydrate(core.SerializedGraph{
		Regions: []core.SerializedRegion{{RegionID: "A"}, {RegionID: "B"}},
		Ports:   []core.SerializedPort{{PortID: "p", Region1ID: "A", Region2ID: "B"}},
	}, []core.SerializedConnection{
		{ConnectionID: "ab", NetID: "ab", StartRegionID: "A", EndRegionID: "B"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: TwoRegionOnePort: %w", err)
	}
	return h, conns, nil
}

// Square builds a four-region square around a central jumper region X,
// ten units on a side, touching A, B, C, D at perimeter
// t = 0, P/4, P/2, 3P/4 respectively, plus a perimeter bypass region E
// bridging A and C (A-E-C, routed entirely outside X). It returns both
// connections ("ac": A->C, "bd": B->D), so the central region's two
// chords interleave unless one route detours through E ("bd" can reach E
// only by passing through X to A or C first).
func Square() (*core.Hypergraph, []*core.Connection, error) {
	h, conns, err := core.Hydrate(core.SerializedGraph{
		Regions: []core.SerializedRegion{
			{RegionID: "X", Rect: &geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, IsThroughJumper: true},
			{RegionID: "A"}, {RegionID: "B"},
			{RegionID: "C", Center: geom.Point{X: 0, Y: 15}},
			{RegionID: "D"}, {RegionID: "E"},
		},
		Ports: []core.SerializedPort{
			{PortID: "pa", Region1ID: "X", Region2ID: "A", Pos: geom.Point{X: 0, Y: 0}},
			{PortID: "pb", Region1ID: "X", Region2ID: "B", Pos: geom.Point{X: 10, Y: 0}},
			{PortID: "pc", Region1ID: "X", Region2ID: "C", Pos: geom.Point{X: 10, Y: 10}},
			{PortID: "pd", Region1ID: "X", Region2ID: "D", Pos: geom.Point{X: 0, Y: 10}},
			{PortID: "pae", Region1ID: "A", Region2ID: "E", Pos: geom.Point{X: -10, Y: 0}},
			{PortID: "pec", Region1ID: "E", Region2ID: "C", Pos: geom.Point{X: -10, Y: 20}},
		},
	}, []core.SerializedConnection{
		{ConnectionID: "ac", NetID: "ac", StartRegionID: "A", EndRegionID: "C"},
		{ConnectionID: "bd", NetID: "bd", StartRegionID: "B", EndRegionID: "D"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: Square: %w", err)
	}
	return h, conns, nil
}

// ViaCross builds a via-exclusivity scenario: a via region V touching
// L, R, T, and B, plus a non-via bypass region Z offering a second,
// geometry-free route from L to R. Two connections both want to pass
// L->R: "first" claims V outright; "second" has Z available as an
// alternative so via exclusivity can be satisfied without forcing a rip.
func ViaCross() (*core.Hypergraph, []*core.Connection, error) {
	h, conns, err := core.Hydrate(core.SerializedGraph{
		Regions: []core.SerializedRegion{
			{RegionID: "V", IsViaRegion: true},
			{RegionID: "L"}, {RegionID: "R"}, {RegionID: "T"}, {RegionID: "B"},
			{RegionID: "Z"},
		},
		Ports: []core.SerializedPort{
			{PortID: "vl", Region1ID: "V", Region2ID: "L"},
			{PortID: "vr", Region1ID: "V", Region2ID: "R"},
			{PortID: "vt", Region1ID: "V", Region2ID: "T"},
			{PortID: "vb", Region1ID: "V", Region2ID: "B"},
			{PortID: "lz", Region1ID: "L", Region2ID: "Z"},
			{PortID: "zr", Region1ID: "Z", Region2ID: "R"},
		},
	}, []core.SerializedConnection{
		{ConnectionID: "first", NetID: "first", StartRegionID: "L", EndRegionID: "R"},
		{ConnectionID: "second", NetID: "second", StartRegionID: "L", EndRegionID: "R"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: ViaCross: %w", err)
	}
	return h, conns, nil
}

// DenseGrid builds an n x n grid of regions (4-connected, like
// gridgraph's Conn4 neighbor offsets) and returns a contentious connection
// set: one connection per row, routed from that row's left edge to the
// mirrored row's right edge (row i -> row n-1-i), each on its own net. Every
// one of these diagonal routes is forced through the grid's interior
// columns, where its chord shares cells -- and interleaves -- with the
// other diagonals' chords, giving a dense, rip-heavy load. Regions are
// IDed "x,y" row-major, matching gridgraph's vertexID convention.
func DenseGrid(n int) (*core.Hypergraph, []*core.Connection, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("fixture: DenseGrid: n must be >= 2, got %d", n)
	}

	var sg core.SerializedGraph
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sg.Regions = append(sg.Regions, core.SerializedRegion{
				RegionID: id(x, y),
				Rect: &geom.Rect{
					MinX: float64(x), MinY: float64(y),
					MaxX: float64(x + 1), MaxY: float64(y + 1),
				},
				Center: geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5},
			})
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				sg.Ports = append(sg.Ports, core.SerializedPort{
					PortID:    fmt.Sprintf("h%d,%d", x, y),
					Region1ID: id(x, y), Region2ID: id(x+1, y),
					Pos: geom.Point{X: float64(x + 1), Y: float64(y) + 0.5},
				})
			}
			if y+1 < n {
				sg.Ports = append(sg.Ports, core.SerializedPort{
					PortID:    fmt.Sprintf("v%d,%d", x, y),
					Region1ID: id(x, y), Region2ID: id(x, y+1),
					Pos: geom.Point{X: float64(x) + 0.5, Y: float64(y + 1)},
				})
			}
		}
	}

	var sconns []core.SerializedConnection
	for y := 0; y < n; y++ {
		netID := fmt.Sprintf("net%d", y)
		sconns = append(sconns, core.SerializedConnection{
			ConnectionID:  fmt.Sprintf("diag%d", y),
			NetID:         netID,
			StartRegionID: id(0, y),
			EndRegionID:   id(n-1, n-1-y),
		})
	}

	h, conns, err := core.Hydrate(sg, sconns)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: DenseGrid: %w", err)
	}
	return h, conns, nil
}
