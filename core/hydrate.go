package core

import (
	"fmt"

	"github.com/nets-route/hyperroute/geom"
)

// SerializedRegion is the wire-shaped, ID-free-of-pointers form of a
// Region, as it arrives before hydration.
type SerializedRegion struct {
	RegionID string
	Polygon  []geom.Point
	Rect     *geom.Rect
	Center   geom.Point

	IsPad              bool
	IsThroughJumper    bool
	IsViaRegion        bool
	IsConnectionRegion bool
}

// SerializedPort is the wire-shaped form of a Port: it references its two
// regions by ID rather than by pointer.
type SerializedPort struct {
	PortID    string
	Region1ID string
	Region2ID string
	Pos       geom.Point
}

// SerializedGraph is the ID-based input form of a hypergraph, accepted by
// Hydrate.
type SerializedGraph struct {
	Regions []SerializedRegion
	Ports   []SerializedPort
}

// SerializedConnection is the ID-based input form of a Connection.
// NetID is optional; if empty, Hydrate defaults it to ConnectionID so an
// unspecified net never silently groups unrelated connections together.
type SerializedConnection struct {
	ConnectionID  string
	NetID         string
	StartRegionID string
	EndRegionID   string
}

// Hydrate builds a Hypergraph and the list of hydrated Connections from
// their serialized, ID-based forms. It proceeds in two passes: first every
// region is created with an empty incidence list, then every
// port is created with direct references to its two regions and appended
// to each region's incidence list. Missing referents fail with
// ErrMalformedGraph (ports) or ErrMissingRegion (connections).
//
// Hydrate is idempotent: hydrating the serialized form of an
// already-hydrated graph (via Hypergraph.Serialize) yields an equivalent
// graph -- same regions, ports, and incidences.
func Hydrate(sg SerializedGraph, sconns []SerializedConnection) (*Hypergraph, []*Connection, error) {
	h := NewHypergraph()

	// Pass 1: create every region with an empty incidence list.
	for _, sr := range sg.Regions {
		r, err := h.AddRegion(sr.RegionID)
		if err != nil {
			return nil, nil, fmt.Errorf("core: hydrate region %q: %w", sr.RegionID, err)
		}
		r.Boundary = geom.Boundary{Polygon: sr.Polygon, Rect: sr.Rect}
		r.Center = sr.Center
		r.IsPad = sr.IsPad
		r.IsThroughJumper = sr.IsThroughJumper
		r.IsViaRegion = sr.IsViaRegion
		r.IsConnectionRegion = sr.IsConnectionRegion
	}

	// Pass 2: create every port, resolving its two region IDs.
	for _, sp := range sg.Ports {
		r1, ok := h.RegionByID(sp.Region1ID)
		if !ok {
			return nil, nil, fmt.Errorf("core: hydrate port %q: %w: region %q", sp.PortID, ErrMalformedGraph, sp.Region1ID)
		}
		r2, ok := h.RegionByID(sp.Region2ID)
		if !ok {
			return nil, nil, fmt.Errorf("core: hydrate port %q: %w: region %q", sp.PortID, ErrMalformedGraph, sp.Region2ID)
		}
		p, err := h.AddPort(sp.PortID, r1, r2)
		if err != nil {
			return nil, nil, fmt.Errorf("core: hydrate port %q: %w", sp.PortID, err)
		}
		p.Pos = sp.Pos
	}

	// Connections: resolve start/end region IDs; default an empty NetID to
	// the connection's own ID.
	conns := make([]*Connection, 0, len(sconns))
	for _, sc := range sconns {
		if sc.ConnectionID == "" {
			return nil, nil, fmt.Errorf("core: hydrate connection: %w: empty connection ID", ErrInvalidConnection)
		}
		start, ok := h.RegionByID(sc.StartRegionID)
		if !ok {
			return nil, nil, fmt.Errorf("core: hydrate connection %q: %w: start region %q", sc.ConnectionID, ErrMissingRegion, sc.StartRegionID)
		}
		end, ok := h.RegionByID(sc.EndRegionID)
		if !ok {
			return nil, nil, fmt.Errorf("core: hydrate connection %q: %w: end region %q", sc.ConnectionID, ErrMissingRegion, sc.EndRegionID)
		}
		netID := sc.NetID
		if netID == "" {
			netID = sc.ConnectionID
		}
		conns = append(conns, &Connection{
			ConnectionID: sc.ConnectionID,
			NetID:        netID,
			Start:        start,
			End:          end,
		})
	}

	return h, conns, nil
}

// Serialize converts h back into its ID-based SerializedGraph form, for
// round-tripping through Hydrate (used to test hydration idempotence).
func (h *Hypergraph) Serialize() SerializedGraph {
	sg := SerializedGraph{
		Regions: make([]SerializedRegion, len(h.regions)),
		Ports:   make([]SerializedPort, len(h.ports)),
	}
	for i, r := range h.regions {
		sg.Regions[i] = SerializedRegion{
			RegionID:           r.RegionID,
			Polygon:            r.Boundary.Polygon,
			Rect:               r.Boundary.Rect,
			Center:             r.Center,
			IsPad:              r.IsPad,
			IsThroughJumper:    r.IsThroughJumper,
			IsViaRegion:        r.IsViaRegion,
			IsConnectionRegion: r.IsConnectionRegion,
		}
	}
	for i, p := range h.ports {
		sg.Ports[i] = SerializedPort{
			PortID:    p.PortID,
			Region1ID: p.Region1.RegionID,
			Region2ID: p.Region2.RegionID,
			Pos:       p.Pos,
		}
	}
	return sg
}
