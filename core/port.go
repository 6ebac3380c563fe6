package core

import "github.com/nets-route/hyperroute/geom"

// Port is a point on the shared boundary of exactly two regions; routes hop
// from region to region by crossing ports. Ports are created once at
// hydration, shared by exactly two regions for their entire lifetime, which
// equals the graph's.
type Port struct {
	idx int // arena index within the owning Hypergraph

	PortID  string
	Region1 *Region
	Region2 *Region
	Pos     geom.Point

	// t1, t2 cache PerimeterT(Region1, Pos) and PerimeterT(Region2, Pos)
	// respectively; t1Valid/t2Valid report whether the cache is populated.
	t1, t2           float64
	t1Valid, t2Valid bool

	// ripCount increments every time an Assignment using this port is
	// ripped. It monotonically increases for the life of the port and is
	// used by the search engine to detect stale candidates.
	ripCount uint64
}

// Idx returns the port's arena index, a cheap identity key.
func (p *Port) Idx() int { return p.idx }

// RipCount returns the port's current rip counter.
func (p *Port) RipCount() uint64 { return p.ripCount }

// bumpRipCount increments the port's rip counter. Called only by the
// rip-up controller.
func (p *Port) bumpRipCount() { p.ripCount++ }

// Other returns the region on the opposite side of this port from r. It
// panics if r is neither Region1 nor Region2, which would indicate a
// caller bug (a port not incident to the region it's being asked about).
func (p *Port) Other(r *Region) *Region {
	switch {
	case r == p.Region1:
		return p.Region2
	case r == p.Region2:
		return p.Region1
	default:
		panic("core: Port.Other called with a region the port is not incident to")
	}
}

// PerimeterT returns the port's perimeter-T coordinate on region r,
// computing and caching it on first call. Returns false if r is neither of
// the port's two regions.
func (p *Port) PerimeterT(r *Region) (float64, bool) {
	switch {
	case r == p.Region1:
		if !p.t1Valid {
			t, ok := r.PerimeterCache().ParamT(p.Pos)
			if !ok {
				return 0, false
			}
			p.t1, p.t1Valid = t, true
		}
		return p.t1, true
	case r == p.Region2:
		if !p.t2Valid {
			t, ok := r.PerimeterCache().ParamT(p.Pos)
			if !ok {
				return 0, false
			}
			p.t2, p.t2Valid = t, true
		}
		return p.t2, true
	default:
		return 0, false
	}
}

// ChordEndpoint returns the geom.ChordEndpoints (T and Cartesian position)
// of this port on region r, for use by the chord-crossing engine. ok is
// false if r is neither of the port's two regions or the perimeter-T could
// not be computed.
func (p *Port) ChordEndpoint(r *Region) (geom.ChordEndpoints, bool) {
	t, ok := p.PerimeterT(r)
	if !ok {
		return geom.ChordEndpoints{}, false
	}
	return geom.ChordEndpoints{T: t, Pos: p.Pos}, true
}
