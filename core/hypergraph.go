package core

// Hypergraph owns every Region and Port for one routing problem. Regions
// and ports live in arena slices addressed by integer index (Region.Idx,
// Port.Idx); lookups by external ID go through the index maps built at
// hydration. The arena is append-only for the life of the Hypergraph --
// regions and ports are never removed, only their assignments come and go.
type Hypergraph struct {
	regions []*Region
	ports   []*Port

	regionByID map[string]*Region
	portByID   map[string]*Port
}

// NewHypergraph returns an empty Hypergraph, ready for Hydrate or direct
// AddRegion/AddPort calls.
func NewHypergraph() *Hypergraph {
	return &Hypergraph{
		regionByID: make(map[string]*Region),
		portByID:   make(map[string]*Port),
	}
}

// Regions returns every region in arena order. The returned slice must not
// be mutated.
func (h *Hypergraph) Regions() []*Region { return h.regions }

// Ports returns every port in arena order. The returned slice must not be
// mutated.
func (h *Hypergraph) Ports() []*Port { return h.ports }

// RegionByID looks up a region by its external ID.
func (h *Hypergraph) RegionByID(id string) (*Region, bool) {
	r, ok := h.regionByID[id]
	return r, ok
}

// PortByID looks up a port by its external ID.
func (h *Hypergraph) PortByID(id string) (*Port, bool) {
	p, ok := h.portByID[id]
	return p, ok
}

// AddRegion registers a new region with an empty incidence list and
// returns it. Returns ErrDuplicateRegion if id is already registered.
func (h *Hypergraph) AddRegion(id string) (*Region, error) {
	if _, exists := h.regionByID[id]; exists {
		return nil, ErrDuplicateRegion
	}
	r := &Region{idx: len(h.regions), RegionID: id}
	h.regions = append(h.regions, r)
	h.regionByID[id] = r
	return r, nil
}

// AddPort registers a new port bridging region1 and region2, appending it
// to both regions' incidence lists. Returns ErrDuplicatePort if id is
// already registered, or ErrMalformedGraph if region1 == region2 (a port
// must bridge two distinct regions).
func (h *Hypergraph) AddPort(id string, region1, region2 *Region) (*Port, error) {
	if _, exists := h.portByID[id]; exists {
		return nil, ErrDuplicatePort
	}
	if region1 == region2 {
		return nil, ErrMalformedGraph
	}
	p := &Port{idx: len(h.ports), PortID: id, Region1: region1, Region2: region2}
	h.ports = append(h.ports, p)
	h.portByID[id] = p
	region1.addPort(p)
	region2.addPort(p)
	return p, nil
}
