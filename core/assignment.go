package core

// Assignment is a committed chord in a region: it records that a
// connection's route passes through Region by entering/exiting via Port1
// and Port2. Assignments are created only when a candidate is accepted on
// a solved path, and destroyed only by rip-up; they survive across
// connections.
type Assignment struct {
	Region     *Region
	Port1      *Port
	Port2      *Port
	Connection *Connection
}

// NewAssignment constructs an Assignment after validating the data-model
// invariants: port1 != port2, and both ports incident to region.
func NewAssignment(region *Region, port1, port2 *Port, conn *Connection) (*Assignment, error) {
	if port1 == port2 {
		return nil, ErrSamePortTwice
	}
	if !incidentTo(region, port1) || !incidentTo(region, port2) {
		return nil, ErrPortNotIncident
	}
	return &Assignment{Region: region, Port1: port1, Port2: port2, Connection: conn}, nil
}

func incidentTo(r *Region, p *Port) bool {
	return p.Region1 == r || p.Region2 == r
}

// OtherPort returns the assignment's port on the opposite side from p. It
// panics if p is neither Port1 nor Port2, a caller bug.
func (a *Assignment) OtherPort(p *Port) *Port {
	switch p {
	case a.Port1:
		return a.Port2
	case a.Port2:
		return a.Port1
	default:
		panic("core: Assignment.OtherPort called with an unrelated port")
	}
}
