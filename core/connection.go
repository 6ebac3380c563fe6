package core

// Connection is an external input: a request to route between two regions,
// optionally tagged with a net ID shared by other connections. Connections
// are never mutated by the solver; they are referenced by Assignments and
// SolvedRoutes.
type Connection struct {
	ConnectionID string

	// NetID is the mutuallyConnectedNetworkId: an equivalence class of
	// connections that may share regions without crossing penalties.
	// Hydration defaults an unset NetID to the connection's own
	// ConnectionID, so an unspecified net never silently groups unrelated
	// connections together (see DESIGN.md).
	NetID string

	Start *Region
	End   *Region
}

// SameNet reports whether c and other belong to the same net (equal
// NetID).
func (c *Connection) SameNet(other *Connection) bool {
	if c == nil || other == nil {
		return false
	}
	return c.NetID == other.NetID
}
