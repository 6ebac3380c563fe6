package core

import "errors"

// Sentinel errors for hypergraph construction and mutation.
var (
	// ErrMalformedGraph indicates a port referenced an unknown region, or a
	// region lacks a required polygon/rect when geometry ops are invoked.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrMissingRegion indicates a connection referenced a region ID that
	// does not exist in the graph.
	ErrMissingRegion = errors.New("core: missing region")

	// ErrInvalidConnection indicates a connection is structurally invalid
	// (e.g. empty connection ID).
	ErrInvalidConnection = errors.New("core: invalid connection")

	// ErrDuplicateRegion indicates two regions were hydrated with the same
	// region ID.
	ErrDuplicateRegion = errors.New("core: duplicate region ID")

	// ErrDuplicatePort indicates two ports were hydrated with the same port
	// ID.
	ErrDuplicatePort = errors.New("core: duplicate port ID")

	// ErrSamePortTwice indicates an Assignment was constructed with
	// port1 == port2, violating the data-model invariant.
	ErrSamePortTwice = errors.New("core: assignment ports must differ")

	// ErrPortNotIncident indicates an Assignment or candidate referenced a
	// port that is not incident to the region in question.
	ErrPortNotIncident = errors.New("core: port not incident to region")
)
