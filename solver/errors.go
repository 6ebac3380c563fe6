package solver

import "errors"

// Sentinel error kinds recorded when the solver transitions to failed.
// Solve and Step still return normally; the kind is read back via Err.
var (
	// ErrBudgetExhausted indicates the iteration count exceeded the
	// solver-wide budget before every connection routed.
	ErrBudgetExhausted = errors.New("solver: iteration budget exhausted")

	// ErrUnreachableGoal indicates a connection's frontier emptied without
	// reaching its end region.
	ErrUnreachableGoal = errors.New("solver: no path to the end region")
)
