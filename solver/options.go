package solver

import "github.com/nets-route/hyperroute/ripup"

// Options configures the iteration budget formula, rip-up availability,
// and rip observability. The iteration budget is BaseBudget +
// PerConnectionBudget*|connections| + PerCrossingBudget*inputCrossings.
type Options struct {
	BaseBudget          int
	PerConnectionBudget int
	PerCrossingBudget   int

	RippingEnabled bool

	OnRip func(ripup.RipEvent)
}

// DefaultOptions returns the baseline budget knobs: a fixed floor plus a
// modest per-connection and per-crossing allowance, generous enough that
// ordinary scenarios solve without hitting the cap, with rip-up enabled.
func DefaultOptions() Options {
	return Options{
		BaseBudget:          64,
		PerConnectionBudget: 32,
		PerCrossingBudget:   16,
		RippingEnabled:      true,
	}
}

// Option mutates an Options value. Later options override earlier ones.
type Option func(*Options)

// WithBudget overrides all three budget-formula knobs at once.
func WithBudget(base, perConnection, perCrossing int) Option {
	return func(o *Options) {
		o.BaseBudget = base
		o.PerConnectionBudget = perConnection
		o.PerCrossingBudget = perCrossing
	}
}

// WithOnRip registers a callback fired once per ripped assignment,
// forwarded verbatim to the underlying ripup.Controller.
func WithOnRip(fn func(ripup.RipEvent)) Option {
	return func(o *Options) {
		o.OnRip = fn
	}
}

// WithRippingEnabled toggles whether the solver may evict a conflicting
// assignment to claim a port pair. When disabled, any port pair that
// would require a rip is simply unavailable to the search: a connection
// that can only reach its end region through a contested port fails
// instead of displacing the assignment already holding it.
func WithRippingEnabled(enabled bool) Option {
	return func(o *Options) {
		o.RippingEnabled = enabled
	}
}
