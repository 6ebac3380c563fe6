package core

// RipAssignment detaches a from its region's committed-assignment list and
// increments both of its ports' rip counters, in one atomic step. It is the
// only way a port's rip counter advances; called exclusively by package
// ripup during commit-time conflict resolution.
//
// Returns false if a was already detached (a no-op rip, which the rip-up
// controller treats as success -- a cascade may reach the same assignment
// twice).
func RipAssignment(a *Assignment) bool {
	if !a.Region.DetachAssignment(a) {
		return false
	}
	a.Port1.bumpRipCount()
	a.Port2.bumpRipCount()
	return true
}
