// Package crossing implements the per-region chord-crossing engine: given
// a region and a candidate port pair, it counts and lists the
// existing assignments whose chord would cross the new one, and carries
// the via-region exclusivity rule (any different-net assignment in a via
// region counts as a crossing, regardless of geometry).
package crossing
