// Package ripup implements the commit and rip-up controller: it appends
// a solved path's assignments, and when a new assignment conflicts
// with an existing one, detaches every conflicting assignment (and every
// other committed assignment of the same connection), bumps the affected
// ports' rip counters, and reopens the ripped connections for
// resolicitation by the driver.
package ripup
