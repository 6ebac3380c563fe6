package ripup

import "github.com/nets-route/hyperroute/core"

// RipEvent describes one ripped assignment, delivered to an OnRip
// callback. ReopenedConnectionID is the connection that owned the
// assignment and must now be resolicited by the driver.
type RipEvent struct {
	Assignment           *core.Assignment
	Region               *core.Region
	ReopenedConnectionID string
}
