// Package fixture builds small hypergraphs exercising specific routing
// situations: a two-region one-port bridge, a four-region square around a
// central jumper region, a via region touching four neighbors, and a dense
// grid sized to exhaust a small iteration budget. Each constructor
// deep-validates its input shape and returns an error rather than a
// malformed graph, mirroring gridgraph.NewGridGraph's
// validated-construction style.
package fixture
