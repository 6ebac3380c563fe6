// Package geom provides the geometry primitives the routing core builds on:
// perimeter parameterization of a region's boundary, the chord-interleaving
// test used to detect when two ports' chords cross, and a Cartesian
// segment-intersection fallback for the cases the perimeter test alone
// cannot resolve.
//
// Every primitive here is pure and allocation-light; none of it knows about
// regions, ports, or nets — those live in package core and above. Numeric
// tolerances are literal constants, not configuration: coincidence 1e-6,
// segment intersection 1e-9, perimeter projection 1e-6, perimeter-cache
// degeneracy 1e-12.
package geom

import "math"

// Point is a 2D Cartesian point.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (z-component) of p and q treated as
// vectors from the origin.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Rect is an axis-aligned rectangle boundary, an alternative to a polygon
// for regions whose shape is a plain bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Center returns the rectangle's centroid.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Numeric tolerances, literal per the specification — never tunable.
const (
	// TolCoincident is the endpoint-coincidence tolerance for the chord
	// interleaving test: two perimeter positions within this distance are
	// treated as the same point (a shared port at a corner).
	TolCoincident = 1e-6

	// TolSegment is the epsilon used by the Cartesian segment-intersection
	// fallback.
	TolSegment = 1e-9

	// TolProjection is the tolerance used when projecting a query point onto
	// a polygon edge to compute its perimeter-T.
	TolProjection = 1e-6

	// TolDegenerate is the tolerance below which an edge length is treated
	// as degenerate (zero-length) when building the perimeter cache.
	TolDegenerate = 1e-12
)
