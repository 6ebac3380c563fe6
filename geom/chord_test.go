package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nets-route/hyperroute/geom"
)

func TestChordsCrossOnPerimeter_Interleaved(t *testing.T) {
	// Four points on a circle of circumference 100 at 0, 25, 50, 75:
	// chord (0,50) and chord (25,75) interleave.
	require.True(t, geom.ChordsCrossOnPerimeter(0, 50, 25, 75, 100))
}

func TestChordsCrossOnPerimeter_Nested(t *testing.T) {
	// Chord (0,50) and chord (10,20): both endpoints of the second chord
	// lie inside the same arc, so they do not cross.
	require.False(t, geom.ChordsCrossOnPerimeter(0, 50, 10, 20, 100))
}

func TestChordsCrossOnPerimeter_CoincidentEndpointIsNotACrossing(t *testing.T) {
	// A shared port at a corner: c coincides with a within tolerance.
	require.False(t, geom.ChordsCrossOnPerimeter(10, 60, 10+5e-7, 80, 100))
}

func TestChordsCrossOnPerimeter_DegenerateZeroPerimeter(t *testing.T) {
	require.False(t, geom.ChordsCrossOnPerimeter(0, 1, 2, 3, 0))
}

func TestSegmentsIntersect_SimpleX(t *testing.T) {
	require.True(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2},
		geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0},
	))
}

func TestSegmentsIntersect_SharedCornerIsNotACrossing(t *testing.T) {
	require.False(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2},
		geom.Point{X: 2, Y: 2}, geom.Point{X: 4, Y: 0},
	))
}

func TestSegmentsIntersect_SameEdgeFallbackCatchesWhatPerimeterMisses(t *testing.T) {
	// Two chords whose endpoints all lie on the same polygon edge
	// (collinear, y=0): the perimeter test on a degenerate boundary can
	// miss this, but the Cartesian test must detect the overlap.
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}
	c, d := geom.Point{X: 4, Y: 0}, geom.Point{X: 14, Y: 0}
	require.True(t, geom.SegmentsIntersect(a, b, c, d))
}

func TestGeometricCross_OrsBothTests(t *testing.T) {
	endA := geom.ChordEndpoints{T: 0, Pos: geom.Point{X: 0, Y: 0}}
	endB := geom.ChordEndpoints{T: 50, Pos: geom.Point{X: 10, Y: 10}}
	endC := geom.ChordEndpoints{T: 25, Pos: geom.Point{X: 0, Y: 10}}
	endD := geom.ChordEndpoints{T: 75, Pos: geom.Point{X: 10, Y: 0}}
	require.True(t, geom.GeometricCross(endA, endB, endC, endD, 100))
}
