package geom

// SegmentsIntersect reports whether Cartesian segments (p1,p2) and (p3,p4)
// straddle each other, using the standard cross-product straddling test
// with epsilon TolSegment. Coincident endpoints (shared corner) are
// excluded: if any endpoint of one segment coincides with an endpoint of
// the other (within TolSegment), it is not reported as a crossing.
//
// This is the supplementary check applied alongside ChordsCrossOnPerimeter:
// when both endpoints of a chord lie on the same polygon edge, the
// perimeter-interleaving test alone can false-negative, so a region's
// crossing engine ORs both tests together.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	if sharesEndpoint(p1, p2, p3, p4) {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear special cases: a segment endpoint lying exactly on the
	// other segment counts as a straddle only if it falls strictly inside
	// it (handled by onSegment with the endpoint-coincidence guard above).
	if nearZero(d1) && onSegment(p3, p4, p1) {
		return true
	}
	if nearZero(d2) && onSegment(p3, p4, p2) {
		return true
	}
	if nearZero(d3) && onSegment(p1, p2, p3) {
		return true
	}
	if nearZero(d4) && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

func sharesEndpoint(p1, p2, p3, p4 Point) bool {
	return closeEnough(p1, p3) || closeEnough(p1, p4) || closeEnough(p2, p3) || closeEnough(p2, p4)
}

func closeEnough(a, b Point) bool {
	return a.Dist(b) <= TolSegment
}

// direction returns the cross product (c-a) x (b-a), i.e. which side of
// line a->c the point b falls on.
func direction(a, c, b Point) float64 {
	return c.Sub(a).Cross(b.Sub(a))
}

func nearZero(x float64) bool {
	return x > -TolSegment && x < TolSegment
}

// onSegment reports whether point b, known collinear with a->c, falls
// within the bounding box of a->c (i.e. actually lies on the segment, not
// merely on the infinite line).
func onSegment(a, c, b Point) bool {
	minX, maxX := a.X, c.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, c.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return b.X >= minX-TolSegment && b.X <= maxX+TolSegment &&
		b.Y >= minY-TolSegment && b.Y <= maxY+TolSegment
}
