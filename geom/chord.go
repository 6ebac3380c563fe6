package geom

import "math"

// ChordsCrossOnPerimeter reports whether chord (a,b) and chord (c,d) --
// four perimeter-T positions on a circle of circumference p -- interleave:
// exactly one of c, d lies in the open arc (a,b) taken modulo p.
//
// Endpoints coincident within TolCoincident do not count as crossings (a
// shared port at a polygon corner is not a conflict).
func ChordsCrossOnPerimeter(a, b, c, d, p float64) bool {
	if p <= 0 {
		return false
	}
	if coincident(a, c, p) || coincident(a, d, p) || coincident(b, c, p) || coincident(b, d, p) {
		return false
	}
	cIn := inOpenArc(c, a, b, p)
	dIn := inOpenArc(d, a, b, p)
	return cIn != dIn
}

// coincident reports whether x and y are within TolCoincident of each other
// on a circle of circumference p (wrapping at the seam).
func coincident(x, y, p float64) bool {
	diff := math.Abs(x - y)
	diff = math.Min(diff, p-diff)
	return diff <= TolCoincident
}

// inOpenArc reports whether x lies strictly between a and b walking
// clockwise (increasing t, mod p) from a to b, excluding the endpoints.
func inOpenArc(x, a, b, p float64) bool {
	// Normalize so the arc starts at 0 and runs to span = (b-a) mod p.
	span := mod(b-a, p)
	pos := mod(x-a, p)
	return pos > TolCoincident && pos < span-TolCoincident
}

func mod(x, p float64) float64 {
	m := math.Mod(x, p)
	if m < 0 {
		m += p
	}
	return m
}
