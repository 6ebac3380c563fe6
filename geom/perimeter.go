package geom

import "math"

// Boundary is anything that can be walked as a closed perimeter: either a
// simple polygon (vertex sequence, as given) or an axis-aligned rectangle.
// Regions hold a Boundary and a lazily-computed PerimeterCache built from it.
type Boundary struct {
	// Polygon is the vertex sequence, walked in the order given. Nil if the
	// region is expressed as a Rect instead.
	Polygon []Point

	// Rect is the axis-aligned alternative to Polygon. Only one of Polygon
	// or Rect should be set; Polygon takes precedence when both are present.
	Rect *Rect
}

// edges returns the boundary's vertices in walk order; each consecutive
// pair (wrapping around) is one edge of the closed boundary. For a polygon
// these are its vertices as given; for a rectangle, its four corners
// walked from the top-left corner, clockwise.
func (b Boundary) edges() []Point {
	if len(b.Polygon) > 0 {
		return b.Polygon
	}
	if b.Rect != nil {
		r := *b.Rect
		return []Point{
			{r.MinX, r.MinY}, // top-left, the fixed origin
			{r.MaxX, r.MinY}, // top-right
			{r.MaxX, r.MaxY}, // bottom-right
			{r.MinX, r.MaxY}, // bottom-left
		}
	}
	return nil
}

// PerimeterCache holds the precomputed edge lengths and prefix sums for a
// Boundary, so repeated ParamT calls on the same region are O(E) instead of
// recomputing cumulative lengths each time. It is built once, lazily, and
// never invalidated during solving (the polygon does not change).
type PerimeterCache struct {
	verts     []Point   // boundary vertices in walk order
	edgeLen   []float64 // length of edge i (verts[i] -> verts[(i+1)%n])
	prefix    []float64 // prefix[i] = cumulative length before edge i
	perimeter float64   // total perimeter length P
}

// BuildPerimeterCache walks b's edges once and returns the cache used by
// ParamT. An empty or single-vertex boundary yields a zero-perimeter cache.
func BuildPerimeterCache(b Boundary) *PerimeterCache {
	verts := b.edges()
	n := len(verts)
	pc := &PerimeterCache{verts: verts, edgeLen: make([]float64, n), prefix: make([]float64, n)}
	if n < 2 {
		return pc
	}
	var acc float64
	for i := 0; i < n; i++ {
		a := verts[i]
		c := verts[(i+1)%n]
		l := a.Dist(c)
		if l < TolDegenerate {
			l = 0
		}
		pc.edgeLen[i] = l
		pc.prefix[i] = acc
		acc += l
	}
	pc.perimeter = acc
	return pc
}

// Perimeter returns the cached total perimeter length P.
func (pc *PerimeterCache) Perimeter() float64 {
	if pc == nil {
		return 0
	}
	return pc.perimeter
}

// ParamT projects query point q onto every edge of the cached boundary and
// returns the scalar t in [0, P) of the minimum-distance projection,
// breaking ties by the lowest edge index. t = cumulative length to the
// edge's start plus the fractional distance of the projection along the
// edge.
//
// Returns (0, false) if the cache has fewer than two vertices (no edges to
// project onto).
func (pc *PerimeterCache) ParamT(q Point) (float64, bool) {
	if pc == nil || len(pc.verts) < 2 {
		return 0, false
	}
	bestDist := math.Inf(1)
	bestT := 0.0
	found := false
	n := len(pc.verts)
	for i := 0; i < n; i++ {
		a := pc.verts[i]
		c := pc.verts[(i+1)%n]
		frac, dist := projectOntoSegment(q, a, c)
		if dist < bestDist-TolProjection {
			bestDist = dist
			bestT = pc.prefix[i] + frac*pc.edgeLen[i]
			found = true
		}
	}
	return bestT, found
}

// projectOntoSegment projects point q onto segment a->c, returning the
// clamped fractional position (0 at a, 1 at c) and the Euclidean distance
// from q to the projected point.
func projectOntoSegment(q, a, c Point) (frac, dist float64) {
	ac := c.Sub(a)
	lenSq := ac.Dot(ac)
	if lenSq < TolDegenerate {
		return 0, q.Dist(a)
	}
	t := q.Sub(a).Dot(ac) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Point{a.X + t*ac.X, a.Y + t*ac.Y}
	return t, q.Dist(proj)
}
