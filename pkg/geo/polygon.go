package geo

import "math"

// Polygon is a planar polygon defined by its vertices in order.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// IsClosed returns true if the first and last vertices coincide.
func (p Polygon) IsClosed() bool {
	n := len(p.Vertices)
	return n > 2 && p.Vertices[0] == p.Vertices[n-1]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the total edge length, wrapping around to close
// the ring.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}

// Centroid returns the centroid of the polygon.
func (p Polygon) Centroid() Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return Point2D{}
	}
	a := p.SignedArea()
	if p.IsEmpty() || math.Abs(a) < 1e-12 {
		// Degenerate: return the vertex average.
		sum := Point2D{}
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cy * f}
}

// SegmentsIntersect reports whether segments p1-p2 and p3-p4 properly
// intersect, using the counterclockwise orientation test.
func SegmentsIntersect(p1, p2, p3, p4 Point2D) bool {
	ccw := func(a, b, c Point2D) bool {
		return b.Sub(a).Cross(c.Sub(a)) > 0
	}
	return ccw(p1, p3, p4) != ccw(p2, p3, p4) && ccw(p1, p2, p3) != ccw(p1, p2, p4)
}

// PerpendicularDistance returns the distance from point to the segment
// start-end, clamping the projection to the segment.
func PerpendicularDistance(point, start, end Point2D) float64 {
	dir := end.Sub(start)
	length := dir.Length()
	if length < 1e-12 {
		return point.Distance(start)
	}
	t := point.Sub(start).Dot(dir) / (length * length)
	t = math.Max(0, math.Min(1, t))
	projected := start.Add(dir.Scale(t))
	return point.Distance(projected)
}
