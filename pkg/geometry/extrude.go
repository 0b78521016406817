package geometry

import (
	"math"

	"github.com/arx-os/georesolve/pkg/geo"
)

// Extrude converts a 2D plan primitive into a 3D solid: polygon to
// polyhedron, line to extrusion ribbon, circle to cylinder, rect to
// box. Any other type degenerates to a 3D point at z=0.
func Extrude(g Geometry, height float64) Geometry {
	switch g.Type {
	case TypePolygon:
		return extrudePolygon(g, height)
	case TypeLine:
		return extrudeLine(g, height)
	case TypeCircle:
		return extrudeCircle(g, height)
	case TypeRect:
		return extrudeRect(g, height)
	default:
		return pointAtPlan(g)
	}
}

// extrudePolygon duplicates the ring at z=0 and z=height as bottom and
// top faces and emits two triangles per edge as side faces. Volume and
// surface area are the prism closed forms.
func extrudePolygon(g Geometry, height float64) Geometry {
	ring := g.Coordinates
	if len(ring) == 0 {
		return defaultPoint()
	}

	bottom := make([]Coordinate, len(ring))
	top := make([]Coordinate, len(ring))
	for i, c := range ring {
		bottom[i] = Coordinate{c.at(0), c.at(1), 0}
		top[i] = Coordinate{c.at(0), c.at(1), height}
	}

	faces := make([][]Coordinate, 0, 2+2*len(ring))
	faces = append(faces, bottom, top)
	for i := range ring {
		j := (i + 1) % len(ring)
		p1 := bottom[i]
		p2 := bottom[j]
		p3 := top[j]
		p4 := top[i]
		faces = append(faces,
			[]Coordinate{p1, p2, p3},
			[]Coordinate{p1, p3, p4},
		)
	}

	poly := ringPolygon(ring)
	area := poly.Area()
	return Geometry{
		Type:        TypePolyhedron,
		Faces:       faces,
		Volume:      area * height,
		SurfaceArea: 2*area + poly.Perimeter()*height,
	}
}

// extrudeLine turns a polyline into a ribbon of vertical quads, one
// per segment, spanning z in [0, height].
func extrudeLine(g Geometry, height float64) Geometry {
	pts := g.Coordinates
	if len(pts) < 2 {
		return defaultPoint()
	}

	segments := make([][]Coordinate, 0, len(pts)-1)
	length := 0.0
	for i := 0; i < len(pts)-1; i++ {
		p1 := pts[i]
		p2 := pts[i+1]
		segments = append(segments, []Coordinate{
			{p1.at(0), p1.at(1), 0},
			{p2.at(0), p2.at(1), 0},
			{p2.at(0), p2.at(1), height},
			{p1.at(0), p1.at(1), height},
		})
		length += math.Hypot(p2.at(0)-p1.at(0), p2.at(1)-p1.at(1))
	}

	return Geometry{
		Type:     TypeExtrusion,
		Segments: segments,
		Length:   length,
	}
}

// extrudeCircle produces a cylinder with closed-form measures. The
// circle's center arrives in Coordinates.
func extrudeCircle(g Geometry, height float64) Geometry {
	center := Coordinate{0, 0}
	if len(g.Coordinates) > 0 {
		center = g.Coordinates[0]
	}
	radius := g.Radius

	return Geometry{
		Type:        TypeCylinder,
		Center:      Coordinate{center.at(0), center.at(1), height / 2},
		Radius:      radius,
		Height:      height,
		Volume:      math.Pi * radius * radius * height,
		SurfaceArea: 2 * math.Pi * radius * (radius + height),
	}
}

// extrudeRect produces an axis-aligned box with closed-form measures.
// The rect's Height field is its 2D depth; the extrusion height is the
// z extent.
func extrudeRect(g Geometry, height float64) Geometry {
	w, d := g.Width, g.Height
	return Geometry{
		Type:        TypeBox,
		Min:         Coordinate{g.X, g.Y, 0},
		Max:         Coordinate{g.X + w, g.Y + d, height},
		Volume:      w * d * height,
		SurfaceArea: 2 * (w*d + w*height + d*height),
	}
}

// pointAtPlan degrades an unrecognized payload to a 3D point at z=0.
func pointAtPlan(g Geometry) Geometry {
	c := Coordinate{0, 0}
	if len(g.Coordinates) > 0 {
		c = g.Coordinates[0]
	}
	return Geometry{
		Type:        TypePoint3D,
		Coordinates: []Coordinate{{c.at(0), c.at(1), 0}},
	}
}

// defaultPoint is the fallback output when a conversion has nothing to
// work with.
func defaultPoint() Geometry {
	return Geometry{
		Type:        TypePoint3D,
		Coordinates: []Coordinate{{0, 0, 0}},
	}
}

// ringPolygon converts a coordinate ring into a geo.Polygon for area
// and perimeter math.
func ringPolygon(ring []Coordinate) geo.Polygon {
	pts := make([]geo.Point2D, len(ring))
	for i, c := range ring {
		pts[i] = geo.Pt(c.at(0), c.at(1))
	}
	return geo.NewPolygon(pts...)
}
