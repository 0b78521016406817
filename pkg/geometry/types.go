// Package geometry converts 2D floor-plan primitives into 3D solids,
// transforms coordinates between plan, BIM and real-world systems, and
// validates and repairs geometry payloads.
package geometry

// Type tags a geometry payload.
type Type string

const (
	TypePoint2D    Type = "point_2d"
	TypePoint3D    Type = "point_3d"
	TypeLine       Type = "line"
	TypeLine2D     Type = "line_2d"
	TypeLine3D     Type = "line_3d"
	TypeCircle     Type = "circle"
	TypeRect       Type = "rect"
	TypePolygon    Type = "polygon"
	TypePolygon2D  Type = "polygon_2d"
	TypePolygon3D  Type = "polygon_3d"
	TypePolyhedron Type = "polyhedron"
	TypeExtrusion  Type = "extrusion"
	TypeCylinder   Type = "cylinder"
	TypeBox        Type = "box"
)

// Coordinate is a single [x, y] or [x, y, z] tuple.
type Coordinate []float64

// Geometry is the tagged payload exchanged with callers. Which fields
// are populated depends on Type: points and rings use Coordinates
// (a point carries a single entry), polyhedra use Faces, extrusions use
// Segments, circles and cylinders use Center/Radius/Height, rects use
// X/Y/Width/Height, boxes use Min/Max. Derived measures are filled by
// the extruder.
type Geometry struct {
	Type        Type           `json:"type"`
	Coordinates []Coordinate   `json:"coordinates,omitempty"`
	Faces       [][]Coordinate `json:"faces,omitempty"`
	Segments    [][]Coordinate `json:"segments,omitempty"`
	Center      Coordinate     `json:"center,omitempty"`
	Radius      float64        `json:"radius,omitempty"`
	Height      float64        `json:"height,omitempty"`
	X           float64        `json:"x,omitempty"`
	Y           float64        `json:"y,omitempty"`
	Width       float64        `json:"width,omitempty"`
	Min         Coordinate     `json:"min_point,omitempty"`
	Max         Coordinate     `json:"max_point,omitempty"`

	Volume       float64 `json:"volume,omitempty"`
	SurfaceArea  float64 `json:"surface_area,omitempty"`
	Length       float64 `json:"length,omitempty"`
	Optimization *Level  `json:"optimization_level,omitempty"`
}

// Level records the simplification preset applied to a payload by the
// mesh optimizer.
type Level struct {
	Tolerance   float64 `json:"tolerance"`
	MaxVertices int     `json:"max_vertices"`
}

// IsPolygonal reports whether the type carries a coordinate ring.
func (t Type) IsPolygonal() bool {
	return t == TypePolygon || t == TypePolygon2D || t == TypePolygon3D
}

// IsPoint reports whether the type is a single point.
func (t Type) IsPoint() bool {
	return t == TypePoint2D || t == TypePoint3D
}

// at returns the coordinate component at index i, 0 when absent. Plan
// payloads carry 2-element tuples; z reads as 0.
func (c Coordinate) at(i int) float64 {
	if i < len(c) {
		return c[i]
	}
	return 0
}

// coordEqual reports component-wise equality of two coordinates.
func coordEqual(a, b Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
