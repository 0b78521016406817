package geometry

import "math"

// CoordinateSystem identifies a supported coordinate space.
type CoordinateSystem string

const (
	SystemPlan2D     CoordinateSystem = "plan_2d"
	SystemBIM3D      CoordinateSystem = "bim_3d"
	SystemRealMeters CoordinateSystem = "real_world_meters"
	SystemRealFeet   CoordinateSystem = "real_world_feet"
)

// metersToFeet is the meters-to-feet conversion factor.
const metersToFeet = 3.28084

// ScaleFactors holds per-axis scaling for plan-to-BIM transforms.
// A nil ScaleFactors means unit scale.
type ScaleFactors struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Mat4 is a 4x4 affine transformation matrix in row-major order.
type Mat4 [4][4]float64

// identity returns the identity matrix.
func identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// scaling returns a per-axis scaling matrix.
func scaling(x, y, z float64) Mat4 {
	m := identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// apply transforms a homogeneous point [x, y, z, 1].
func (m Mat4) apply(c Coordinate) Coordinate {
	x, y, z := c.at(0), c.at(1), c.at(2)
	return Coordinate{
		m[0][0]*x + m[0][1]*y + m[0][2]*z + m[0][3],
		m[1][0]*x + m[1][1]*y + m[1][2]*z + m[1][3],
		m[2][0]*x + m[2][1]*y + m[2][2]*z + m[2][3],
	}
}

// Transform converts geometry between coordinate systems. Point and
// polygon payloads have every coordinate run through the affine matrix
// for the (from, to) pair; other payloads pass through unchanged.
// Unrecognized pairs use the identity matrix.
func Transform(g Geometry, from, to CoordinateSystem, scale *ScaleFactors) (Geometry, error) {
	if scale != nil && !finiteScale(scale) {
		return Geometry{}, newGeometryError("transform", "scale factors must be finite", map[string]any{
			"from": from, "to": to, "scale": scale,
		})
	}

	matrix := transformationMatrix(from, to, scale)

	switch {
	case g.Type.IsPoint(), g.Type.IsPolygonal():
		transformed := make([]Coordinate, len(g.Coordinates))
		for i, c := range g.Coordinates {
			transformed[i] = matrix.apply(c)
		}
		g.Coordinates = transformed
		return g, nil
	default:
		return g, nil
	}
}

// finiteScale reports whether every scale factor is a finite number.
func finiteScale(s *ScaleFactors) bool {
	for _, v := range []float64{s.X, s.Y, s.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// transformationMatrix builds the affine matrix for a coordinate
// system pair.
func transformationMatrix(from, to CoordinateSystem, scale *ScaleFactors) Mat4 {
	sx, sy, sz := 1.0, 1.0, 1.0
	if scale != nil {
		sx, sy, sz = scale.X, scale.Y, scale.Z
	}

	switch {
	case from == SystemPlan2D && to == SystemBIM3D:
		return scaling(sx, sy, sz)
	case from == SystemBIM3D && to == SystemRealMeters:
		return identity()
	case from == SystemRealMeters && to == SystemRealFeet:
		return scaling(metersToFeet, metersToFeet, metersToFeet)
	default:
		return identity()
	}
}
