// Package mesh simplifies resolved 3D geometry for rendering and
// export: Douglas-Peucker vertex reduction, preset optimization
// levels, LOD generation and batch processing.
package mesh

import "github.com/arx-os/georesolve/pkg/geometry"

// Preset optimization level names.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// optimizationLevels maps a preset name to its simplification
// parameters. Higher presets tolerate less deviation and cap faces at
// fewer vertices.
var optimizationLevels = map[string]geometry.Level{
	LevelLow:    {Tolerance: 0.1, MaxVertices: 1000},
	LevelMedium: {Tolerance: 0.05, MaxVertices: 500},
	LevelHigh:   {Tolerance: 0.01, MaxVertices: 100},
}

// LevelConfig returns the parameters for a preset name, falling back
// to medium for unrecognized names.
func LevelConfig(level string) geometry.Level {
	if cfg, ok := optimizationLevels[level]; ok {
		return cfg
	}
	return optimizationLevels[LevelMedium]
}

// Optimize simplifies a geometry payload at the named preset level.
// Polyhedra and polygons have oversized faces simplified, extrusions
// have oversized segments simplified, primitives and everything else
// only gain the optimization metadata.
func Optimize(g geometry.Geometry, level string) geometry.Geometry {
	cfg := LevelConfig(level)

	switch g.Type {
	case geometry.TypePolyhedron, geometry.TypePolygon3D, geometry.TypePolygon:
		return optimizePolyhedron(g, cfg)
	case geometry.TypeExtrusion, geometry.TypeLine3D:
		return optimizeExtrusion(g, cfg)
	default:
		g.Optimization = &cfg
		return g
	}
}

// optimizePolyhedron simplifies each face that exceeds the vertex cap.
// A bare polygon carrying only a coordinate ring is treated as a
// single face, and the ring is written back alongside the faces.
func optimizePolyhedron(g geometry.Geometry, cfg geometry.Level) geometry.Geometry {
	faces := g.Faces
	bareRing := false
	if faces == nil && g.Type == geometry.TypePolygon && g.Coordinates != nil {
		faces = [][]geometry.Coordinate{g.Coordinates}
		bareRing = true
	}
	if len(faces) == 0 {
		g.Optimization = &cfg
		return g
	}

	optimized := make([][]geometry.Coordinate, len(faces))
	for i, face := range faces {
		if len(face) > cfg.MaxVertices {
			optimized[i] = simplifyRing(face, cfg.Tolerance)
		} else {
			optimized[i] = face
		}
	}

	g.Faces = optimized
	if bareRing {
		g.Coordinates = optimized[0]
	}
	g.Optimization = &cfg
	return g
}

// optimizeExtrusion simplifies each segment that exceeds the vertex
// cap. An extrusion with no segments passes through untouched.
func optimizeExtrusion(g geometry.Geometry, cfg geometry.Level) geometry.Geometry {
	if len(g.Segments) == 0 {
		return g
	}

	optimized := make([][]geometry.Coordinate, len(g.Segments))
	for i, seg := range g.Segments {
		if len(seg) > cfg.MaxVertices {
			optimized[i] = simplifySegment(seg, cfg.Tolerance)
		} else {
			optimized[i] = seg
		}
	}

	g.Segments = optimized
	g.Optimization = &cfg
	return g
}

// GenerateLOD optimizes the geometry at each requested preset level.
// A nil levels slice requests all three presets; unrecognized names
// are skipped.
func GenerateLOD(g geometry.Geometry, levels []string) map[string]geometry.Geometry {
	if levels == nil {
		levels = []string{LevelLow, LevelMedium, LevelHigh}
	}

	out := make(map[string]geometry.Geometry, len(levels))
	for _, level := range levels {
		if _, ok := optimizationLevels[level]; ok {
			out[level] = Optimize(g, level)
		}
	}
	return out
}

// Metrics summarizes the effect of an optimization pass.
type Metrics struct {
	OriginalVertices      int     `json:"original_vertices"`
	OptimizedVertices     int     `json:"optimized_vertices"`
	ReductionRatio        float64 `json:"reduction_ratio"`
	CompressionEfficiency float64 `json:"compression_efficiency"`
}

// CalculateMetrics compares vertex counts before and after
// optimization. The reduction ratio is 0 when the original had no
// countable vertices.
func CalculateMetrics(original, optimized geometry.Geometry) Metrics {
	before := countVertices(original)
	after := countVertices(optimized)

	ratio := 0.0
	if before > 0 {
		ratio = 1.0 - float64(after)/float64(before)
	}

	return Metrics{
		OriginalVertices:      before,
		OptimizedVertices:     after,
		ReductionRatio:        ratio,
		CompressionEfficiency: ratio * 100,
	}
}

// countVertices totals the vertices a payload carries. Primitives with
// closed-form surfaces count as zero.
func countVertices(g geometry.Geometry) int {
	switch g.Type {
	case geometry.TypePolyhedron, geometry.TypePolygon3D:
		total := 0
		for _, face := range g.Faces {
			total += len(face)
		}
		return total
	case geometry.TypeExtrusion, geometry.TypeLine3D:
		total := 0
		for _, seg := range g.Segments {
			total += len(seg)
		}
		return total
	case geometry.TypePoint2D, geometry.TypePoint3D:
		return 1
	default:
		return 0
	}
}
