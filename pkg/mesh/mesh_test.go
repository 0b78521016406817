package mesh

import (
	"math"
	"testing"

	"github.com/arx-os/georesolve/pkg/geometry"
)

// noisyRun builds n points along y=0 with sub-tolerance jitter.
func noisyRun(n int) []geometry.Coordinate {
	pts := make([]geometry.Coordinate, n)
	for i := 0; i < n; i++ {
		jitter := 0.001 * math.Sin(float64(i))
		pts[i] = geometry.Coordinate{float64(i), jitter}
	}
	return pts
}

func TestSimplifyRingCollapsesNoise(t *testing.T) {
	ring := noisyRun(50)
	simplified := simplifyRing(ring, 0.01)

	if len(simplified) >= len(ring) {
		t.Errorf("simplification did not reduce vertices: %d -> %d", len(ring), len(simplified))
	}
	if len(simplified) < 2 {
		t.Fatalf("degenerate output: %d points", len(simplified))
	}
	first := simplified[0]
	last := simplified[len(simplified)-1]
	if first[0] != ring[0][0] || last[0] != ring[len(ring)-1][0] {
		t.Error("endpoints must survive simplification")
	}
}

func TestSimplifyRingKeepsSignificantVertices(t *testing.T) {
	// A right-angle corner well above tolerance must survive.
	ring := []geometry.Coordinate{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3},
	}
	simplified := simplifyRing(ring, 0.01)

	corner := false
	for _, c := range simplified {
		if c[0] == 3 && c[1] == 0 {
			corner = true
		}
	}
	if !corner {
		t.Errorf("corner vertex dropped: %v", simplified)
	}
	if len(simplified) > len(ring) {
		t.Error("simplification must never add vertices")
	}
}

func TestSimplifyRingSmallInputUntouched(t *testing.T) {
	tri := []geometry.Coordinate{{0, 0}, {1, 0}, {0, 1}}
	if got := simplifyRing(tri, 10); len(got) != 3 {
		t.Errorf("triangles must pass through, got %d points", len(got))
	}
}

func TestSimplifySegmentReattachesZ(t *testing.T) {
	seg := make([]geometry.Coordinate, 10)
	for i := range seg {
		seg[i] = geometry.Coordinate{float64(i), 0, float64(i) * 0.5}
	}
	out := simplifySegment(seg, 0.01)

	if len(out) > len(seg) {
		t.Fatal("segment simplification must never add vertices")
	}
	for _, c := range out {
		if len(c) != 3 {
			t.Fatalf("expected 3D output, got %v", c)
		}
	}
	if out[0][2] != 0 {
		t.Errorf("first z should come from the original segment, got %f", out[0][2])
	}
}

func TestOptimizeSimplifiesOversizedFace(t *testing.T) {
	g := geometry.Geometry{
		Type:  geometry.TypePolyhedron,
		Faces: [][]geometry.Coordinate{noisyRun(150)},
	}
	out := Optimize(g, LevelHigh)

	if len(out.Faces[0]) >= 150 {
		t.Errorf("oversized face not simplified: %d vertices", len(out.Faces[0]))
	}
	if out.Optimization == nil || out.Optimization.Tolerance != 0.01 || out.Optimization.MaxVertices != 100 {
		t.Errorf("expected high preset metadata, got %+v", out.Optimization)
	}
}

func TestOptimizeLeavesSmallFacesAlone(t *testing.T) {
	face := noisyRun(150)
	g := geometry.Geometry{
		Type:  geometry.TypePolyhedron,
		Faces: [][]geometry.Coordinate{face},
	}
	// Medium caps at 500 vertices; 150 stays untouched.
	out := Optimize(g, LevelMedium)
	if len(out.Faces[0]) != 150 {
		t.Errorf("face under the vertex cap must not be simplified, got %d", len(out.Faces[0]))
	}
}

func TestOptimizeBarePolygonRing(t *testing.T) {
	g := geometry.Geometry{
		Type:        geometry.TypePolygon,
		Coordinates: noisyRun(150),
	}
	out := Optimize(g, LevelHigh)

	if len(out.Coordinates) >= 150 {
		t.Errorf("bare ring not simplified: %d vertices", len(out.Coordinates))
	}
	if len(out.Faces) != 1 || len(out.Faces[0]) != len(out.Coordinates) {
		t.Error("ring must be mirrored into the face list")
	}
}

func TestOptimizeExtrusionWithoutSegments(t *testing.T) {
	g := geometry.Geometry{Type: geometry.TypeExtrusion}
	out := Optimize(g, LevelHigh)
	if out.Optimization != nil {
		t.Error("empty extrusion passes through without metadata")
	}
}

func TestOptimizeExtrusionSegments(t *testing.T) {
	seg := make([]geometry.Coordinate, 120)
	for i := range seg {
		seg[i] = geometry.Coordinate{float64(i), 0.001 * math.Sin(float64(i)), 2}
	}
	g := geometry.Geometry{
		Type:     geometry.TypeExtrusion,
		Segments: [][]geometry.Coordinate{seg},
	}
	out := Optimize(g, LevelHigh)

	if len(out.Segments[0]) >= 120 {
		t.Errorf("oversized segment not simplified: %d vertices", len(out.Segments[0]))
	}
}

func TestOptimizePrimitiveMetadataOnly(t *testing.T) {
	g := geometry.Geometry{Type: geometry.TypeCylinder, Radius: 2, Height: 3}
	out := Optimize(g, LevelLow)
	if out.Radius != 2 || out.Height != 3 {
		t.Error("primitive payload must pass through")
	}
	if out.Optimization == nil || out.Optimization.MaxVertices != 1000 {
		t.Errorf("expected low preset metadata, got %+v", out.Optimization)
	}
}

func TestLevelConfigFallsBackToMedium(t *testing.T) {
	cfg := LevelConfig("extreme")
	if cfg.Tolerance != 0.05 || cfg.MaxVertices != 500 {
		t.Errorf("unknown level should map to medium, got %+v", cfg)
	}
}

func TestGenerateLOD(t *testing.T) {
	g := geometry.Geometry{
		Type:  geometry.TypePolyhedron,
		Faces: [][]geometry.Coordinate{noisyRun(150)},
	}

	lods := GenerateLOD(g, nil)
	if len(lods) != 3 {
		t.Fatalf("expected 3 LOD levels, got %d", len(lods))
	}
	for _, level := range []string{LevelLow, LevelMedium, LevelHigh} {
		if _, ok := lods[level]; !ok {
			t.Errorf("missing LOD level %s", level)
		}
	}

	partial := GenerateLOD(g, []string{LevelHigh, "bogus"})
	if len(partial) != 1 {
		t.Errorf("unrecognized level names must be skipped, got %d entries", len(partial))
	}
}

func TestCalculateMetrics(t *testing.T) {
	original := geometry.Geometry{
		Type:  geometry.TypePolyhedron,
		Faces: [][]geometry.Coordinate{noisyRun(150)},
	}
	optimized := Optimize(original, LevelHigh)
	m := CalculateMetrics(original, optimized)

	if m.OriginalVertices != 150 {
		t.Errorf("expected 150 original vertices, got %d", m.OriginalVertices)
	}
	if m.OptimizedVertices >= m.OriginalVertices {
		t.Errorf("expected reduction, got %d -> %d", m.OriginalVertices, m.OptimizedVertices)
	}
	if m.ReductionRatio < 0 || m.ReductionRatio > 1 {
		t.Errorf("reduction ratio out of bounds: %f", m.ReductionRatio)
	}
	if m.CompressionEfficiency != m.ReductionRatio*100 {
		t.Error("compression efficiency must be the ratio as a percentage")
	}
}

func TestCalculateMetricsNoVertices(t *testing.T) {
	box := geometry.Geometry{Type: geometry.TypeBox}
	m := CalculateMetrics(box, box)
	if m.ReductionRatio != 0 {
		t.Errorf("zero-vertex geometry should report ratio 0, got %f", m.ReductionRatio)
	}
}

func TestBatchProcessDefaultOperations(t *testing.T) {
	open := geometry.Geometry{
		Type:        geometry.TypePolygon,
		Coordinates: []geometry.Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
	}
	out := BatchProcess([]geometry.Geometry{open}, nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 geometry, got %d", len(out))
	}

	ring := out[0].Coordinates
	n := len(ring)
	if n != 5 || ring[0][0] != ring[n-1][0] || ring[0][1] != ring[n-1][1] {
		t.Errorf("validation pass should close the ring, got %v", ring)
	}
	if out[0].Optimization == nil || out[0].Optimization.Tolerance != 0.05 {
		t.Errorf("optimize pass should apply the medium preset, got %+v", out[0].Optimization)
	}
}

func TestBatchProcessValidateOnly(t *testing.T) {
	open := geometry.Geometry{
		Type:        geometry.TypePolygon,
		Coordinates: []geometry.Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
	}
	out := BatchProcess([]geometry.Geometry{open}, []string{OpValidate})
	if out[0].Optimization != nil {
		t.Error("optimize must not run when not requested")
	}
	if len(out[0].Coordinates) != 5 {
		t.Errorf("validate pass should still repair, got %v", out[0].Coordinates)
	}
}
