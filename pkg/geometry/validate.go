package geometry

import (
	"fmt"
	"math"

	"github.com/arx-os/georesolve/pkg/geo"
	"github.com/arx-os/georesolve/pkg/validation"
)

// Validation finding codes.
const (
	CodeInvalidCoordinates = "invalid_coordinates"
	CodeSelfIntersecting   = "self_intersecting"
	CodeNonClosedPolygon   = "non_closed_polygon"
	CodeZeroArea           = "zero_area"
)

// zeroAreaThreshold flags polygons whose shoelace area is effectively
// zero.
const zeroAreaThreshold = 1e-6

// Validate checks a geometry payload and reports findings with
// proposed corrections. Corrections are never applied here; the
// caller decides (see ApplyCorrections). Validation failures are
// findings, not errors — nothing in this pass raises.
func Validate(g Geometry) *validation.Report {
	report := validation.NewReport()

	validateCoordinates(g, report)

	if g.Type.IsPolygonal() {
		validateSelfIntersection(g, report)
		validateClosure(g, report)
		validateArea(g, report)
	}

	return report
}

// validateCoordinates replaces non-finite components with 0 and
// reports the correction.
func validateCoordinates(g Geometry, report *validation.Report) {
	if !g.Type.IsPoint() && !g.Type.IsPolygonal() {
		return
	}
	dirty := false
	corrected := make([]Coordinate, len(g.Coordinates))
	for i, c := range g.Coordinates {
		fixed := make(Coordinate, len(c))
		for j, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				fixed[j] = 0
				dirty = true
			} else {
				fixed[j] = v
			}
		}
		corrected[i] = fixed
	}
	if !dirty {
		return
	}
	report.AddError(validation.Result{
		Level:   validation.LevelGeometry,
		Code:    CodeInvalidCoordinates,
		Message: "geometry contains non-finite coordinates",
	})
	report.AddCorrection(validation.Correction{
		Type:      "coordinates",
		Original:  g.Coordinates,
		Corrected: corrected,
	})
}

// validateSelfIntersection tests closed rings of at least 5 points for
// self-intersection by checking all non-adjacent edge pairs, and
// proposes a truncating repair.
func validateSelfIntersection(g Geometry, report *validation.Report) {
	ring := g.Coordinates
	n := len(ring)
	if n < 5 || !coordEqual(ring[0], ring[n-1]) {
		return
	}
	if !ringSelfIntersects(ring) {
		return
	}
	report.AddError(validation.Result{
		Level:   validation.LevelGeometry,
		Code:    CodeSelfIntersecting,
		Message: "polygon is self-intersecting",
	})
	// Truncating repair: drop the final (closing) point so the caller
	// can re-close after inspecting the ring.
	report.AddCorrection(validation.Correction{
		Type:      "polygon",
		Original:  ring,
		Corrected: append([]Coordinate{}, ring[:n-1]...),
	})
}

// ringSelfIntersects runs the naive O(n^2) pairwise segment test over
// non-adjacent edges, skipping the closing segment pairing.
func ringSelfIntersects(ring []Coordinate) bool {
	n := len(ring)
	if n < 4 {
		return false
	}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n-1; j++ {
			if j-i <= 1 || (i == 0 && j == n-2) {
				continue
			}
			if geo.SegmentsIntersect(
				geo.Pt(ring[i].at(0), ring[i].at(1)),
				geo.Pt(ring[i+1].at(0), ring[i+1].at(1)),
				geo.Pt(ring[j].at(0), ring[j].at(1)),
				geo.Pt(ring[j+1].at(0), ring[j+1].at(1)),
			) {
				return true
			}
		}
	}
	return false
}

// validateClosure reports open rings and proposes appending the first
// point.
func validateClosure(g Geometry, report *validation.Report) {
	ring := g.Coordinates
	n := len(ring)
	if n <= 2 || coordEqual(ring[0], ring[n-1]) {
		return
	}
	closed := append(append([]Coordinate{}, ring...), ring[0])
	report.AddError(validation.Result{
		Level:   validation.LevelGeometry,
		Code:    CodeNonClosedPolygon,
		Message: fmt.Sprintf("polygon ring of %d points is not closed", n),
	})
	report.AddCorrection(validation.Correction{
		Type:      "close_polygon",
		Original:  ring,
		Corrected: closed,
	})
}

// validateArea flags near-zero-area polygons as a warning only.
func validateArea(g Geometry, report *validation.Report) {
	if ringPolygon(g.Coordinates).Area() < zeroAreaThreshold {
		report.AddWarning(validation.Result{
			Level:   validation.LevelGeometry,
			Code:    CodeZeroArea,
			Message: "polygon area is effectively zero",
		})
	}
}

// ApplyCorrections returns a copy of the geometry with the report's
// proposed coordinate repairs applied.
func ApplyCorrections(g Geometry, report *validation.Report) Geometry {
	for _, c := range report.Corrections {
		switch c.Type {
		case "coordinates", "polygon", "close_polygon":
			if coords, ok := c.Corrected.([]Coordinate); ok {
				g.Coordinates = coords
			}
		}
	}
	return g
}
