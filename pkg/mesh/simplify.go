package mesh

import (
	"github.com/arx-os/georesolve/pkg/geo"
	"github.com/arx-os/georesolve/pkg/geometry"
)

// simplifyRing reduces a vertex ring with the Douglas-Peucker
// algorithm. Rings of three or fewer points are returned unchanged.
func simplifyRing(ring []geometry.Coordinate, tolerance float64) []geometry.Coordinate {
	if len(ring) <= 3 {
		return ring
	}
	return douglasPeucker(ring, tolerance)
}

// douglasPeucker recursively keeps the vertex farthest from the chord
// between the endpoints when it deviates by more than tolerance, and
// collapses the run to its endpoints otherwise.
func douglasPeucker(points []geometry.Coordinate, tolerance float64) []geometry.Coordinate {
	if len(points) <= 2 {
		return points
	}

	start := planPoint(points[0])
	end := planPoint(points[len(points)-1])

	maxDistance := 0.0
	maxIndex := 0
	for i := 1; i < len(points)-1; i++ {
		d := geo.PerpendicularDistance(planPoint(points[i]), start, end)
		if d > maxDistance {
			maxDistance = d
			maxIndex = i
		}
	}

	if maxDistance > tolerance {
		left := douglasPeucker(points[:maxIndex+1], tolerance)
		right := douglasPeucker(points[maxIndex:], tolerance)
		return append(left[:len(left)-1:len(left)-1], right...)
	}
	return []geometry.Coordinate{points[0], points[len(points)-1]}
}

// simplifySegment runs the 2D simplifier over a 3D segment's plan
// projection and reattaches z by index, the trailing z filling in when
// the simplified run is shorter than the original.
func simplifySegment(segment []geometry.Coordinate, tolerance float64) []geometry.Coordinate {
	if len(segment) <= 2 {
		return segment
	}

	flat := make([]geometry.Coordinate, len(segment))
	for i, c := range segment {
		flat[i] = geometry.Coordinate{coordAt(c, 0), coordAt(c, 1)}
	}
	simplified := douglasPeucker(flat, tolerance)

	out := make([]geometry.Coordinate, len(simplified))
	for i, c := range simplified {
		z := coordAt(segment[len(segment)-1], 2)
		if i < len(segment) {
			z = coordAt(segment[i], 2)
		}
		out[i] = geometry.Coordinate{coordAt(c, 0), coordAt(c, 1), z}
	}
	return out
}

func planPoint(c geometry.Coordinate) geo.Point2D {
	return geo.Pt(coordAt(c, 0), coordAt(c, 1))
}

func coordAt(c geometry.Coordinate, i int) float64 {
	if i < len(c) {
		return c[i]
	}
	return 0
}
