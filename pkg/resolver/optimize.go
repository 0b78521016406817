package resolver

import (
	"math"
	"time"

	"github.com/arx-os/georesolve/pkg/geo"
)

// optimizationRounds is the fixed number of candidate layouts sampled
// by OptimizeLayout.
const optimizationRounds = 50

// perturbationRange bounds the uniform per-axis offset applied to each
// object when generating a candidate layout.
const perturbationRange = 0.5

// alignmentTolerance is the per-axis window within which two objects
// count as aligned for the alignment reward.
const alignmentTolerance = 0.1

// Goals weights the objectives of OptimizeLayout. Higher weight means
// the objective contributes more to a candidate's score; a zero weight
// disables the objective.
type Goals struct {
	MinimizeOverlaps   float64 `json:"minimize_overlaps" yaml:"minimize_overlaps"`
	MinimizeViolations float64 `json:"minimize_constraint_violations" yaml:"minimize_constraint_violations"`
	MinimizeArea       float64 `json:"minimize_total_area" yaml:"minimize_total_area"`
	MaximizeAlignment  float64 `json:"maximize_alignment" yaml:"maximize_alignment"`
}

// DefaultGoals returns the standard objective weighting.
func DefaultGoals() Goals {
	return Goals{
		MinimizeOverlaps:   1.0,
		MinimizeViolations: 1.0,
		MinimizeArea:       0.5,
		MaximizeAlignment:  0.3,
	}
}

// OptimizeLayout runs a stochastic multi-objective search: each round
// perturbs every object's position, scores the candidate layout
// against the weighted goals without destroying the current layout,
// and keeps the best candidate seen. The best positions are committed
// and one ResolveConstraints pass cleans up residual violations.
func (r *Resolver) OptimizeLayout(goals Goals) Result {
	start := time.Now()

	bestScore := math.Inf(1)
	var bestPositions map[string]geo.Point3D

	for round := 0; round < optimizationRounds; round++ {
		candidate := r.perturbPositions()
		score := r.scoreLayout(candidate, goals)
		if score < bestScore {
			bestScore = score
			bestPositions = candidate
		}
	}

	for id, position := range bestPositions {
		if obj, ok := r.registry.Get(id); ok {
			obj.Position = position
		}
	}

	result := r.ResolveConstraints(100, 0.01)
	result.ExecutionTime = time.Since(start).Seconds()
	r.history[len(r.history)-1] = result
	return result
}

// perturbPositions generates a candidate layout by offsetting every
// object's position with an independent uniform perturbation per axis.
func (r *Resolver) perturbPositions() map[string]geo.Point3D {
	candidate := make(map[string]geo.Point3D, r.registry.Len())
	for _, obj := range r.registry.All() {
		offset := geo.Pt3(
			r.rng.Float64()*2*perturbationRange-perturbationRange,
			r.rng.Float64()*2*perturbationRange-perturbationRange,
			r.rng.Float64()*2*perturbationRange-perturbationRange,
		)
		candidate[obj.ID] = obj.Position.Add(offset)
	}
	return candidate
}

// scoreLayout evaluates a candidate layout against the weighted goals.
// Scoring is non-destructive: positions are applied, measured and
// restored before returning.
func (r *Resolver) scoreLayout(positions map[string]geo.Point3D, goals Goals) float64 {
	original := make(map[string]geo.Point3D, r.registry.Len())
	for _, obj := range r.registry.All() {
		original[obj.ID] = obj.Position
	}
	for id, position := range positions {
		if obj, ok := r.registry.Get(id); ok {
			obj.Position = position
		}
	}
	defer func() {
		for id, position := range original {
			if obj, ok := r.registry.Get(id); ok {
				obj.Position = position
			}
		}
	}()

	score := 0.0
	if goals.MinimizeOverlaps > 0 {
		score += float64(len(r.DetectConflicts())) * goals.MinimizeOverlaps
	}
	if goals.MinimizeViolations > 0 {
		score += totalViolation(r.ValidateConstraints()) * goals.MinimizeViolations
	}
	if goals.MinimizeArea > 0 {
		score += r.footprintArea() * goals.MinimizeArea
	}
	if goals.MaximizeAlignment > 0 {
		score -= r.alignmentReward() * goals.MaximizeAlignment
	}
	return score
}

// footprintArea returns the XY extent of the bounding region covering
// every object's box.
func (r *Resolver) footprintArea() float64 {
	objs := r.registry.All()
	if len(objs) == 0 {
		return 0
	}
	bounds := objs[0].BoundingBox()
	for _, obj := range objs[1:] {
		bounds = bounds.Union(obj.BoundingBox())
	}
	size := bounds.Size()
	return size.X * size.Y
}

// alignmentReward counts, over all distinct object pairs, the axes on
// which the two positions coincide within alignmentTolerance.
func (r *Resolver) alignmentReward() float64 {
	objs := r.registry.All()
	reward := 0.0
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			a, b := objs[i].Position, objs[j].Position
			if math.Abs(a.X-b.X) < alignmentTolerance {
				reward++
			}
			if math.Abs(a.Y-b.Y) < alignmentTolerance {
				reward++
			}
			if math.Abs(a.Z-b.Z) < alignmentTolerance {
				reward++
			}
		}
	}
	return reward
}
