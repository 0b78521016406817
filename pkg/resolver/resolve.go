package resolver

import (
	"time"

	"github.com/arx-os/georesolve/pkg/geo"
)

// damping scales every corrective step so the relaxation converges
// instead of oscillating.
const damping = 0.1

// ResolveConstraints runs damped fixed-point relaxation: each round
// evaluates all constraints, stops early once the total violation drops
// below tolerance, and otherwise applies one corrective step per
// violated constraint. The loop always terminates at maxIterations.
func (r *Resolver) ResolveConstraints(maxIterations int, tolerance float64) Result {
	start := time.Now()

	initialViolations := r.ValidateConstraints()
	initialScore := totalViolation(initialViolations)
	initialConflicts := len(r.DetectConflicts())

	iterations := 0
	for i := 0; i < maxIterations; i++ {
		iterations = i + 1

		violations := r.ValidateConstraints()
		if totalViolation(violations) < tolerance {
			break
		}
		r.applyConstraintForces(violations)
	}

	finalViolations := r.ValidateConstraints()
	finalConflicts := len(r.DetectConflicts())

	result := Result{
		Success:            len(finalViolations) == 0,
		Iterations:         iterations,
		FinalViolations:    finalViolations,
		ConflictsResolved:  initialConflicts - finalConflicts,
		ConflictsRemaining: finalConflicts,
		OptimizationScore:  initialScore - totalViolation(finalViolations),
		ExecutionTime:      time.Since(start).Seconds(),
	}
	r.history = append(r.history, result)
	return result
}

// applyConstraintForces applies one corrective step per violated
// constraint. Only Distance, Alignment and Clearance are corrected;
// the remaining kinds are evaluated but not acted on.
func (r *Resolver) applyConstraintForces(violations []Violation) {
	for _, v := range violations {
		c, ok := r.constraints[v.ConstraintID]
		if !ok || !c.Enabled {
			continue
		}
		objs := c.participants(r.registry)
		if len(objs) < 2 {
			continue
		}

		switch c.Type {
		case ConstraintDistance:
			applyDistanceForce(objs[0], objs[1], c.Params)
		case ConstraintAlignment:
			applyAlignmentForce(objs[0], objs[1], c.Params)
		case ConstraintClearance:
			applyClearanceForce(objs[0], objs[1], c.Params)
		case ConstraintParallel, ConstraintPerpendicular, ConstraintAngle,
			ConstraintContainment, ConstraintIntersection,
			ConstraintMinSize, ConstraintMaxSize:
			// Not corrected by the relaxation loop.
		}
	}
}

// applyDistanceForce moves both objects along the line connecting them
// by a damped fraction of the distance error, split evenly. Coincident
// objects separate along +x.
func applyDistanceForce(obj1, obj2 *Object, p Params) {
	current := obj1.Position.Distance(obj2.Position)

	direction := geo.Pt3(1, 0, 0)
	if current > 0 {
		direction = obj2.Position.Sub(obj1.Position).Scale(1 / current)
	}

	correction := (p.Distance - current) * damping
	step := direction.Scale(correction / 2)
	obj1.Position = obj1.Position.Sub(step)
	obj2.Position = obj2.Position.Add(step)
}

// applyAlignmentForce moves both objects 10% of the way toward their
// shared-axis average.
func applyAlignmentForce(obj1, obj2 *Object, p Params) {
	axis := p.Axis
	avg := (obj1.Position.Axis(axis) + obj2.Position.Axis(axis)) / 2
	v1 := obj1.Position.Axis(axis)
	v2 := obj2.Position.Axis(axis)
	obj1.Position = obj1.Position.WithAxis(axis, v1+(avg-v1)*damping)
	obj2.Position = obj2.Position.WithAxis(axis, v2+(avg-v2)*damping)
}

// applyClearanceForce pushes both objects apart along the vector
// between their box centers when the gap is under the minimum.
// Coincident centers separate along +x.
func applyClearanceForce(obj1, obj2 *Object, p Params) {
	bbox1 := obj1.BoundingBox()
	bbox2 := obj2.BoundingBox()

	gap := bbox1.Gap(bbox2)
	if gap >= p.MinClearance {
		return
	}

	direction := bbox2.Center().Sub(bbox1.Center())
	if direction.Length() > 0 {
		direction = direction.Normalize()
	} else {
		direction = geo.Pt3(1, 0, 0)
	}

	separation := (p.MinClearance - gap) * damping
	step := direction.Scale(separation / 2)
	obj1.Position = obj1.Position.Sub(step)
	obj2.Position = obj2.Position.Add(step)
}
