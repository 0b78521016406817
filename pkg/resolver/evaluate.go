package resolver

import (
	"math"

	"github.com/arx-os/georesolve/pkg/geo"
)

// Evaluate checks a constraint against the registry and returns whether
// it is satisfied plus a non-negative violation magnitude. Disabled
// constraints and constraints with fewer than two resolvable
// participants report satisfied with zero violation.
func Evaluate(c *Constraint, reg *Registry) (bool, float64) {
	if !c.Enabled {
		return true, 0
	}
	objs := c.participants(reg)
	if len(objs) < 2 {
		return true, 0
	}

	switch c.Type {
	case ConstraintDistance:
		return evaluateDistance(c, objs)
	case ConstraintAlignment:
		return evaluateAlignment(c, objs)
	case ConstraintParallel:
		return evaluateParallel(c, objs)
	case ConstraintPerpendicular:
		return evaluatePerpendicular(c, objs)
	case ConstraintAngle:
		return evaluateAngle(c, objs)
	case ConstraintClearance:
		return evaluateClearance(c, objs)
	case ConstraintContainment:
		return evaluateContainment(objs)
	case ConstraintIntersection:
		return evaluateIntersection(objs)
	case ConstraintMinSize:
		return evaluateMinSize(c, objs)
	case ConstraintMaxSize:
		return evaluateMaxSize(c, objs)
	default:
		// Unknown kinds degrade to satisfied so forward-compatible
		// callers are not rejected.
		return true, 0
	}
}

func evaluateDistance(c *Constraint, objs []*Object) (bool, float64) {
	actual := objs[0].Position.Distance(objs[1].Position)
	deviation := math.Abs(actual - c.Params.Distance)
	return deviation <= c.Params.tolerance(), deviation
}

func evaluateAlignment(c *Constraint, objs []*Object) (bool, float64) {
	deviation := math.Abs(objs[0].Position.Axis(c.Params.Axis) - objs[1].Position.Axis(c.Params.Axis))
	return deviation <= c.Params.tolerance(), deviation
}

// Orientation constraints approximate each object by its rotation
// around z only, a 2D-plane simplification good enough for placement
// QA on plan-derived geometry.

func evaluateParallel(c *Constraint, objs []*Object) (bool, float64) {
	angleDiff := math.Abs(objs[0].Rotation.Z - objs[1].Rotation.Z)
	return angleDiff <= c.Params.tolerance(), angleDiff
}

func evaluatePerpendicular(c *Constraint, objs []*Object) (bool, float64) {
	angleDiff := math.Abs(math.Abs(objs[0].Rotation.Z-objs[1].Rotation.Z) - math.Pi/2)
	return angleDiff <= c.Params.tolerance(), angleDiff
}

func evaluateAngle(c *Constraint, objs []*Object) (bool, float64) {
	actual := math.Abs(objs[0].Rotation.Z - objs[1].Rotation.Z)
	deviation := math.Abs(actual - c.Params.Angle)
	return deviation <= c.Params.tolerance(), deviation
}

func evaluateClearance(c *Constraint, objs []*Object) (bool, float64) {
	gap := objs[0].BoundingBox().Gap(objs[1].BoundingBox())
	violation := math.Max(0, c.Params.MinClearance-gap)
	return violation == 0, violation
}

func evaluateContainment(objs []*Object) (bool, float64) {
	contained := objs[0].BoundingBox().Encloses(objs[1].BoundingBox())
	if contained {
		return true, 0
	}
	return false, 1
}

func evaluateIntersection(objs []*Object) (bool, float64) {
	if objs[0].BoundingBox().Intersects(objs[1].BoundingBox()) {
		return true, 0
	}
	return false, 1
}

func evaluateMinSize(c *Constraint, objs []*Object) (bool, float64) {
	min := geo.Point3D{}
	if c.Params.MinSize != nil {
		min = *c.Params.MinSize
	}
	size := objs[0].BoundingBox().Size()
	total := math.Max(0, min.X-size.X) +
		math.Max(0, min.Y-size.Y) +
		math.Max(0, min.Z-size.Z)
	return total == 0, total
}

func evaluateMaxSize(c *Constraint, objs []*Object) (bool, float64) {
	if c.Params.MaxSize == nil {
		return true, 0
	}
	max := *c.Params.MaxSize
	size := objs[0].BoundingBox().Size()
	total := math.Max(0, size.X-max.X) +
		math.Max(0, size.Y-max.Y) +
		math.Max(0, size.Z-max.Z)
	return total == 0, total
}
