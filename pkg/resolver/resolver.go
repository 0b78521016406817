// Package resolver is the geometry-resolution core: it owns a registry
// of positioned objects and a set of declared spatial constraints,
// detects overlaps and violations between them, and iteratively nudges
// positions until the layout satisfies the constraints or an iteration
// budget runs out.
//
// A Resolver is single-session state. It performs no I/O and never
// blocks; callers needing parallelism run one resolver per worker.
package resolver

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// Resolver owns one resolution session: the object registry, the
// constraint map, the latest conflict report and the run history.
type Resolver struct {
	registry    *Registry
	constraints map[string]*Constraint
	conflicts   []Conflict
	history     []Result
	rng         *rand.Rand
}

// NewResolver creates an empty resolution session.
func NewResolver() *Resolver {
	return &Resolver{
		registry:    NewRegistry(),
		constraints: make(map[string]*Constraint),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Registry returns the session's object registry.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// AddObject registers an object for this session.
func (r *Resolver) AddObject(obj *Object) {
	r.registry.Add(obj)
}

// RemoveObject drops an object from the session.
func (r *Resolver) RemoveObject(id string) {
	r.registry.Remove(id)
}

// AddConstraint declares a constraint for this session.
func (r *Resolver) AddConstraint(c *Constraint) {
	r.constraints[c.ID] = c
}

// RemoveConstraint drops a constraint from the session.
func (r *Resolver) RemoveConstraint(id string) {
	delete(r.constraints, id)
}

// Constraint returns a declared constraint by id.
func (r *Resolver) Constraint(id string) (*Constraint, bool) {
	c, ok := r.constraints[id]
	return c, ok
}

// ConstraintCount returns the number of declared constraints.
func (r *Resolver) ConstraintCount() int {
	return len(r.constraints)
}

// Conflicts returns the conflicts from the most recent detection pass.
func (r *Resolver) Conflicts() []Conflict {
	return r.conflicts
}

// History returns all resolution results recorded this session.
func (r *Resolver) History() []Result {
	return r.history
}

// constraintIDs returns constraint ids in sorted order so evaluation
// and correction sweeps are deterministic.
func (r *Resolver) constraintIDs() []string {
	ids := make([]string, 0, len(r.constraints))
	for id := range r.constraints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidateConstraints evaluates every constraint and returns the
// currently violated ones, ordered by constraint id.
func (r *Resolver) ValidateConstraints() []Violation {
	var violations []Violation
	for _, id := range r.constraintIDs() {
		c := r.constraints[id]
		satisfied, amount := Evaluate(c, r.registry)
		if !satisfied {
			violations = append(violations, Violation{ConstraintID: id, Amount: amount})
		}
	}
	return violations
}

// DetectConflicts rebuilds the conflict report: a pairwise AABB overlap
// scan followed by a constraint-violation scan. Prior results are
// discarded.
func (r *Resolver) DetectConflicts() []Conflict {
	r.conflicts = r.conflicts[:0]
	conflictID := 0

	ids := r.registry.IDs()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			obj1, _ := r.registry.Get(ids[i])
			obj2, _ := r.registry.Get(ids[j])
			bbox1 := obj1.BoundingBox()
			bbox2 := obj2.BoundingBox()

			if !bbox1.Intersects(bbox2) {
				continue
			}
			overlap := bbox1.OverlapVolume(bbox2)
			severity := overlapSeverity(overlap, bbox1.Volume(), bbox2.Volume())

			r.conflicts = append(r.conflicts, Conflict{
				ID:          fmt.Sprintf("conflict_%d", conflictID),
				Type:        ConflictOverlap,
				Objects:     []string{ids[i], ids[j]},
				Severity:    severity,
				Description: fmt.Sprintf("Objects %s and %s overlap", ids[i], ids[j]),
				Suggestions: []string{
					fmt.Sprintf("Move %s away from %s", ids[i], ids[j]),
					fmt.Sprintf("Move %s away from %s", ids[j], ids[i]),
					fmt.Sprintf("Resize %s or %s", ids[i], ids[j]),
					fmt.Sprintf("Rotate %s or %s", ids[i], ids[j]),
				},
			})
			conflictID++
		}
	}

	// Constraint violations become conflicts too. They are always
	// tagged as clearance violations regardless of the constraint's
	// real type; downstream consumers depend on this tag.
	for _, v := range r.ValidateConstraints() {
		c := r.constraints[v.ConstraintID]
		r.conflicts = append(r.conflicts, Conflict{
			ID:          fmt.Sprintf("conflict_%d", conflictID),
			Type:        ConflictClearanceViolation,
			Objects:     append([]string(nil), c.Objects...),
			Severity:    math.Min(1.0, v.Amount),
			Description: fmt.Sprintf("Constraint %s violated: %s", v.ConstraintID, c.Type),
			Suggestions: []string{
				fmt.Sprintf("Adjust position of objects %v", c.Objects),
				fmt.Sprintf("Modify constraint parameters for %s", v.ConstraintID),
				fmt.Sprintf("Disable constraint %s if not critical", v.ConstraintID),
			},
		})
		conflictID++
	}

	return r.conflicts
}

// Detect3DCollisions is a narrower pass that re-scans pairwise AABB
// intersections and reports them as intersection conflicts, used for
// vertical and structural collision QA. It does not touch the
// resolver's stored conflict report.
func (r *Resolver) Detect3DCollisions() []Conflict {
	var collisions []Conflict
	collisionID := 0

	ids := r.registry.IDs()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			obj1, _ := r.registry.Get(ids[i])
			obj2, _ := r.registry.Get(ids[j])
			bbox1 := obj1.BoundingBox()
			bbox2 := obj2.BoundingBox()

			if !bbox1.Intersects(bbox2) {
				continue
			}
			volume := bbox1.OverlapVolume(bbox2)
			severity := overlapSeverity(volume, bbox1.Volume(), bbox2.Volume())

			collisions = append(collisions, Conflict{
				ID:          fmt.Sprintf("collision_%d", collisionID),
				Type:        ConflictIntersection,
				Objects:     []string{ids[i], ids[j]},
				Severity:    severity,
				Description: fmt.Sprintf("3D collision between %s and %s", ids[i], ids[j]),
				Suggestions: []string{
					fmt.Sprintf("Move %s in Z direction", ids[i]),
					fmt.Sprintf("Move %s in Z direction", ids[j]),
					fmt.Sprintf("Reduce height of %s or %s", ids[i], ids[j]),
					"Add vertical separation between objects",
				},
			})
			collisionID++
		}
	}

	return collisions
}

// overlapSeverity maps an overlap volume to [0, 1] relative to the
// smaller box. A degenerate box (zero volume on some axis) that still
// intersects counts as fully overlapped, keeping the ratio finite.
func overlapSeverity(overlap, vol1, vol2 float64) float64 {
	minVolume := math.Min(vol1, vol2)
	if minVolume <= 0 {
		return 1.0
	}
	return math.Min(1.0, overlap/minVolume)
}
