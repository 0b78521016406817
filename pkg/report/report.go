// Package report assembles resolution snapshots: a serializable view
// of a resolver's objects, solver history and outstanding conflicts at
// a point in time.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/arx-os/georesolve/pkg/geo"
	"github.com/arx-os/georesolve/pkg/resolver"
)

// Placement records where a single object ended up.
type Placement struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Position geo.Point3D      `json:"position"`
	Bounds   *geo.BoundingBox `json:"bounding_box,omitempty"`
}

// Snapshot is the complete export of a resolution pass.
type Snapshot struct {
	ID              string `json:"id"`
	GeneratedAt     string `json:"generated_at"`
	ObjectCount     int    `json:"object_count"`
	ConstraintCount int    `json:"constraint_count"`

	Placements        []Placement          `json:"placements"`
	History           []resolver.Result    `json:"resolution_history"`
	CurrentViolations []resolver.Violation `json:"current_violations"`
	CurrentConflicts  []resolver.Conflict  `json:"current_conflicts"`
}

// Assemble captures the resolver's current state as a snapshot.
// Placements come out in id order; violations and conflicts reflect a
// fresh evaluation, not the last stored pass.
func Assemble(r *resolver.Resolver) *Snapshot {
	objects := r.Registry().All()
	placements := make([]Placement, len(objects))
	for i, obj := range objects {
		placements[i] = Placement{
			ID:       obj.ID,
			Type:     obj.Type,
			Position: obj.Position,
			Bounds:   obj.Bounds,
		}
	}

	return &Snapshot{
		ID:                uuid.NewString(),
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
		ObjectCount:       r.Registry().Len(),
		ConstraintCount:   r.ConstraintCount(),
		Placements:        placements,
		History:           r.History(),
		CurrentViolations: r.ValidateConstraints(),
		CurrentConflicts:  r.DetectConflicts(),
	}
}
