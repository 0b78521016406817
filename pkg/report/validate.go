package report

import (
	"fmt"
	"time"

	"github.com/arx-os/georesolve/pkg/validation"
)

// ValidateSnapshot performs structural validation on an assembled
// snapshot. It checks placement integrity, count consistency, conflict
// references and severity bounds.
func ValidateSnapshot(s *Snapshot) *validation.Report {
	r := validation.NewReport()

	if s == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "snapshot is nil",
		})
		return r
	}

	validateHeader(s, r)
	validatePlacements(s, r)
	validateConflicts(s, r)

	return r
}

func validateHeader(s *Snapshot, r *validation.Report) {
	if s.ID == "" {
		r.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  "snapshot has empty id",
			Path:     "id",
			Expected: "non-empty string",
		})
	}
	if _, err := time.Parse(time.RFC3339, s.GeneratedAt); err != nil {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("generated_at is not RFC 3339: %v", err),
			Path:        "generated_at",
			ActualValue: s.GeneratedAt,
		})
	}
	if s.ObjectCount != len(s.Placements) {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("object_count %d does not match %d placements", s.ObjectCount, len(s.Placements)),
			Path:        "object_count",
			ActualValue: s.ObjectCount,
			Expected:    fmt.Sprintf("%d", len(s.Placements)),
		})
	}
	if s.ConstraintCount < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     "constraint_count is negative",
			Path:        "constraint_count",
			ActualValue: s.ConstraintCount,
		})
	}
}

func validatePlacements(s *Snapshot, r *validation.Report) {
	seen := make(map[string]int, len(s.Placements))
	for i, p := range s.Placements {
		if p.ID == "" {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("placement at index %d has empty id", i),
				Path:     fmt.Sprintf("placements[%d].id", i),
				Expected: "non-empty string",
			})
			continue
		}
		if prev, exists := seen[p.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("duplicate placement id %q at indices %d and %d", p.ID, prev, i),
				Path:        fmt.Sprintf("placements[%d].id", i),
				ActualValue: p.ID,
			})
		}
		seen[p.ID] = i
	}
}

func validateConflicts(s *Snapshot, r *validation.Report) {
	placed := make(map[string]bool, len(s.Placements))
	for _, p := range s.Placements {
		placed[p.ID] = true
	}

	for i, c := range s.CurrentConflicts {
		if c.Severity < 0 || c.Severity > 1 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("conflict %s severity %f out of [0, 1]", c.ID, c.Severity),
				Path:        fmt.Sprintf("current_conflicts[%d].severity", i),
				ActualValue: c.Severity,
			})
		}
		for _, id := range c.Objects {
			if !placed[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("conflict %s references unknown object %q", c.ID, id),
					Path:        fmt.Sprintf("current_conflicts[%d].objects", i),
					ActualValue: id,
					Expected:    "placed object id",
				})
			}
		}
	}
}
