package plan

import (
	"fmt"

	"github.com/arx-os/georesolve/pkg/resolver"
	"github.com/arx-os/georesolve/pkg/validation"
)

// ValidateSchema checks a loaded plan for structural problems before
// it is handed to Build: duplicate or empty ids, unknown constraint
// types or axes, references to undeclared objects, and solver settings
// the resolver would silently replace with defaults.
func ValidateSchema(p *PlacementPlan) *validation.Report {
	report := validation.NewReport()

	objectIDs := make(map[string]bool, len(p.Objects))
	for i, def := range p.Objects {
		path := fmt.Sprintf("objects[%d]", i)
		if def.ID == "" {
			report.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Code:    "empty_id",
				Message: "object has no id",
				Path:    path,
			})
			continue
		}
		if objectIDs[def.ID] {
			report.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Code:        "duplicate_id",
				Message:     fmt.Sprintf("object id %q declared more than once", def.ID),
				Path:        path,
				ActualValue: def.ID,
			})
		}
		objectIDs[def.ID] = true

		validateBounds(def, path, report)
	}

	constraintIDs := make(map[string]bool, len(p.Constraints))
	for i, def := range p.Constraints {
		path := fmt.Sprintf("constraints[%d]", i)
		if def.ID == "" {
			report.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Code:    "empty_id",
				Message: "constraint has no id",
				Path:    path,
			})
		} else if constraintIDs[def.ID] {
			report.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Code:        "duplicate_id",
				Message:     fmt.Sprintf("constraint id %q declared more than once", def.ID),
				Path:        path,
				ActualValue: def.ID,
			})
		}
		constraintIDs[def.ID] = true

		validateConstraintDef(def, path, objectIDs, report)
	}

	validateResolution(p.Resolution, report)

	return report
}

// validateBounds flags swapped box corners. Build normalizes them, so
// this is a warning, not an error.
func validateBounds(def ObjectDef, path string, report *validation.Report) {
	if def.BoundsMin == nil || def.BoundsMax == nil {
		if def.BoundsMin != nil || def.BoundsMax != nil {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSchema,
				Code:    "partial_bounds",
				Message: "bounds_min and bounds_max must be given together; the partial bound is ignored",
				Path:    path,
			})
		}
		return
	}
	lo := point3(def.BoundsMin)
	hi := point3(def.BoundsMax)
	if lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Code:        "swapped_bounds",
			Message:     "bounds corners are swapped on at least one axis and will be normalized",
			Path:        path,
			ActualValue: []any{def.BoundsMin, def.BoundsMax},
		})
	}
}

func validateConstraintDef(def ConstraintDef, path string, objectIDs map[string]bool, report *validation.Report) {
	ctype, err := resolver.ParseConstraintType(def.Type)
	if err != nil {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Code:        "unknown_constraint_type",
			Message:     err.Error(),
			Path:        path,
			ActualValue: def.Type,
		})
		return
	}

	for _, id := range def.Objects {
		if !objectIDs[id] {
			report.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Code:        "unknown_object",
				Message:     fmt.Sprintf("constraint %s references undeclared object %q", def.ID, id),
				Path:        path,
				ActualValue: id,
			})
		}
	}
	if len(def.Objects) < 2 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSchema,
			Code:    "too_few_objects",
			Message: fmt.Sprintf("constraint %s names %d objects; constraints with fewer than 2 are treated as satisfied", def.ID, len(def.Objects)),
			Path:    path,
		})
	}

	switch def.Params.Axis {
	case "", "x", "y", "z":
	default:
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Code:        "unknown_axis",
			Message:     fmt.Sprintf("constraint %s axis %q is not x, y or z and will be read as z", def.ID, def.Params.Axis),
			Path:        path,
			ActualValue: def.Params.Axis,
		})
	}

	if ctype == resolver.ConstraintMinSize || ctype == resolver.ConstraintMaxSize {
		lo, hi := def.Params.MinSize, def.Params.MaxSize
		if lo != nil && hi != nil && (lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z) {
			report.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Code:    "inverted_size_limits",
				Message: fmt.Sprintf("constraint %s has min_size exceeding max_size", def.ID),
				Path:    path,
			})
		}
	}

	if def.Params.Tolerance < 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Code:        "negative_tolerance",
			Message:     fmt.Sprintf("constraint %s has a negative tolerance; the default of 0.1 applies", def.ID),
			Path:        path,
			ActualValue: def.Params.Tolerance,
		})
	}
}

func validateResolution(r Resolution, report *validation.Report) {
	if r.MaxIterations < 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Code:        "invalid_max_iterations",
			Message:     "max_iterations is negative; the default applies",
			Path:        "resolution",
			ActualValue: r.MaxIterations,
		})
	}
	if r.Tolerance < 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Code:        "invalid_tolerance",
			Message:     "tolerance is negative; the default applies",
			Path:        "resolution",
			ActualValue: r.Tolerance,
		})
	}
}
