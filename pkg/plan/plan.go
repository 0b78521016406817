// Package plan loads placement plans from YAML and builds resolvers
// from them.
package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arx-os/georesolve/pkg/geo"
	"github.com/arx-os/georesolve/pkg/resolver"
)

// Load reads a placement plan from a YAML file.
func Load(path string) (*PlacementPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p PlacementPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads a placement plan from a project directory.
// It looks for plan.yaml in the given directory.
func LoadProject(projectDir string) (*PlacementPlan, error) {
	planPath := filepath.Join(projectDir, "plan.yaml")
	return Load(planPath)
}

// Build registers the plan's objects and constraints on a fresh
// resolver. The plan should pass ValidateSchema first; Build reports
// the first structural problem it hits.
func Build(p *PlacementPlan) (*resolver.Resolver, error) {
	r := resolver.NewResolver()

	for _, def := range p.Objects {
		obj, err := buildObject(def)
		if err != nil {
			return nil, err
		}
		r.AddObject(obj)
	}

	for _, def := range p.Constraints {
		c, err := buildConstraint(def)
		if err != nil {
			return nil, err
		}
		r.AddConstraint(c)
	}

	return r, nil
}

func buildObject(def ObjectDef) (*resolver.Object, error) {
	if def.ID == "" {
		return nil, fmt.Errorf("object with empty id")
	}

	obj := resolver.NewObject(def.ID, def.Type, point3(def.Position))
	if def.Rotation != nil {
		obj.Rotation = point3(def.Rotation)
	}
	if def.Scale != nil {
		obj.Scale = point3(def.Scale)
	}
	if def.BoundsMin != nil && def.BoundsMax != nil {
		bounds := geo.NewBoundingBox(point3(def.BoundsMin), point3(def.BoundsMax))
		obj.Bounds = &bounds
	}
	if def.Properties != nil {
		obj.Properties = def.Properties
	}
	return obj, nil
}

func buildConstraint(def ConstraintDef) (*resolver.Constraint, error) {
	if def.ID == "" {
		return nil, fmt.Errorf("constraint with empty id")
	}

	ctype, err := resolver.ParseConstraintType(def.Type)
	if err != nil {
		return nil, fmt.Errorf("constraint %s: %w", def.ID, err)
	}

	c := resolver.NewConstraint(def.ID, ctype, def.Objects, def.Params)
	if def.Priority != 0 {
		c.Priority = def.Priority
	}
	if def.Disabled {
		c.Enabled = false
	}
	return c, nil
}
