package plan

import (
	"github.com/arx-os/georesolve/pkg/geo"
	"github.com/arx-os/georesolve/pkg/resolver"
)

// PlacementPlan is the top-level description of a resolution job: the
// objects to place, the constraints between them, and the solver
// settings.
type PlacementPlan struct {
	PlanVersion string          `yaml:"plan_version" json:"plan_version"`
	Name        string          `yaml:"name" json:"name"`
	Objects     []ObjectDef     `yaml:"objects" json:"objects"`
	Constraints []ConstraintDef `yaml:"constraints" json:"constraints"`
	Resolution  Resolution      `yaml:"resolution" json:"resolution"`
	Goals       GoalsDef        `yaml:"optimization_goals" json:"optimization_goals"`
}

// ObjectDef declares a spatial object to register with the resolver.
type ObjectDef struct {
	ID         string         `yaml:"id" json:"id"`
	Type       string         `yaml:"type" json:"type"`
	Position   []float64      `yaml:"position" json:"position"`
	Rotation   []float64      `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Scale      []float64      `yaml:"scale,omitempty" json:"scale,omitempty"`
	BoundsMin  []float64      `yaml:"bounds_min,omitempty" json:"bounds_min,omitempty"`
	BoundsMax  []float64      `yaml:"bounds_max,omitempty" json:"bounds_max,omitempty"`
	Properties map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// ConstraintDef declares a spatial constraint between objects.
type ConstraintDef struct {
	ID       string          `yaml:"id" json:"id"`
	Type     string          `yaml:"type" json:"type"`
	Objects  []string        `yaml:"objects" json:"objects"`
	Params   resolver.Params `yaml:"params" json:"params"`
	Priority int             `yaml:"priority,omitempty" json:"priority,omitempty"`
	Disabled bool            `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Resolution holds the relaxation settings.
type Resolution struct {
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
	Optimize      bool    `yaml:"optimize,omitempty" json:"optimize,omitempty"`
}

// GoalsDef weights the stochastic layout objective.
type GoalsDef struct {
	MinimizeOverlaps   *float64 `yaml:"minimize_overlaps,omitempty" json:"minimize_overlaps,omitempty"`
	SatisfyConstraints *float64 `yaml:"satisfy_constraints,omitempty" json:"satisfy_constraints,omitempty"`
	MinimizeFootprint  *float64 `yaml:"minimize_footprint,omitempty" json:"minimize_footprint,omitempty"`
	MaintainAlignment  *float64 `yaml:"maintain_alignment,omitempty" json:"maintain_alignment,omitempty"`
}

// defaultMaxIterations and defaultTolerance back absent resolution
// settings.
const (
	defaultMaxIterations = 100
	defaultTolerance     = 0.01
)

// MaxIterationsOrDefault returns the configured iteration cap, or the
// default when unset.
func (r Resolution) MaxIterationsOrDefault() int {
	if r.MaxIterations > 0 {
		return r.MaxIterations
	}
	return defaultMaxIterations
}

// ToleranceOrDefault returns the configured convergence tolerance, or
// the default when unset.
func (r Resolution) ToleranceOrDefault() float64 {
	if r.Tolerance > 0 {
		return r.Tolerance
	}
	return defaultTolerance
}

// ResolverGoals converts the plan's goal weights to solver goals,
// filling absent weights from the solver defaults.
func (g GoalsDef) ResolverGoals() resolver.Goals {
	goals := resolver.DefaultGoals()
	if g.MinimizeOverlaps != nil {
		goals.MinimizeOverlaps = *g.MinimizeOverlaps
	}
	if g.SatisfyConstraints != nil {
		goals.MinimizeViolations = *g.SatisfyConstraints
	}
	if g.MinimizeFootprint != nil {
		goals.MinimizeArea = *g.MinimizeFootprint
	}
	if g.MaintainAlignment != nil {
		goals.MaximizeAlignment = *g.MaintainAlignment
	}
	return goals
}

// point3 converts a coordinate slice to a point, missing components
// reading as zero.
func point3(v []float64) geo.Point3D {
	at := func(i int) float64 {
		if i < len(v) {
			return v[i]
		}
		return 0
	}
	return geo.Pt3(at(0), at(1), at(2))
}
