package resolver

import (
	"encoding/json"
	"fmt"

	"github.com/arx-os/georesolve/pkg/geo"
)

// ConstraintType enumerates the supported spatial constraint kinds.
// The set is closed: the evaluator and the corrector switch over it
// exhaustively, so adding a kind is a compile-time decision.
type ConstraintType int

const (
	ConstraintDistance ConstraintType = iota
	ConstraintAlignment
	ConstraintParallel
	ConstraintPerpendicular
	ConstraintAngle
	ConstraintClearance
	ConstraintContainment
	ConstraintIntersection
	ConstraintMinSize
	ConstraintMaxSize
)

var constraintTypeNames = map[ConstraintType]string{
	ConstraintDistance:      "distance",
	ConstraintAlignment:     "alignment",
	ConstraintParallel:      "parallel",
	ConstraintPerpendicular: "perpendicular",
	ConstraintAngle:         "angle",
	ConstraintClearance:     "clearance",
	ConstraintContainment:   "containment",
	ConstraintIntersection:  "intersection",
	ConstraintMinSize:       "min_size",
	ConstraintMaxSize:       "max_size",
}

// String returns the wire name of the constraint type.
func (t ConstraintType) String() string {
	if name, ok := constraintTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("constraint_type(%d)", int(t))
}

// ParseConstraintType maps a wire name to a ConstraintType.
func ParseConstraintType(name string) (ConstraintType, error) {
	for t, n := range constraintTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown constraint type %q", name)
}

// MarshalJSON encodes the type as its wire name.
func (t ConstraintType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the type from its wire name.
func (t *ConstraintType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseConstraintType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Params carries the typed constraint parameters. Keeping these as
// plain fields keeps the hot evaluation path off dynamically-typed
// data; open extension lives on Object.Properties instead.
type Params struct {
	Distance     float64      `json:"distance,omitempty" yaml:"distance,omitempty"`
	Tolerance    float64      `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Axis         string       `json:"axis,omitempty" yaml:"axis,omitempty"`
	Angle        float64      `json:"angle,omitempty" yaml:"angle,omitempty"` // radians
	MinClearance float64      `json:"min_clearance,omitempty" yaml:"min_clearance,omitempty"`
	MinSize      *geo.Point3D `json:"min_size,omitempty" yaml:"min_size,omitempty"`
	MaxSize      *geo.Point3D `json:"max_size,omitempty" yaml:"max_size,omitempty"`
}

// tolerance returns the declared tolerance, falling back to 0.1 when
// unset or negative.
func (p Params) tolerance() float64 {
	if p.Tolerance <= 0 {
		return 0.1
	}
	return p.Tolerance
}

// Constraint is a declared spatial relationship between objects.
type Constraint struct {
	ID       string         `json:"id"`
	Type     ConstraintType `json:"type"`
	Objects  []string       `json:"objects"`
	Params   Params         `json:"parameters"`
	Priority int            `json:"priority"` // informational weight
	Enabled  bool           `json:"enabled"`
}

// NewConstraint creates an enabled constraint with priority 1.
func NewConstraint(id string, t ConstraintType, objects []string, params Params) *Constraint {
	return &Constraint{
		ID:       id,
		Type:     t,
		Objects:  objects,
		Params:   params,
		Priority: 1,
		Enabled:  true,
	}
}

// participants resolves the constraint's object ids against the
// registry, preserving order and skipping missing ids.
func (c *Constraint) participants(reg *Registry) []*Object {
	objs := make([]*Object, 0, len(c.Objects))
	for _, id := range c.Objects {
		if obj, ok := reg.Get(id); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}
