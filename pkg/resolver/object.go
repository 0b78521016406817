package resolver

import "github.com/arx-os/georesolve/pkg/geo"

// Object is a positioned geometric object under resolution: a wall, a
// door, a fixture. The Type tag is free text; the resolver only cares
// about position and bounds.
type Object struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Position   geo.Point3D      `json:"position"`
	Rotation   geo.Point3D      `json:"rotation"` // Euler angles in radians
	Scale      geo.Point3D      `json:"scale"`
	Bounds     *geo.BoundingBox `json:"bounding_box,omitempty"`
	Properties map[string]any   `json:"properties,omitempty"`
}

// NewObject creates an object at the given position with zero rotation
// and unit scale.
func NewObject(id, objType string, position geo.Point3D) *Object {
	return &Object{
		ID:       id,
		Type:     objType,
		Position: position,
		Scale:    geo.Unit,
	}
}

// BoundingBox returns the explicit bounds if set, otherwise a unit-size
// box centered on the current position. The synthesized box is computed
// on demand, never cached, so it tracks position changes during
// relaxation.
func (o *Object) BoundingBox() geo.BoundingBox {
	if o.Bounds != nil {
		return *o.Bounds
	}
	return geo.FromCenterSize(o.Position, geo.Unit)
}
