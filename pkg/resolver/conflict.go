package resolver

import (
	"encoding/json"
	"fmt"
)

// ConflictType enumerates the kinds of detected spatial conflicts.
type ConflictType int

const (
	ConflictOverlap ConflictType = iota
	ConflictIntersection
	ConflictClearanceViolation
	ConflictSizeViolation
	ConflictAlignmentViolation
	ConflictAngleViolation
)

var conflictTypeNames = map[ConflictType]string{
	ConflictOverlap:            "overlap",
	ConflictIntersection:       "intersection",
	ConflictClearanceViolation: "clearance_violation",
	ConflictSizeViolation:      "size_violation",
	ConflictAlignmentViolation: "alignment_violation",
	ConflictAngleViolation:     "angle_violation",
}

// String returns the wire name of the conflict type.
func (t ConflictType) String() string {
	if name, ok := conflictTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("conflict_type(%d)", int(t))
}

// MarshalJSON encodes the type as its wire name.
func (t ConflictType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the type from its wire name.
func (t *ConflictType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for ct, n := range conflictTypeNames {
		if n == name {
			*t = ct
			return nil
		}
	}
	return fmt.Errorf("unknown conflict type %q", name)
}

// Conflict is a detected spatial problem between objects. Conflicts
// are a report, not persistent state: every detection pass rebuilds
// them from scratch.
type Conflict struct {
	ID          string       `json:"id"`
	Type        ConflictType `json:"type"`
	Objects     []string     `json:"objects"`
	Severity    float64      `json:"severity"` // 0.0 to 1.0
	Description string       `json:"description"`
	Suggestions []string     `json:"resolution_suggestions,omitempty"`
}
