package geometry

import "fmt"

// GeometryError reports an unrecoverable geometric operation failure:
// a transform that cannot be built or applied, or a malformed
// construction. Validation findings are not errors; they flow through
// validation.Report instead.
type GeometryError struct {
	Op      string         // operation that failed, e.g. "transform"
	Message string
	Detail  map[string]any // structured payload for the caller to log
}

// Error implements the error interface.
func (e *GeometryError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// newGeometryError builds a GeometryError with an optional detail map.
func newGeometryError(op, message string, detail map[string]any) *GeometryError {
	return &GeometryError{Op: op, Message: message, Detail: detail}
}
