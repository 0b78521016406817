package mesh

import "github.com/arx-os/georesolve/pkg/geometry"

// Batch operation names.
const (
	OpValidate = "validate"
	OpOptimize = "optimize"
)

// BatchProcess runs the named operations over each geometry in order.
// Validate applies the report's proposed repairs; optimize runs the
// medium preset. A nil operations slice requests validate then
// optimize.
func BatchProcess(geometries []geometry.Geometry, operations []string) []geometry.Geometry {
	if operations == nil {
		operations = []string{OpValidate, OpOptimize}
	}

	validate := false
	optimize := false
	for _, op := range operations {
		switch op {
		case OpValidate:
			validate = true
		case OpOptimize:
			optimize = true
		}
	}

	processed := make([]geometry.Geometry, 0, len(geometries))
	for _, g := range geometries {
		if validate {
			report := geometry.Validate(g)
			g = geometry.ApplyCorrections(g, report)
		}
		if optimize {
			g = Optimize(g, LevelMedium)
		}
		processed = append(processed, g)
	}
	return processed
}
