package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arx-os/georesolve/pkg/plan"
	"github.com/arx-os/georesolve/pkg/report"
	"github.com/arx-os/georesolve/pkg/resolver"
	"github.com/arx-os/georesolve/pkg/validation"
)

// loadAndValidate loads the plan and runs schema validation.
func loadAndValidate(projectPath string) (*plan.PlacementPlan, *validation.Report, error) {
	p, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	schemaReport := plan.ValidateSchema(p)
	return p, schemaReport, nil
}

func runValidate(projectPath string) error {
	_, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runResolve(projectPath string, maxIterations int, tolerance float64) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("plan has validation errors")
	}

	r, err := plan.Build(p)
	if err != nil {
		return err
	}

	if maxIterations <= 0 {
		maxIterations = p.Resolution.MaxIterationsOrDefault()
	}
	if tolerance <= 0 {
		tolerance = p.Resolution.ToleranceOrDefault()
	}

	var result resolver.Result
	if p.Resolution.Optimize {
		result = r.OptimizeLayout(p.Goals.ResolverGoals())
	} else {
		result = r.ResolveConstraints(maxIterations, tolerance)
	}

	return emitSnapshot(r, result)
}

func runOptimize(projectPath string) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("plan has validation errors")
	}

	r, err := plan.Build(p)
	if err != nil {
		return err
	}

	result := r.OptimizeLayout(p.Goals.ResolverGoals())
	return emitSnapshot(r, result)
}

func emitSnapshot(r *resolver.Resolver, result resolver.Result) error {
	snapshot := report.Assemble(r)

	printResult(result)

	output := map[string]any{
		"result":   result,
		"snapshot": snapshot,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
