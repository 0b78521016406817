package main

import (
	"fmt"
	"os"

	"github.com/arx-os/georesolve/pkg/resolver"
	"github.com/arx-os/georesolve/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(os.Stderr, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(os.Stderr, "    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(os.Stderr, "    * %s\n", s)
			}
		}
		fmt.Fprintln(os.Stderr)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(os.Stderr, "WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Fprintf(os.Stderr, "    -> %s = %v\n", w.Path, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Fprintf(os.Stderr, "    * %s\n", s)
			}
		}
		fmt.Fprintln(os.Stderr)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(os.Stderr, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(os.Stderr)
	}

	if r.Valid {
		fmt.Fprintf(os.Stderr, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(os.Stderr, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(r resolver.Result) {
	status := "NOT CONVERGED"
	if r.Success {
		status = "CONVERGED"
	}
	fmt.Fprintf(os.Stderr, "Resolution: %s after %d iterations\n", status, r.Iterations)
	if len(r.FinalViolations) > 0 {
		fmt.Fprintf(os.Stderr, "  %d constraints still violated:\n", len(r.FinalViolations))
		for _, v := range r.FinalViolations {
			fmt.Fprintf(os.Stderr, "    %s by %.4f\n", v.ConstraintID, v.Amount)
		}
	}
	if r.OptimizationScore != 0 {
		fmt.Fprintf(os.Stderr, "  optimization score: %.4f\n", r.OptimizationScore)
	}
	fmt.Fprintf(os.Stderr, "  conflicts: %d resolved, %d remaining\n",
		r.ConflictsResolved, r.ConflictsRemaining)
}
