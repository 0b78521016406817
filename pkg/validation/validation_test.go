package validation

import "testing"

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should have empty slices")
	}
}

func TestAddError(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:   LevelSchema,
		Message: "bad value",
	})
	if r.Valid {
		t.Error("report with error should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(r.Errors))
	}
	if r.Errors[0].Severity != SeverityError {
		t.Error("AddError should set severity to error")
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestAddWarning(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelGeometry, Message: "heads up"})
	if !r.Valid {
		t.Error("warnings should not invalidate report")
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(r.Warnings))
	}
	if r.Warnings[0].Severity != SeverityWarning {
		t.Error("AddWarning should set severity to warning")
	}
}

func TestAddCorrection(t *testing.T) {
	r := NewReport()
	r.AddCorrection(Correction{
		Type:      "close_polygon",
		Original:  [][]float64{{0, 0}, {1, 0}},
		Corrected: [][]float64{{0, 0}, {1, 0}, {0, 0}},
	})
	if len(r.Corrections) != 1 {
		t.Fatalf("expected 1 correction, got %d", len(r.Corrections))
	}
	// Corrections alone do not invalidate a report.
	if !r.Valid {
		t.Error("corrections should not invalidate report")
	}
}

func TestMerge(t *testing.T) {
	r1 := NewReport()
	r1.AddWarning(Result{Level: LevelSchema, Message: "warn1"})

	r2 := NewReport()
	r2.AddError(Result{Level: LevelGeometry, Message: "err1"})
	r2.AddWarning(Result{Level: LevelGeometry, Message: "warn2"})
	r2.AddInfo(Result{Level: LevelGeometry, Message: "info1"})
	r2.AddCorrection(Correction{Type: "coordinates"})

	r1.Merge(r2)

	if r1.Valid {
		t.Error("merged report should carry invalidity")
	}
	if len(r1.Errors) != 1 || len(r1.Warnings) != 2 || len(r1.Info) != 1 {
		t.Errorf("unexpected merged counts: %s", r1.Summary)
	}
	if len(r1.Corrections) != 1 {
		t.Errorf("expected merged corrections, got %d", len(r1.Corrections))
	}
}
