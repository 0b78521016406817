package report

import (
	"testing"

	"github.com/google/uuid"

	"github.com/arx-os/georesolve/pkg/geo"
	"github.com/arx-os/georesolve/pkg/resolver"
)

func twoRoomResolver() *resolver.Resolver {
	r := resolver.NewResolver()

	a := resolver.NewObject("room_a", "room", geo.Pt3(0, 0, 0))
	bounds := geo.FromCenterSize(a.Position, geo.Pt3(2, 2, 2))
	a.Bounds = &bounds
	r.AddObject(a)

	b := resolver.NewObject("room_b", "room", geo.Pt3(1, 0, 0))
	bbounds := geo.FromCenterSize(b.Position, geo.Pt3(2, 2, 2))
	b.Bounds = &bbounds
	r.AddObject(b)

	r.AddConstraint(resolver.NewConstraint("apart", resolver.ConstraintDistance,
		[]string{"room_a", "room_b"}, resolver.Params{Distance: 5, Tolerance: 0.1}))

	return r
}

func TestAssemble(t *testing.T) {
	r := twoRoomResolver()
	r.ResolveConstraints(10, 0.01)

	s := Assemble(r)

	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("snapshot id is not a UUID: %q", s.ID)
	}
	if s.ObjectCount != 2 || len(s.Placements) != 2 {
		t.Errorf("expected 2 placements, got count=%d len=%d", s.ObjectCount, len(s.Placements))
	}
	if s.ConstraintCount != 1 {
		t.Errorf("constraint count = %d, want 1", s.ConstraintCount)
	}
	if len(s.History) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(s.History))
	}

	// Placements come out sorted by id.
	if s.Placements[0].ID != "room_a" || s.Placements[1].ID != "room_b" {
		t.Errorf("placements out of order: %v", s.Placements)
	}
}

func TestAssembleReportsLiveConflicts(t *testing.T) {
	// Rooms overlap and sit far from the target distance, so both the
	// conflict and violation lists come back non-empty.
	s := Assemble(twoRoomResolver())

	if len(s.CurrentConflicts) == 0 {
		t.Error("expected an overlap conflict in the snapshot")
	}
	if len(s.CurrentViolations) == 0 {
		t.Error("expected a distance violation in the snapshot")
	}
	if len(s.History) != 0 {
		t.Errorf("no resolution ran; history should be empty, got %d", len(s.History))
	}
}

func TestValidateSnapshotClean(t *testing.T) {
	s := Assemble(twoRoomResolver())
	report := ValidateSnapshot(s)
	if !report.Valid {
		t.Errorf("assembled snapshot should validate clean: %+v", report.Errors)
	}
}

func TestValidateSnapshotNil(t *testing.T) {
	report := ValidateSnapshot(nil)
	if report.Valid {
		t.Error("nil snapshot must be invalid")
	}
}

func TestValidateSnapshotCountMismatch(t *testing.T) {
	s := Assemble(twoRoomResolver())
	s.ObjectCount = 5
	report := ValidateSnapshot(s)
	if report.Valid {
		t.Error("count mismatch must fail validation")
	}
}

func TestValidateSnapshotBadConflictRef(t *testing.T) {
	s := Assemble(twoRoomResolver())
	s.CurrentConflicts = append(s.CurrentConflicts, resolver.Conflict{
		ID:       "ghost",
		Objects:  []string{"no_such_room"},
		Severity: 0.5,
	})
	report := ValidateSnapshot(s)
	if report.Valid {
		t.Error("conflict referencing an unknown object must fail validation")
	}
}

func TestValidateSnapshotSeverityBounds(t *testing.T) {
	s := Assemble(twoRoomResolver())
	s.CurrentConflicts = append(s.CurrentConflicts, resolver.Conflict{
		ID:       "hot",
		Objects:  []string{"room_a", "room_b"},
		Severity: 1.5,
	})
	report := ValidateSnapshot(s)
	if report.Valid {
		t.Error("severity above 1 must fail validation")
	}
}

func TestValidateSnapshotDuplicatePlacement(t *testing.T) {
	s := Assemble(twoRoomResolver())
	s.Placements = append(s.Placements, s.Placements[0])
	s.ObjectCount = len(s.Placements)
	report := ValidateSnapshot(s)
	if report.Valid {
		t.Error("duplicate placement ids must fail validation")
	}
}

func BenchmarkAssemble(b *testing.B) {
	r := twoRoomResolver()
	r.ResolveConstraints(50, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Assemble(r)
	}
}
