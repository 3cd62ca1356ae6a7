package assign

import (
	"context"
	"testing"

	"github.com/anveshk/classroom-seating/internal/model"
)

func TestPreviewSequentialMatchesRun(t *testing.T) {
	rooms := []model.Room{{ID: 1, Capacity: 2}, {ID: 2, Capacity: 3}}
	students := makeStudents(4)

	preview := PreviewSequential(students, rooms)

	store := &fakeStore{}
	run, err := newTestEngine(store, 1).RunSequential(context.Background(), students, rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(preview.Assignments) != len(run.Assignments) {
		t.Fatalf("preview has %d assignments, run has %d", len(preview.Assignments), len(run.Assignments))
	}
	for i := range preview.Assignments {
		if rolls(preview.Assignments[i]) != rolls(run.Assignments[i]) {
			t.Fatalf("room %d differs: preview %s, run %s", i, rolls(preview.Assignments[i]), rolls(run.Assignments[i]))
		}
	}
	if preview.Stats.AssignedStudents != run.Stats.AssignedStudents {
		t.Fatalf("assigned: preview %d, run %d", preview.Stats.AssignedStudents, run.Stats.AssignedStudents)
	}
	if preview.Stats.Source != "generated" {
		t.Fatalf("preview source = %q", preview.Stats.Source)
	}
	// the preview must not touch storage
	if len(store.plans) != 2 {
		t.Fatalf("run persisted %d plans, want 2", len(store.plans))
	}
}

func TestPreviewSequentialZeroRooms(t *testing.T) {
	res := PreviewSequential(makeStudents(3), nil)
	if len(res.Assignments) != 0 || res.Stats.AssignedStudents != 0 {
		t.Fatalf("zero rooms preview = %+v", res)
	}
	if res.Stats.TotalStudents != 3 {
		t.Fatalf("total students = %d, want 3", res.Stats.TotalStudents)
	}
}
