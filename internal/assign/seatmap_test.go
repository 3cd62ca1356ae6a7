package assign

import (
	"testing"

	"github.com/anveshk/classroom-seating/internal/model"
)

func TestBuildSeatMapGridBounds(t *testing.T) {
	room := model.Room{ID: 7, Number: "104", Building: "Main", Capacity: 12}
	block := makeStudents(12)

	plan := BuildSeatMap(room, block, 5, "2026-09-01", "SAMPLE-7")
	if plan.Rows != 3 {
		t.Fatalf("rows = %d, want ceil(12/5) = 3", plan.Rows)
	}
	if plan.Columns != 5 {
		t.Fatalf("columns = %d, want 5", plan.Columns)
	}
	seen := map[string]bool{}
	for _, s := range plan.Seats {
		if s.Row >= plan.Rows || s.Col >= plan.Columns {
			t.Fatalf("seat %s at (%d,%d) outside %dx%d grid", s.ID, s.Row, s.Col, plan.Rows, plan.Columns)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate seat id %s", s.ID)
		}
		seen[s.ID] = true
	}
	if plan.Seats[5].Row != 1 || plan.Seats[5].Col != 0 {
		t.Fatalf("seat 5 at (%d,%d), want (1,0)", plan.Seats[5].Row, plan.Seats[5].Col)
	}
}

func TestBuildSeatMapNeverExceedsCapacity(t *testing.T) {
	room := model.Room{ID: 1, Capacity: 4}
	plan := BuildSeatMap(room, makeStudents(9), 2, "2026-09-01", "SAMPLE-1")
	if got := plan.OccupiedCount(); got != 4 {
		t.Fatalf("occupied = %d, want capacity 4", got)
	}
}

func TestBuildSeatMapEmptyBlock(t *testing.T) {
	room := model.Room{ID: 3, Capacity: 10}
	plan := BuildSeatMap(room, nil, 5, "2026-09-01", "SAMPLE-3")
	if plan.OccupiedCount() != 0 {
		t.Fatalf("expected zero occupied seats, got %d", plan.OccupiedCount())
	}
	// the empty grid still reports its full outline
	if plan.Rows != 2 || plan.Columns != 5 {
		t.Fatalf("grid = %dx%d, want 2x5", plan.Rows, plan.Columns)
	}
}
