package assign

import (
	"errors"
	"testing"

	"github.com/anveshk/classroom-seating/internal/model"
)

func TestAllocateRemainderDistribution(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Capacity: 30},
		{ID: 2, Capacity: 30},
		{ID: 3, Capacity: 30},
	}
	quotas, err := Allocate(7, rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// base 2, remainder 1: first room absorbs the extra student
	want := []int{3, 2, 2}
	sum := 0
	for i, q := range quotas {
		if q.FinalCount != want[i] {
			t.Fatalf("room %d quota = %d, want %d", i, q.FinalCount, want[i])
		}
		sum += q.FinalCount
	}
	if sum != 7 {
		t.Fatalf("quota sum = %d, want 7", sum)
	}
}

func TestAllocateClipsToCapacity(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Capacity: 3},
		{ID: 2, Capacity: 100},
	}
	quotas, err := Allocate(10, rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotas[0].FinalCount != 3 {
		t.Fatalf("clipped quota = %d, want 3", quotas[0].FinalCount)
	}
	if quotas[1].FinalCount != 5 {
		t.Fatalf("second quota = %d, want 5", quotas[1].FinalCount)
	}
	// the clipped shortfall is not redistributed: 8 seated out of 10
	if total := quotas[0].FinalCount + quotas[1].FinalCount; total != 8 {
		t.Fatalf("seated total = %d, want 8", total)
	}
}

func TestAllocateZeroRooms(t *testing.T) {
	if _, err := Allocate(5, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestAllocateZeroStudents(t *testing.T) {
	rooms := []model.Room{{ID: 1, Capacity: 10}, {ID: 2, Capacity: 10}}
	quotas, err := Allocate(0, rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range quotas {
		if q.FinalCount != 0 {
			t.Fatalf("room %d quota = %d, want 0", i, q.FinalCount)
		}
	}
}
