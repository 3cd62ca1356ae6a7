package assign

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/anveshk/classroom-seating/internal/model"
)

// ArtifactStore is the narrow persistence interface the engine drives.
// Every run first clears all prior plans, then creates one fresh plan per
// room; there is no incremental update path.  CreateSeatingPlan must
// report duplicates as an error rather than crash.
type ArtifactStore interface {
	ClearSeatingPlans(ctx context.Context) error
	CreateSeatingPlan(ctx context.Context, plan *model.SeatingPlan) (uint64, error)
}

// Engine orchestrates assignment runs.  Each run is a pure function over
// its student and room snapshots plus the persistence side effect; no
// mutable state is shared between calls.  The random source is injected
// so tests can supply a fixed seed and assert exact room permutations
// (cryptographic strength is not required for a seating randomizer).
type Engine struct {
	store ArtifactStore
	rng   *rand.Rand
	now   func() time.Time
}

// New constructs an Engine.  A nil rng falls back to a time-seeded source.
func New(store ArtifactStore, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{store: store, rng: rng, now: time.Now}
}

// RunSequential assigns students to rooms in the rooms' input order.  The
// globally sorted student list greedy-fills each room up to its capacity;
// there is no remainder distribution in this mode, so trailing rooms may
// stay empty or trailing students may remain unassigned when seats run
// out.  Plans carry a per-room "SAMPLE-<roomID>" exam code.
func (e *Engine) RunSequential(ctx context.Context, students []model.Student, rooms []model.Room) (*model.AssignmentResult, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms available for assignment", ErrInvalidConfiguration)
	}

	ordered := SortStudents(students)
	if err := e.store.ClearSeatingPlans(ctx); err != nil {
		return nil, fmt.Errorf("clear seating plans: %w", err)
	}

	examDate := e.now().UTC().Format("2006-01-02")
	blocks := cutSequential(ordered, rooms)
	assignments := make([]model.RoomAssignment, 0, len(rooms))
	assigned := 0

	for i, room := range rooms {
		block := blocks[i]
		code := "SAMPLE-" + strconv.FormatUint(room.ID, 10)
		plan := BuildSeatMap(room, block, sequentialColumns(room.Capacity), examDate, code)
		if e.persist(ctx, room, plan) {
			assigned += len(block)
		}
		assignments = append(assignments, roomAssignment(room, block))
	}

	return &model.AssignmentResult{
		Assignments: assignments,
		Stats: model.AssignmentStats{
			AssignedStudents: assigned,
			TotalStudents:    len(students),
			TotalRooms:       len(rooms),
			Source:           "sample",
		},
	}, nil
}

// RunShuffled randomly permutes the room order, then distributes the
// globally sorted student list across the permuted rooms as evenly as the
// capacity quotas allow.  Every room receives a contiguous block, so the
// roll-number sequence is preserved across room boundaries even though
// which room holds which block is randomized.  All plans of one run share
// a single "SHUFFLE_<timestamp>" exam code.
func (e *Engine) RunShuffled(ctx context.Context, students []model.Student, rooms []model.Room) (*model.AssignmentResult, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms available for assignment", ErrInvalidConfiguration)
	}

	ordered := SortStudents(students)

	shuffled := make([]model.Room, len(rooms))
	copy(shuffled, rooms)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	quotas, err := Allocate(len(ordered), shuffled)
	if err != nil {
		return nil, err
	}

	if err := e.store.ClearSeatingPlans(ctx); err != nil {
		return nil, fmt.Errorf("clear seating plans: %w", err)
	}

	now := e.now()
	examDate := now.UTC().Format("2006-01-02")
	code := shuffleExamCode(now)

	assignments := make([]model.RoomAssignment, 0, len(shuffled))
	assigned := 0
	idx := 0

	for i, room := range shuffled {
		take := quotas[i].FinalCount
		if remaining := len(ordered) - idx; take > remaining {
			take = remaining
		}
		block := ordered[idx : idx+take]
		idx += take

		plan := BuildSeatMap(room, block, shuffleColumns, examDate, code)
		if e.persist(ctx, room, plan) {
			assigned += len(block)
		}
		assignments = append(assignments, roomAssignment(room, block))
	}

	return &model.AssignmentResult{
		Assignments: assignments,
		Stats: model.AssignmentStats{
			AssignedStudents: assigned,
			TotalStudents:    len(students),
			TotalRooms:       len(rooms),
			Source:           "shuffle",
			ShuffleTimestamp: now.UTC().Format(time.RFC3339),
		},
	}, nil
}

// shuffleColumns is the fixed grid width used by shuffled runs.
const shuffleColumns = 5

// sequentialColumns derives the grid width for a sequential run the way
// the sample generator always has: ceil(capacity/5) columns, minimum one.
func sequentialColumns(capacity int) int {
	cols := (capacity + 4) / 5
	if cols < 1 {
		cols = 1
	}
	return cols
}

// shuffleExamCode builds the run-wide exam code from the millisecond
// timestamp, dropping the leading digits that stay constant for years so
// the code stays short enough for display.
func shuffleExamCode(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 5 {
		ms = ms[5:]
	}
	return "SHUFFLE_" + ms
}

// persist writes one room's plan and reports whether it succeeded.  A
// failure is logged and swallowed so the remaining rooms still get their
// plans; the caller accounts for the loss via the assigned counter.
func (e *Engine) persist(ctx context.Context, room model.Room, plan *model.SeatingPlan) bool {
	if _, err := e.store.CreateSeatingPlan(ctx, plan); err != nil {
		log.Printf("assign: persist plan for room %s %s failed: %v", room.Building, room.Number, err)
		return false
	}
	return true
}

func roomAssignment(room model.Room, block []model.Student) model.RoomAssignment {
	students := make([]model.AssignedStudent, 0, len(block))
	for _, st := range block {
		students = append(students, model.AssignedStudent{RollNo: st.RollNo, Name: st.Name})
	}
	return model.RoomAssignment{
		RoomID:   room.ID,
		Number:   room.Number,
		Building: room.Building,
		Capacity: room.Capacity,
		Students: students,
	}
}
