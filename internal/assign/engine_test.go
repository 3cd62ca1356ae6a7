package assign

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/anveshk/classroom-seating/internal/model"
)

// fakeStore is an in-memory ArtifactStore.  Setting failRoomID makes
// CreateSeatingPlan reject that room's plan to exercise the
// partial-failure path.
type fakeStore struct {
	plans      []*model.SeatingPlan
	clearCalls int
	failRoomID uint64
}

func (f *fakeStore) ClearSeatingPlans(ctx context.Context) error {
	f.clearCalls++
	f.plans = nil
	return nil
}

func (f *fakeStore) CreateSeatingPlan(ctx context.Context, plan *model.SeatingPlan) (uint64, error) {
	if f.failRoomID != 0 && plan.RoomID == f.failRoomID {
		return 0, fmt.Errorf("simulated write failure for room %d", plan.RoomID)
	}
	cp := *plan
	f.plans = append(f.plans, &cp)
	return uint64(len(f.plans)), nil
}

func makeStudents(n int) []model.Student {
	out := make([]model.Student, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Student{
			ID:     uint64(i),
			RollNo: fmt.Sprintf("AIDSU24%03d", i),
			Name:   fmt.Sprintf("Student %d", i),
		})
	}
	return out
}

func newTestEngine(store ArtifactStore, seed int64) *Engine {
	e := New(store, rand.New(rand.NewSource(seed)))
	e.now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }
	return e
}

func TestRunSequentialGreedyFill(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 1)
	rooms := []model.Room{{ID: 1, Capacity: 2}, {ID: 2, Capacity: 3}}

	res, err := e.RunSequential(context.Background(), makeStudents(4), rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rolls(res.Assignments[0]); got != "AIDSU24001,AIDSU24002" {
		t.Fatalf("room 1 students = %s", got)
	}
	if got := rolls(res.Assignments[1]); got != "AIDSU24003,AIDSU24004" {
		t.Fatalf("room 2 students = %s", got)
	}
	if res.Stats.AssignedStudents != 4 || res.Stats.TotalStudents != 4 {
		t.Fatalf("stats = %+v", res.Stats)
	}
}

func TestRunSequentialTruncatesWhenSeatsRunOut(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 1)
	rooms := []model.Room{{ID: 1, Capacity: 2}, {ID: 2, Capacity: 3}}

	res, err := e.RunSequential(context.Background(), makeStudents(6), rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// five seats total: student 6 stays unassigned
	if got := rolls(res.Assignments[1]); got != "AIDSU24003,AIDSU24004,AIDSU24005" {
		t.Fatalf("room 2 students = %s", got)
	}
	if res.Stats.AssignedStudents != 5 || res.Stats.TotalStudents != 6 {
		t.Fatalf("stats = %+v", res.Stats)
	}
}

func TestRunSequentialZeroRooms(t *testing.T) {
	e := newTestEngine(&fakeStore{}, 1)
	if _, err := e.RunSequential(context.Background(), makeStudents(3), nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestRunSequentialZeroStudents(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 1)
	rooms := []model.Room{{ID: 1, Capacity: 5}, {ID: 2, Capacity: 5}}

	res, err := e.RunSequential(context.Background(), nil, rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stats.AssignedStudents != 0 {
		t.Fatalf("assigned = %d, want 0", res.Stats.AssignedStudents)
	}
	if len(store.plans) != 2 {
		t.Fatalf("persisted %d plans, want one empty plan per room", len(store.plans))
	}
	for _, p := range store.plans {
		if p.OccupiedCount() != 0 {
			t.Fatalf("room %d plan has %d occupied seats, want 0", p.RoomID, p.OccupiedCount())
		}
	}
}

func TestRunSequentialClearsBeforeEachRun(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 1)
	rooms := []model.Room{{ID: 1, Capacity: 10}}
	students := makeStudents(3)

	first, err := e.RunSequential(context.Background(), students, rooms)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := e.RunSequential(context.Background(), students, rooms)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if store.clearCalls != 2 {
		t.Fatalf("clear called %d times, want 2", store.clearCalls)
	}
	if len(store.plans) != 1 {
		t.Fatalf("store holds %d plans after rerun, want 1", len(store.plans))
	}
	if rolls(first.Assignments[0]) != rolls(second.Assignments[0]) || first.Stats != second.Stats {
		t.Fatalf("reruns differ: %+v vs %+v", first, second)
	}
}

func TestRunShuffledEvenDistribution(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 42)
	rooms := []model.Room{
		{ID: 1, Number: "101", Capacity: 10},
		{ID: 2, Number: "102", Capacity: 10},
		{ID: 3, Number: "103", Capacity: 10},
	}

	res, err := e.RunShuffled(context.Background(), makeStudents(7), rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := make([]int, len(res.Assignments))
	total := 0
	for i, a := range res.Assignments {
		counts[i] = len(a.Students)
		total += counts[i]
	}
	// base 2 remainder 1: first room in shuffled order takes 3
	if counts[0] != 3 || counts[1] != 2 || counts[2] != 2 {
		t.Fatalf("per-room counts = %v, want [3 2 2]", counts)
	}
	if total != 7 || res.Stats.AssignedStudents != 7 {
		t.Fatalf("seated %d, stats %+v", total, res.Stats)
	}
}

func TestRunShuffledPreservesRollSequence(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 7)
	rooms := []model.Room{
		{ID: 1, Capacity: 4},
		{ID: 2, Capacity: 4},
		{ID: 3, Capacity: 4},
	}

	res, err := e.RunShuffled(context.Background(), makeStudents(10), rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// concatenating blocks in shuffled room order must reproduce the
	// sorted roll sequence exactly: blocks are contiguous
	var concat []string
	for _, a := range res.Assignments {
		for _, s := range a.Students {
			concat = append(concat, s.RollNo)
		}
	}
	for i := 1; i < len(concat); i++ {
		if OrderKey(concat[i-1]) >= OrderKey(concat[i]) {
			t.Fatalf("sequence broken at %d: %s then %s", i, concat[i-1], concat[i])
		}
	}
}

func TestRunShuffledDeterministicWithFixedSeed(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Number: "101", Capacity: 10},
		{ID: 2, Number: "102", Capacity: 10},
		{ID: 3, Number: "103", Capacity: 10},
	}
	runOnce := func() []uint64 {
		e := newTestEngine(&fakeStore{}, 99)
		res, err := e.RunShuffled(context.Background(), makeStudents(6), rooms)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		order := make([]uint64, 0, len(res.Assignments))
		for _, a := range res.Assignments {
			order = append(order, a.RoomID)
		}
		return order
	}
	first, second := runOnce(), runOnce()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different room orders: %v vs %v", first, second)
		}
	}
}

func TestRunShuffledSharedExamCode(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, 3)
	rooms := []model.Room{{ID: 1, Capacity: 5}, {ID: 2, Capacity: 5}}

	if _, err := e.RunShuffled(context.Background(), makeStudents(4), rooms); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.plans) != 2 {
		t.Fatalf("persisted %d plans, want 2", len(store.plans))
	}
	code := store.plans[0].ExamCode
	if !strings.HasPrefix(code, "SHUFFLE_") {
		t.Fatalf("exam code %q lacks SHUFFLE_ prefix", code)
	}
	if store.plans[1].ExamCode != code {
		t.Fatalf("plans carry different exam codes: %q vs %q", code, store.plans[1].ExamCode)
	}
}

func TestRunShuffledPartialPersistenceFailure(t *testing.T) {
	store := &fakeStore{failRoomID: 2}
	e := newTestEngine(store, 5)
	rooms := []model.Room{
		{ID: 1, Capacity: 10},
		{ID: 2, Capacity: 10},
		{ID: 3, Capacity: 10},
	}

	res, err := e.RunShuffled(context.Background(), makeStudents(9), rooms)
	if err != nil {
		t.Fatalf("run must not fail on a per-room persistence error: %v", err)
	}
	lost := 0
	for _, a := range res.Assignments {
		if a.RoomID == 2 {
			lost = len(a.Students)
		}
	}
	if lost != 3 {
		t.Fatalf("room 2 block = %d students, want 3", lost)
	}
	if res.Stats.AssignedStudents != 6 {
		t.Fatalf("assigned = %d, want 9 minus the failed room's 3", res.Stats.AssignedStudents)
	}
	if res.Stats.TotalStudents != 9 {
		t.Fatalf("total = %d, want 9", res.Stats.TotalStudents)
	}
}

func TestRunSequentialPartialPersistenceFailure(t *testing.T) {
	store := &fakeStore{failRoomID: 2}
	e := newTestEngine(store, 5)
	rooms := []model.Room{
		{ID: 1, Capacity: 2},
		{ID: 2, Capacity: 3},
		{ID: 3, Capacity: 2},
	}

	res, err := e.RunSequential(context.Background(), makeStudents(6), rooms)
	if err != nil {
		t.Fatalf("run must not fail on a per-room persistence error: %v", err)
	}
	// greedy fill: room 1 takes 2, room 2 takes 3 (write rejected), room 3
	// takes the last student
	if got := rolls(res.Assignments[1]); got != "AIDSU24003,AIDSU24004,AIDSU24005" {
		t.Fatalf("room 2 block = %s", got)
	}
	if res.Stats.AssignedStudents != 3 {
		t.Fatalf("assigned = %d, want 6 minus the failed room's 3", res.Stats.AssignedStudents)
	}
	if res.Stats.TotalStudents != 6 {
		t.Fatalf("total = %d, want 6", res.Stats.TotalStudents)
	}
	if len(store.plans) != 2 {
		t.Fatalf("persisted %d plans, want 2 surviving rooms", len(store.plans))
	}
}

func rolls(a model.RoomAssignment) string {
	out := make([]string, 0, len(a.Students))
	for _, s := range a.Students {
		out = append(out, s.RollNo)
	}
	return strings.Join(out, ",")
}
