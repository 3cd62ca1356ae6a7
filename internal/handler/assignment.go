package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anveshk/classroom-seating/internal/assign"
	"github.com/anveshk/classroom-seating/internal/model"
	"github.com/anveshk/classroom-seating/internal/queue"
	queue_publisher "github.com/anveshk/classroom-seating/internal/service"
)

// GenerateSample handles POST /v1/assignments/sample.  It runs the
// deterministic sequential assignment: rooms fill in registry order with
// the roll-number-sorted student list and prior plans are replaced.
func (h *AdminHandler) GenerateSample(c echo.Context) error {
	return h.runAssignment(c, func(ctx context.Context, students []model.Student, rooms []model.Room) (*model.AssignmentResult, error) {
		return h.Engine.RunSequential(ctx, students, rooms)
	})
}

// ShuffleClassrooms handles POST /v1/assignments/shuffle.  Room order is
// randomized while the roll-number sequence stays contiguous across room
// boundaries.
func (h *AdminHandler) ShuffleClassrooms(c echo.Context) error {
	return h.runAssignment(c, func(ctx context.Context, students []model.Student, rooms []model.Room) (*model.AssignmentResult, error) {
		return h.Engine.RunShuffled(ctx, students, rooms)
	})
}

// runAssignment loads the snapshots, delegates to the engine and maps the
// outcome onto HTTP.  Configuration problems are the caller's fault
// (400); a partial persistence failure is reported inside the 200 body
// via the stats block, per the engine's contract.
func (h *AdminHandler) runAssignment(c echo.Context, run func(context.Context, []model.Student, []model.Room) (*model.AssignmentResult, error)) error {
	ctx := c.Request().Context()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	students, err := h.Students.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	res, err := run(ctx, students, rooms)
	if err != nil {
		if errors.Is(err, assign.ErrInvalidConfiguration) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "assignment run failed"})
	}

	h.Tracker.Touch("seatingPlans")
	h.invalidate(c)
	h.publishCompleted(res)

	return c.JSON(http.StatusOK, res)
}

// publishCompleted emits the run event in the background; the broker
// being down never delays or fails the HTTP response.
func (h *AdminHandler) publishCompleted(res *model.AssignmentResult) {
	ev := queue.AssignmentCompletedEvent{
		Source:           res.Stats.Source,
		ExamDate:         time.Now().UTC().Format("2006-01-02"),
		AssignedStudents: res.Stats.AssignedStudents,
		TotalStudents:    res.Stats.TotalStudents,
		TotalRooms:       res.Stats.TotalRooms,
		CompletedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := queue_publisher.PublishAssignmentCompleted(ctx, h.AMQPURL, ev); err != nil {
			log.Printf("assignment: publish completed event failed: %v", err)
		}
	}()
}

// ListAssignments handles GET /v1/assignments.  When a shuffled run has
// been persisted its plans are the source of truth; otherwise the
// endpoint answers with a non-persisted sequential preview so the admin
// screen always has something to show.
func (h *AdminHandler) ListAssignments(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := h.Plans.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var shuffled []model.SeatingPlan
	for _, p := range plans {
		if strings.HasPrefix(p.ExamCode, "SHUFFLE_") {
			shuffled = append(shuffled, p)
		}
	}

	if len(shuffled) > 0 {
		res, err := h.assignmentsFromPlans(ctx, shuffled)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return c.JSON(http.StatusOK, res)
	}

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	students, err := h.Students.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, assign.PreviewSequential(students, rooms))
}

// assignmentsFromPlans reconstructs room assignments out of stored
// seating plans.  Plans only persist roll numbers, so display names are
// joined back in from the student registry; a roll number that no longer
// resolves falls back to itself.
func (h *AdminHandler) assignmentsFromPlans(ctx context.Context, plans []model.SeatingPlan) (*model.AssignmentResult, error) {
	students, err := h.Students.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(students))
	for _, s := range students {
		names[s.RollNo] = s.Name
	}

	assignments := make([]model.RoomAssignment, 0, len(plans))
	assigned := 0
	for _, p := range plans {
		a := model.RoomAssignment{
			RoomID:   p.RoomID,
			Number:   p.RoomNumber,
			Building: p.Building,
			Capacity: p.Capacity,
			Students: []model.AssignedStudent{},
		}
		for _, seat := range p.Seats {
			if seat.RollNo == "" || seat.IsTeacherDesk {
				continue
			}
			name := names[seat.RollNo]
			if name == "" {
				name = seat.RollNo
			}
			a.Students = append(a.Students, model.AssignedStudent{RollNo: seat.RollNo, Name: name})
		}
		assigned += len(a.Students)
		assignments = append(assignments, a)
	}

	return &model.AssignmentResult{
		Assignments: assignments,
		Stats: model.AssignmentStats{
			AssignedStudents: assigned,
			TotalStudents:    assigned,
			TotalRooms:       len(assignments),
			Source:           "shuffled_plans",
		},
	}, nil
}
