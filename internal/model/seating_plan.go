package model

import "time"

// SeatingPlan is the persisted artifact describing one room's seat layout
// for one assignment run.  Plans are created once per room per run and are
// never mutated afterwards; a new run supersedes old plans by clearing them
// before writing fresh ones.
//
// ExamCode correlates every plan belonging to the same run: deterministic
// runs use "SAMPLE-<roomID>" and randomized runs share one
// "SHUFFLE_<timestamp>" code across all rooms of the run.
//
// Fields:
//  ID         – storage identifier, set on read; zero before persistence.
//  RoomID     – room this plan lays out.
//  Building   – room's building name, denormalized for display.
//  RoomNumber – room's number label, denormalized for display.
//  Capacity   – room capacity at the time of the run.
//  Rows       – number of grid rows.
//  Columns    – number of grid columns.
//  Seats      – occupied seats in grid order.
//  ExamDate   – run date in YYYY-MM-DD form.
//  ExamCode   – run correlation key, see above.
//  CreatedAt  – storage timestamp, set on read.
type SeatingPlan struct {
	ID         uint64    `json:"_id,omitempty"`
	RoomID     uint64    `json:"roomId"`
	Building   string    `json:"building"`
	RoomNumber string    `json:"roomNumber"`
	Capacity   int       `json:"capacity"`
	Rows       int       `json:"rows"`
	Columns    int       `json:"columns"`
	Seats      []Seat    `json:"seats"`
	ExamDate   string    `json:"examDate"`
	ExamCode   string    `json:"examCode"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// OccupiedCount returns how many seats in the plan hold a student.  Teacher
// desks and empty positions are not counted.
func (p *SeatingPlan) OccupiedCount() int {
	n := 0
	for _, s := range p.Seats {
		if s.RollNo != "" && !s.IsTeacherDesk {
			n++
		}
	}
	return n
}
