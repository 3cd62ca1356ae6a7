package model

// AssignedStudent is the (rollNo, name) pair reported for each student
// placed in a room.  It is the wire shape consumed by the roll-assignment
// table in the admin UI.
type AssignedStudent struct {
	RollNo string `json:"rollNo"`
	Name   string `json:"name"`
}

// RoomAssignment lists the students placed into one room by a run.
type RoomAssignment struct {
	RoomID   uint64            `json:"_id"`
	Number   string            `json:"number"`
	Building string            `json:"building"`
	Capacity int               `json:"capacity"`
	Students []AssignedStudent `json:"students"`
}

// AssignmentStats summarizes one assignment run.  AssignedStudents counts
// only students whose room's plan was actually persisted, so callers can
// detect partial persistence failure by comparing it with TotalStudents.
type AssignmentStats struct {
	AssignedStudents int    `json:"assigned_students"`
	TotalStudents    int    `json:"total_students"`
	TotalRooms       int    `json:"total_rooms"`
	Source           string `json:"source"`
	ShuffleTimestamp string `json:"shuffle_timestamp,omitempty"`
}

// AssignmentResult is the aggregate returned to the caller after a run.
// It is returned over HTTP as-is and is not itself persisted; the durable
// artifacts are the per-room seating plans.
type AssignmentResult struct {
	Assignments []RoomAssignment `json:"assignments"`
	Stats       AssignmentStats  `json:"stats"`
}
