package model

import "time"

// Room describes an examination room.  Rooms are uniquely identified by
// their number within a building and carry a fixed seating capacity that
// the assignment engine must never exceed.  Like students, rooms are
// immutable during an assignment run.
//
// Fields:
//  ID        – primary key identifier.
//  Number    – room number label (e.g. "104", "B-12").
//  Building  – building name the room belongs to.
//  Capacity  – number of student seats; always > 0 for a valid room.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
	ID        uint64    `json:"_id"`       // rooms.id
	Number    string    `json:"number"`    // rooms.number
	Building  string    `json:"building"`  // rooms.building
	Capacity  int       `json:"capacity"`  // rooms.capacity
	CreatedAt time.Time `json:"createdAt"` // rooms.created_at
	UpdatedAt time.Time `json:"updatedAt"` // rooms.updated_at
}
