package model

import "time"

// Student is one row of the student registry.  The roll number is an
// alphanumeric identifier with an embedded numeric sequence (for example
// "AIDSU24001") and is what the assignment engine orders students by.
// Students are immutable for the duration of an assignment run; the engine
// only ever reads a snapshot of this registry.
//
// Fields:
//  ID        – primary key identifier.
//  RollNo    – unique roll number string.
//  Name      – display name.
//  Section   – section label (e.g. "A", "CSE-2").
//  Email     – optional contact email.
//  Phone     – optional contact phone.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Student struct {
	ID        uint64    `json:"_id"`             // students.id
	RollNo    string    `json:"rollNo"`          // students.roll_no
	Name      string    `json:"name"`            // students.name
	Section   string    `json:"section"`         // students.section
	Email     *string   `json:"email,omitempty"` // students.email (nullable)
	Phone     *string   `json:"phone,omitempty"` // students.phone (nullable)
	CreatedAt time.Time `json:"createdAt"`       // students.created_at
	UpdatedAt time.Time `json:"updatedAt"`       // students.updated_at
}
