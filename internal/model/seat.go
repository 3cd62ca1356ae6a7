package model

// Seat is a single position inside a seating plan's grid.  A seat either
// holds at most one student or is a teacher desk, never both.  Row and
// column are zero-based grid coordinates assigned by the seat map builder.
//
// Fields:
//  ID            – unique within the plan, format "seat-<roomID>-<index>".
//  Row           – zero-based row coordinate.
//  Col           – zero-based column coordinate.
//  StudentID     – occupying student's ID (0 when unoccupied).
//  RollNo        – occupying student's roll number ("" when unoccupied).
//  IsTeacherDesk – true for the teacher desk position; such a seat never
//                  holds a student.
type Seat struct {
	ID            string `json:"id"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
	StudentID     uint64 `json:"studentId,omitempty"`
	RollNo        string `json:"rollNo,omitempty"`
	IsTeacherDesk bool   `json:"isTeacherDesk"`
}
