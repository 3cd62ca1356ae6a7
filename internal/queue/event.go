// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records completed runs.
package queue

// AssignmentCompletedEvent is published after an assignment run finishes.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type AssignmentCompletedEvent struct {
	Source           string `json:"source"` // "sample" or "shuffle"
	ExamDate         string `json:"exam_date"`
	AssignedStudents int    `json:"assigned_students"`
	TotalStudents    int    `json:"total_students"`
	TotalRooms       int    `json:"total_rooms"`
	CompletedAt      string `json:"completed_at"`
}
