package assign

import "github.com/anveshk/classroom-seating/internal/model"

// cutSequential slices the ordered student list into per-room blocks in
// room input order: each room takes the next min(capacity, remaining)
// students.  Rooms past the last student get empty blocks; students past
// the last seat stay uncut.
func cutSequential(ordered []model.Student, rooms []model.Room) [][]model.Student {
	blocks := make([][]model.Student, 0, len(rooms))
	idx := 0
	for _, room := range rooms {
		take := room.Capacity
		if remaining := len(ordered) - idx; take > remaining {
			take = remaining
		}
		if take < 0 {
			take = 0
		}
		blocks = append(blocks, ordered[idx:idx+take])
		idx += take
	}
	return blocks
}

// PreviewSequential computes a sequential assignment without touching
// storage.  The read-side listing endpoint uses it to answer when no
// persisted run exists yet; the result is identical to what
// RunSequential would report, minus the seating plan side effects.
func PreviewSequential(students []model.Student, rooms []model.Room) *model.AssignmentResult {
	ordered := SortStudents(students)
	blocks := cutSequential(ordered, rooms)

	assignments := make([]model.RoomAssignment, 0, len(rooms))
	assigned := 0
	for i, room := range rooms {
		assignments = append(assignments, roomAssignment(room, blocks[i]))
		assigned += len(blocks[i])
	}
	return &model.AssignmentResult{
		Assignments: assignments,
		Stats: model.AssignmentStats{
			AssignedStudents: assigned,
			TotalStudents:    len(students),
			TotalRooms:       len(rooms),
			Source:           "generated",
		},
	}
}
