package assign

import (
	"fmt"

	"github.com/anveshk/classroom-seating/internal/model"
)

// BuildSeatMap lays the given student block out in a row/column grid for
// one room and returns the seating plan artifact.  Student i sits at
// row i/columns, column i%columns.  The grid always spans
// ceil(capacity/columns) rows regardless of how many seats end up
// occupied, so an empty room still renders with its full outline.
//
// The block is expected to be the capacity-bounded slice already cut for
// this room; if it is longer than the room's capacity the surplus is
// dropped so the plan never holds more students than seats.
func BuildSeatMap(room model.Room, block []model.Student, columns int, examDate, examCode string) *model.SeatingPlan {
	if columns < 1 {
		columns = 1
	}
	if room.Capacity >= 0 && len(block) > room.Capacity {
		block = block[:room.Capacity]
	}

	rows := (room.Capacity + columns - 1) / columns

	seats := make([]model.Seat, 0, len(block))
	for i, st := range block {
		seats = append(seats, model.Seat{
			ID:        fmt.Sprintf("seat-%d-%d", room.ID, i),
			Row:       i / columns,
			Col:       i % columns,
			StudentID: st.ID,
			RollNo:    st.RollNo,
		})
	}

	return &model.SeatingPlan{
		RoomID:     room.ID,
		Building:   room.Building,
		RoomNumber: room.Number,
		Capacity:   room.Capacity,
		Rows:       rows,
		Columns:    columns,
		Seats:      seats,
		ExamDate:   examDate,
		ExamCode:   examCode,
	}
}
