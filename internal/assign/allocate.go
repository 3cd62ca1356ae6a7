package assign

import (
	"fmt"

	"github.com/anveshk/classroom-seating/internal/model"
)

// Quota records how many students one room receives in an evenly
// distributed run.  Rooms are referenced by their index in the (already
// ordered, post-shuffle) room slice handed to Allocate.
//
// FinalCount is min(Base+Extra, capacity); when a room's capacity clips
// its share below Base+Extra the shortfall is NOT redistributed to rooms
// with spare seats, so the sum of FinalCount can fall short of the total
// student count.
type Quota struct {
	RoomIndex  int
	Base       int
	Extra      int
	FinalCount int
}

// Allocate splits totalStudents across rooms as evenly as possible while
// preserving room order: every room gets floor(total/roomCount) students
// and the first (total mod roomCount) rooms absorb one extra each.  Each
// quota is clipped to the room's capacity and is never negative.
//
// An empty room slice returns ErrInvalidConfiguration; the division is
// guarded here rather than left to a runtime panic.
func Allocate(totalStudents int, rooms []model.Room) ([]Quota, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: cannot allocate students across zero rooms", ErrInvalidConfiguration)
	}
	if totalStudents < 0 {
		totalStudents = 0
	}

	base := totalStudents / len(rooms)
	remainder := totalStudents % len(rooms)

	quotas := make([]Quota, len(rooms))
	for i, room := range rooms {
		extra := 0
		if i < remainder {
			extra = 1
		}
		final := base + extra
		if final > room.Capacity {
			final = room.Capacity
		}
		if final < 0 {
			final = 0
		}
		quotas[i] = Quota{RoomIndex: i, Base: base, Extra: extra, FinalCount: final}
	}
	return quotas, nil
}
