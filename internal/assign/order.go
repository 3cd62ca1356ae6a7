package assign

import (
	"math"
	"sort"
	"strconv"

	"github.com/anveshk/classroom-seating/internal/model"
)

// OrderKey derives the integer a roll number sorts by.  All contiguous
// digit runs are concatenated in order of appearance and parsed base-10,
// so "AIDSU24001" keys to 24001 and "A1B2" keys to 12.  An identifier
// with no digits at all keys to 0; malformed input never fails, it just
// degrades to 0 as well.
func OrderKey(rollNo string) uint64 {
	digits := make([]byte, 0, len(rollNo))
	for i := 0; i < len(rollNo); i++ {
		if rollNo[i] >= '0' && rollNo[i] <= '9' {
			digits = append(digits, rollNo[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		// The only way ParseUint fails on a pure digit string is range
		// overflow; saturate so oversized identifiers sort last rather
		// than collapsing onto key 0.
		return math.MaxUint64
	}
	return n
}

// SortStudents returns a copy of students ordered ascending by roll-number
// key.  The sort is stable: students sharing a key keep their relative
// order from the input slice, which keeps repeated runs deterministic.
func SortStudents(students []model.Student) []model.Student {
	out := make([]model.Student, len(students))
	copy(out, students)
	sort.SliceStable(out, func(i, j int) bool {
		return OrderKey(out[i].RollNo) < OrderKey(out[j].RollNo)
	})
	return out
}
