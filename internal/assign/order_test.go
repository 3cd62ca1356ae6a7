package assign

import (
	"math"
	"testing"

	"github.com/anveshk/classroom-seating/internal/model"
)

func TestOrderKey(t *testing.T) {
	cases := []struct {
		rollNo string
		want   uint64
	}{
		{"AIDSU24001", 24001},
		{"A1B2", 12},
		{"NODIGITS", 0},
		{"", 0},
		{"  --!!", 0},
		{"X007", 7},
		{"99999999999999999999999999", math.MaxUint64},
	}
	for _, c := range cases {
		if got := OrderKey(c.rollNo); got != c.want {
			t.Fatalf("OrderKey(%q) = %d, want %d", c.rollNo, got, c.want)
		}
	}
}

func TestSortStudentsOrdersByKey(t *testing.T) {
	in := []model.Student{
		{RollNo: "AIDSU24010"},
		{RollNo: "AIDSU24002"},
		{RollNo: "AIDSU24001"},
	}
	out := SortStudents(in)
	want := []string{"AIDSU24001", "AIDSU24002", "AIDSU24010"}
	for i, w := range want {
		if out[i].RollNo != w {
			t.Fatalf("position %d: got %s, want %s", i, out[i].RollNo, w)
		}
	}
	// input slice must be untouched
	if in[0].RollNo != "AIDSU24010" {
		t.Fatalf("SortStudents mutated its input")
	}
}

func TestSortStudentsStableOnTies(t *testing.T) {
	// all four key to 0, so input order must survive, run after run
	in := []model.Student{
		{ID: 1, RollNo: "AAA"},
		{ID: 2, RollNo: ""},
		{ID: 3, RollNo: "BBB"},
		{ID: 4, RollNo: "---"},
	}
	for run := 0; run < 5; run++ {
		out := SortStudents(in)
		for i := range in {
			if out[i].ID != in[i].ID {
				t.Fatalf("run %d: tie order changed at %d: got id %d, want %d", run, i, out[i].ID, in[i].ID)
			}
		}
	}
}
