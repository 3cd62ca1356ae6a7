package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestUpdateTrackerTouchAndSnapshot(t *testing.T) {
	tr := NewUpdateTracker()
	if len(tr.Snapshot()) != 0 {
		t.Fatalf("fresh tracker should be empty")
	}
	tr.Touch("students")
	tr.Touch("seatingPlans")
	snap := tr.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snap))
	}
	if snap["students"] == "" || snap["seatingPlans"] == "" {
		t.Fatalf("snapshot missing touched entities: %v", snap)
	}
}

func TestLastModifiedReportsTouchedEntities(t *testing.T) {
	h := &AdminHandler{Tracker: NewUpdateTracker()}
	h.Tracker.Touch("rooms")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/last-modified", nil)
	rec := httptest.NewRecorder()
	if err := h.LastModified(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["timestamp"] == "" {
		t.Fatalf("response lacks the poll timestamp: %v", body)
	}
	if body["rooms"] == "" {
		t.Fatalf("touched entity missing from response: %v", body)
	}
}

func TestStudentBodyValidate(t *testing.T) {
	cases := []struct {
		body   studentBody
		wantOK bool
	}{
		{studentBody{RollNo: "AIDSU24001", Name: "A"}, true},
		{studentBody{RollNo: "  AIDSU24001  ", Name: " A "}, true},
		{studentBody{RollNo: "", Name: "A"}, false},
		{studentBody{RollNo: "AIDSU24001", Name: "   "}, false},
	}
	for i, c := range cases {
		if ok := c.body.validate() == ""; ok != c.wantOK {
			t.Fatalf("case %d: validate ok = %v, want %v", i, ok, c.wantOK)
		}
	}
}

func TestRoomBodyValidate(t *testing.T) {
	cases := []struct {
		body   roomBody
		wantOK bool
	}{
		{roomBody{Number: "104", Building: "Main", Capacity: 30}, true},
		{roomBody{Number: "", Building: "Main", Capacity: 30}, false},
		{roomBody{Number: "104", Building: "Main", Capacity: 0}, false},
		{roomBody{Number: "104", Building: "Main", Capacity: -5}, false},
	}
	for i, c := range cases {
		if ok := c.body.validate() == ""; ok != c.wantOK {
			t.Fatalf("case %d: validate ok = %v, want %v", i, ok, c.wantOK)
		}
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	newCtx := func(raw string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		return c
	}
	if id, ok := pathID(newCtx("42"), "id"); !ok || id != 42 {
		t.Fatalf("pathID(42) = %d, %v", id, ok)
	}
	for _, raw := range []string{"0", "-1", "abc", ""} {
		if _, ok := pathID(newCtx(raw), "id"); ok {
			t.Fatalf("pathID(%q) accepted", raw)
		}
	}
}
