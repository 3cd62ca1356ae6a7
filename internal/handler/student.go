package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/anveshk/classroom-seating/internal/model"
	"github.com/anveshk/classroom-seating/internal/repository"
)

// ListStudents handles GET /v1/students.
func (h *AdminHandler) ListStudents(c echo.Context) error {
	students, err := h.Students.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if students == nil {
		students = []model.Student{}
	}
	return c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /v1/students/:id.
func (h *AdminHandler) GetStudent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Students.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, s)
}

type studentBody struct {
	RollNo  string  `json:"rollNo"`
	Name    string  `json:"name"`
	Section string  `json:"section"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

func (b *studentBody) validate() string {
	b.RollNo = strings.TrimSpace(b.RollNo)
	b.Name = strings.TrimSpace(b.Name)
	b.Section = strings.TrimSpace(b.Section)
	if b.RollNo == "" || b.Name == "" {
		return "rollNo and name are required"
	}
	return ""
}

// CreateStudent handles POST /v1/students.
func (h *AdminHandler) CreateStudent(c echo.Context) error {
	var body studentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	s := &model.Student{RollNo: body.RollNo, Name: body.Name, Section: body.Section, Email: body.Email, Phone: body.Phone}
	if err := h.Students.Create(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "student with this roll number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create student"})
	}
	h.Tracker.Touch("students")
	h.invalidate(c)
	return c.JSON(http.StatusCreated, s)
}

// UpdateStudent handles PUT /v1/students/:id.
func (h *AdminHandler) UpdateStudent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body studentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	s := &model.Student{ID: id, RollNo: body.RollNo, Name: body.Name, Section: body.Section, Email: body.Email, Phone: body.Phone}
	if err := h.Students.Update(c.Request().Context(), s); err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		case errors.Is(err, repository.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "student with this roll number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update student"})
	}
	h.Tracker.Touch("students")
	h.invalidate(c)
	return c.JSON(http.StatusOK, s)
}

// DeleteStudent handles DELETE /v1/students/:id.
func (h *AdminHandler) DeleteStudent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Students.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete student"})
	}
	h.Tracker.Touch("students")
	h.invalidate(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "student deleted"})
}

// ImportStudents handles POST /v1/students/import.  The body is a CSV
// document with a header row; recognized columns are rollNo, name,
// section, email and phone in any order.  The whole batch is inserted in
// one transaction so a bad row imports nothing.  With ?replace=true the
// registry is cleared first, making the import a full replacement.
func (h *AdminHandler) ImportStudents(c echo.Context) error {
	reader := csv.NewReader(c.Request().Body)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing csv header"})
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols["rollNo"]; !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "csv header must include rollNo"})
	}

	field := func(rec []string, name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	var students []model.Student
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed csv: " + err.Error()})
		}
		s := model.Student{
			RollNo:  field(rec, "rollNo"),
			Name:    field(rec, "name"),
			Section: field(rec, "section"),
		}
		if s.RollNo == "" {
			continue // skip blank lines
		}
		if v := field(rec, "email"); v != "" {
			s.Email = &v
		}
		if v := field(rec, "phone"); v != "" {
			s.Phone = &v
		}
		students = append(students, s)
	}

	ctx := c.Request().Context()
	if c.QueryParam("replace") == "true" {
		if err := h.Students.Clear(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not clear students"})
		}
	}
	if err := h.Students.CreateBulk(ctx, students); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "import contains an existing roll number"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "import failed"})
	}
	h.Tracker.Touch("students")
	h.invalidate(c)
	return c.JSON(http.StatusCreated, echo.Map{"imported": len(students)})
}
