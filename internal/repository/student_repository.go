package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anveshk/classroom-seating/internal/model"
)

// ErrStudentNotFound is returned when a student lookup fails.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepo provides access to the student registry.  The assignment
// engine only ever reads snapshots produced by List; the mutating methods
// back the admin CRUD screens and the CSV import.
type StudentRepo struct {
	db *sql.DB
}

// NewStudentRepo constructs a StudentRepo with the given DB handle.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

const studentColumns = `id, roll_no, name, section, email, phone, created_at, updated_at`

// List returns every student ordered by roll number.  The engine re-sorts
// by derived order key, so the SQL ordering here only serves stable
// display in the admin screens.
func (r *StudentRepo) List(ctx context.Context) ([]model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM students ORDER BY roll_no`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID retrieves one student, returning ErrStudentNotFound when no row
// matches.
func (r *StudentRepo) GetByID(ctx context.Context, id uint64) (*model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM students WHERE id = ?`
	s, err := scanStudent(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student and fills in the generated ID.  A roll
// number collision is reported as ErrDuplicate.
func (r *StudentRepo) Create(ctx context.Context, s *model.Student) error {
	const q = `INSERT INTO students (roll_no, name, section, email, phone) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.RollNo, s.Name, s.Section, nullable(s.Email), nullable(s.Phone))
	if err != nil {
		return mapDuplicate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// CreateBulk inserts many students inside one transaction.  It backs the
// CSV import path; a failure anywhere rolls the whole batch back.
func (r *StudentRepo) CreateBulk(ctx context.Context, students []model.Student) error {
	if len(students) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	const q = `INSERT INTO students (roll_no, name, section, email, phone) VALUES (?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, s := range students {
		if _, err := stmt.ExecContext(ctx, s.RollNo, s.Name, s.Section, nullable(s.Email), nullable(s.Phone)); err != nil {
			_ = tx.Rollback()
			return mapDuplicate(err)
		}
	}
	return tx.Commit()
}

// Update rewrites the mutable fields of a student.  Returns
// ErrStudentNotFound when the row does not exist.
func (r *StudentRepo) Update(ctx context.Context, s *model.Student) error {
	const q = `UPDATE students
	           SET roll_no = ?, name = ?, section = ?, email = ?, phone = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.RollNo, s.Name, s.Section, nullable(s.Email), nullable(s.Phone), s.ID)
	if err != nil {
		return mapDuplicate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes one student.
func (r *StudentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Clear removes every student, used before a full CSV re-import.
func (r *StudentRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM students`)
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(sc scanner) (model.Student, error) {
	var (
		s            model.Student
		email, phone sql.NullString
	)
	if err := sc.Scan(&s.ID, &s.RollNo, &s.Name, &s.Section, &email, &phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return model.Student{}, err
	}
	if email.Valid {
		s.Email = &email.String
	}
	if phone.Valid {
		s.Phone = &phone.String
	}
	return s, nil
}

func nullable(p *string) sql.NullString {
	if p == nil || *p == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
