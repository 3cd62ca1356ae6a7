package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"

	"github.com/anveshk/classroom-seating/internal/model"
)

// ErrPlanNotFound is returned when a seating plan lookup fails.
var ErrPlanNotFound = errors.New("seating plan not found")

// SeatingPlanRepo stores seating plan artifacts.  The grid itself lives
// in a JSON column; the exam date and code are kept as real columns so
// the plans of one run can be looked up together.  A shuffled run writes
// one row per room under the same (examDate, examCode) pair, so that
// pair is indexed but deliberately not unique.  The plan is
// serialized exactly once here, at the persistence boundary, and
// deserialized exactly once on read; no nested re-wrapping happens
// anywhere else.
//
// SeatingPlanRepo implements assign.ArtifactStore.
type SeatingPlanRepo struct {
	db *sql.DB
}

// NewSeatingPlanRepo constructs a SeatingPlanRepo with the given DB handle.
func NewSeatingPlanRepo(db *sql.DB) *SeatingPlanRepo {
	return &SeatingPlanRepo{db: db}
}

// planData is the JSON document stored per plan.  It mirrors
// model.SeatingPlan minus the columns that live beside it.
type planData struct {
	RoomID     uint64       `json:"roomId"`
	Building   string       `json:"building"`
	RoomNumber string       `json:"roomNumber"`
	Capacity   int          `json:"capacity"`
	Rows       int          `json:"rows"`
	Columns    int          `json:"columns"`
	Seats      []model.Seat `json:"seats"`
}

// CreateSeatingPlan persists one room's plan and returns the generated
// row ID.  A (examDate, examCode) collision comes back as ErrDuplicate so
// callers can report it instead of crashing.
func (r *SeatingPlanRepo) CreateSeatingPlan(ctx context.Context, plan *model.SeatingPlan) (uint64, error) {
	doc, err := json.Marshal(planData{
		RoomID:     plan.RoomID,
		Building:   plan.Building,
		RoomNumber: plan.RoomNumber,
		Capacity:   plan.Capacity,
		Rows:       plan.Rows,
		Columns:    plan.Columns,
		Seats:      plan.Seats,
	})
	if err != nil {
		return 0, fmt.Errorf("marshal plan data: %w", err)
	}
	const q = `INSERT INTO seating_plans (plan_data, exam_date, exam_code) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, doc, plan.ExamDate, plan.ExamCode)
	if err != nil {
		return 0, mapDuplicate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	plan.ID = uint64(id)
	return plan.ID, nil
}

// ClearSeatingPlans removes every stored plan.  Runs call this before
// writing a fresh set, giving full-replacement semantics.
func (r *SeatingPlanRepo) ClearSeatingPlans(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM seating_plans`)
	return err
}

// List returns all stored plans, newest first.  A row whose JSON document
// fails to decode is logged and skipped rather than sinking the whole
// listing.
func (r *SeatingPlanRepo) List(ctx context.Context) ([]model.SeatingPlan, error) {
	const q = `SELECT id, plan_data, exam_date, exam_code, created_at
	           FROM seating_plans ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeatingPlan
	for rows.Next() {
		var (
			p   model.SeatingPlan
			doc []byte
		)
		if err := rows.Scan(&p.ID, &doc, &p.ExamDate, &p.ExamCode, &p.CreatedAt); err != nil {
			return nil, err
		}
		var data planData
		if err := json.Unmarshal(doc, &data); err != nil {
			log.Printf("seating plans: skipping undecodable plan %d: %v", p.ID, err)
			continue
		}
		p.RoomID = data.RoomID
		p.Building = data.Building
		p.RoomNumber = data.RoomNumber
		p.Capacity = data.Capacity
		p.Rows = data.Rows
		p.Columns = data.Columns
		p.Seats = data.Seats
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes one plan by row ID.
func (r *SeatingPlanRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seating_plans WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// mapDuplicate converts a MySQL duplicate-key error (1062) into the
// package sentinel and passes everything else through.
func mapDuplicate(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return fmt.Errorf("%w: %s", ErrDuplicate, me.Message)
	}
	return err
}
