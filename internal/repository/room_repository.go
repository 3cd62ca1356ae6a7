package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anveshk/classroom-seating/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides access to the examination room registry.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomColumns = `id, number, building, capacity, created_at, updated_at`

// List returns all rooms ordered by building then number.  This is the
// input order sequential assignment runs fill rooms in.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY building, number`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var m model.Room
		if err := rows.Scan(&m.ID, &m.Number, &m.Building, &m.Capacity, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetByID retrieves one room, returning ErrRoomNotFound when no row
// matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	var m model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Number, &m.Building, &m.Capacity, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetByNumberAndBuilding looks a room up by its natural key.  Used as the
// duplicate guard before creating a room.
func (r *RoomRepo) GetByNumberAndBuilding(ctx context.Context, number, building string) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE number = ? AND building = ?`
	var m model.Room
	err := r.db.QueryRowContext(ctx, q, number, building).Scan(&m.ID, &m.Number, &m.Building, &m.Capacity, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a new room and fills in the generated ID.
func (r *RoomRepo) Create(ctx context.Context, m *model.Room) error {
	const q = `INSERT INTO rooms (number, building, capacity) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Number, m.Building, m.Capacity)
	if err != nil {
		return mapDuplicate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update rewrites a room's fields.  Returns ErrRoomNotFound when the row
// does not exist.
func (r *RoomRepo) Update(ctx context.Context, m *model.Room) error {
	const q = `UPDATE rooms
	           SET number = ?, building = ?, capacity = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Number, m.Building, m.Capacity, m.ID)
	if err != nil {
		return mapDuplicate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes one room.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Clear removes every room.
func (r *RoomRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms`)
	return err
}
