package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrLaundromatNotFound is returned when no laundromat row matches the
// given id.
var ErrLaundromatNotFound = errors.New("laundromat not found")

// LaundromatRepo provides CRUD operations for laundromats. The machine
// count exposed on listings is derived with a LEFT JOIN at query time,
// never stored on the laundromat row.
type LaundromatRepo struct{ DB *sql.DB }

func NewLaundromatRepo(db *sql.DB) *LaundromatRepo { return &LaundromatRepo{DB: db} }

// LaundromatDetail is a laundromat row augmented with its derived
// machine count, as returned to clients.
type LaundromatDetail struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Photo        *string   `json:"photo"`
	Highlighted  bool      `json:"highlighted"`
	MachineCount int       `json:"machine_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// List returns all laundromats with their machine counts, highlighted
// units first, then by name.
func (r *LaundromatRepo) List(ctx context.Context) ([]LaundromatDetail, error) {
	const q = `SELECT l.id, l.name, l.address, l.photo, l.highlighted,
	                  COUNT(m.id), l.created_at, l.updated_at
	           FROM laundromats l
	           LEFT JOIN machines m ON m.laundromat_id = l.id
	           GROUP BY l.id
	           ORDER BY l.highlighted DESC, l.name`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]LaundromatDetail, 0)
	for rows.Next() {
		var d LaundromatDetail
		var photo sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &photo, &d.Highlighted,
			&d.MachineCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		if photo.Valid {
			p := photo.String
			d.Photo = &p
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single laundromat with its machine count.
// ErrLaundromatNotFound is returned when the id is unknown.
func (r *LaundromatRepo) GetByID(ctx context.Context, id uint64) (*LaundromatDetail, error) {
	const q = `SELECT l.id, l.name, l.address, l.photo, l.highlighted,
	                  COUNT(m.id), l.created_at, l.updated_at
	           FROM laundromats l
	           LEFT JOIN machines m ON m.laundromat_id = l.id
	           WHERE l.id = ?
	           GROUP BY l.id`
	var d LaundromatDetail
	var photo sql.NullString
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Name, &d.Address, &photo,
		&d.Highlighted, &d.MachineCount, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLaundromatNotFound
		}
		return nil, err
	}
	if photo.Valid {
		p := photo.String
		d.Photo = &p
	}
	return &d, nil
}

// Create inserts a laundromat and returns the stored row (with its
// zero machine count) so the handler can echo it back.
func (r *LaundromatRepo) Create(ctx context.Context, name, address string, photo *string, highlighted bool) (*LaundromatDetail, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO laundromats (name, address, photo, highlighted) VALUES (?,?,?,?)",
		name, address, photo, highlighted)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// ToggleHighlight flips the highlighted flag and returns the updated
// row. ErrLaundromatNotFound is returned when the id is unknown.
func (r *LaundromatRepo) ToggleHighlight(ctx context.Context, id uint64) (*LaundromatDetail, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE laundromats SET highlighted = NOT highlighted WHERE id=?", id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrLaundromatNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a laundromat. It refuses with ErrConflict while any
// machine still references the unit; machines must be removed first.
func (r *LaundromatRepo) Delete(ctx context.Context, id uint64) error {
	var machines int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM machines WHERE laundromat_id=?", id).Scan(&machines)
	if err != nil {
		return err
	}
	if machines > 0 {
		return ErrConflict
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM laundromats WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLaundromatNotFound
	}
	return nil
}
