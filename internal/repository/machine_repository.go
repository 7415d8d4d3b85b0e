package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrMachineNotFound is returned when no machine row matches the given id.
var ErrMachineNotFound = errors.New("machine not found")

// MachineRepo provides CRUD and search operations for machines. Client
// facing queries always join the owning laundromat so listings can show
// the unit's name, address and photo next to the machine.
type MachineRepo struct{ DB *sql.DB }

func NewMachineRepo(db *sql.DB) *MachineRepo { return &MachineRepo{DB: db} }

// MachineDetail is a machine row joined with its laundromat, as
// returned to clients.
type MachineDetail struct {
	ID           uint64    `json:"id"`
	Kind         string    `json:"kind"`
	Active       bool      `json:"active"`
	Photo        *string   `json:"photo"`
	LaundromatID uint64    `json:"laundromat_id"`
	Laundromat   struct {
		Name        string  `json:"name"`
		Address     string  `json:"address"`
		Photo       *string `json:"photo"`
		Highlighted bool    `json:"highlighted"`
	} `json:"laundromat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const machineSelect = `SELECT m.id, m.kind, m.active, m.photo, m.laundromat_id,
	       l.name, l.address, l.photo, l.highlighted,
	       m.created_at, m.updated_at
	FROM machines m
	JOIN laundromats l ON l.id = m.laundromat_id`

func scanMachine(row interface{ Scan(...any) error }) (MachineDetail, error) {
	var d MachineDetail
	var mPhoto, lPhoto sql.NullString
	err := row.Scan(&d.ID, &d.Kind, &d.Active, &mPhoto, &d.LaundromatID,
		&d.Laundromat.Name, &d.Laundromat.Address, &lPhoto, &d.Laundromat.Highlighted,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return d, err
	}
	if mPhoto.Valid {
		p := mPhoto.String
		d.Photo = &p
	}
	if lPhoto.Valid {
		p := lPhoto.String
		d.Laundromat.Photo = &p
	}
	return d, nil
}

func (r *MachineRepo) list(ctx context.Context, q string, args ...any) ([]MachineDetail, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]MachineDetail, 0)
	for rows.Next() {
		d, err := scanMachine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns machines with the active flag set, highlighted
// laundromats first. This feeds the public listing.
func (r *MachineRepo) ListActive(ctx context.Context) ([]MachineDetail, error) {
	return r.list(ctx, machineSelect+` WHERE m.active = TRUE ORDER BY l.highlighted DESC, l.name, m.id`)
}

// ListAll returns every machine regardless of the active flag. This
// feeds the admin console.
func (r *MachineRepo) ListAll(ctx context.Context) ([]MachineDetail, error) {
	return r.list(ctx, machineSelect+` ORDER BY l.name, m.id`)
}

// Search returns active machines whose kind, laundromat name or
// address contains the given term, case-insensitively. The handler is
// responsible for enforcing the minimum term length.
func (r *MachineRepo) Search(ctx context.Context, term string) ([]MachineDetail, error) {
	like := "%" + term + "%"
	return r.list(ctx,
		machineSelect+` WHERE m.active = TRUE
		  AND (m.kind LIKE ? OR l.name LIKE ? OR l.address LIKE ?)
		ORDER BY l.highlighted DESC, l.name, m.id`,
		like, like, like)
}

// GetByID returns a single machine with its laundromat.
// ErrMachineNotFound is returned when the id is unknown.
func (r *MachineRepo) GetByID(ctx context.Context, id uint64) (*MachineDetail, error) {
	d, err := scanMachine(r.DB.QueryRowContext(ctx, machineSelect+` WHERE m.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMachineNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a machine under an existing laundromat and returns
// the stored row. ErrLaundromatNotFound is returned when the target
// laundromat does not exist.
func (r *MachineRepo) Create(ctx context.Context, laundromatID uint64, kind string, active bool, photo *string) (*MachineDetail, error) {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM laundromats WHERE id=?", laundromatID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrLaundromatNotFound
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO machines (laundromat_id, kind, active, photo) VALUES (?,?,?,?)",
		laundromatID, kind, active, photo)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// ToggleActive flips the active flag and returns the updated row.
// Outstanding reservations are left untouched; deactivation only stops
// new bookings.
func (r *MachineRepo) ToggleActive(ctx context.Context, id uint64) (*MachineDetail, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE machines SET active = NOT active WHERE id=?", id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrMachineNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a machine. It refuses with ErrConflict while any
// PENDING or CONFIRMED reservation still references the machine.
func (r *MachineRepo) Delete(ctx context.Context, id uint64) error {
	var open int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE machine_id=? AND status IN ('PENDING','CONFIRMED')",
		id).Scan(&open)
	if err != nil {
		return err
	}
	if open > 0 {
		return ErrConflict
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM machines WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMachineNotFound
	}
	return nil
}
