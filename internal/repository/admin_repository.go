package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lavou/laundry-reservation/internal/utils"
)

// ErrAdminNotFound is returned when no admin row matches the given id.
var ErrAdminNotFound = errors.New("admin not found")

// Admin mirrors the 'admins' table.
type Admin struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Level        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// Create inserts an admin and returns its ID.
func (r *AdminRepo) Create(ctx context.Context, name, email, password string, level, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (name, email, password_hash, level) VALUES (?,?,?,?)",
		name, email, hash, level)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an admin by normalized email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,level,created_at,updated_at FROM admins WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Level, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetByID fetches an admin by id.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (Admin, error) {
	var a Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,level,created_at,updated_at FROM admins WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Level, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// List returns all admins ordered by name. The password hash column
// is intentionally not selected; callers never need it for listing.
func (r *AdminRepo) List(ctx context.Context) ([]Admin, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,level,created_at,updated_at FROM admins ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]Admin, 0)
	for rows.Next() {
		var a Admin
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Level, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateLevel sets the permission level of an admin. ErrAdminNotFound
// is returned when no row was affected.
func (r *AdminRepo) UpdateLevel(ctx context.Context, id uint64, level int) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE admins SET level=? WHERE id=?", level, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Delete removes an admin account. ErrAdminNotFound is returned when
// no row was affected.
func (r *AdminRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM admins WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAdminNotFound
	}
	return nil
}
