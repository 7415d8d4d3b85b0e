package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lavou/laundry-reservation/internal/model"
)

// ErrReservationNotFound is returned when no reservation row matches
// the given id.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides creation, listing and status transitions
// for reservations. Creation and transitions run inside transactions
// so the overlap check and the state machine hold under concurrent
// requests. All timestamp fields are assumed to be stored in UTC.
type ReservationRepo struct{ DB *sql.DB }

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// ReservationDetail encapsulates a reservation along with its machine
// and laundromat information. It is returned by Create and
// ListByCustomer for display to customers.
type ReservationDetail struct {
	ID              uint64     `json:"id"`
	MachineID       uint64     `json:"machine_id"`
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          time.Time  `json:"ends_at"`
	Status          string     `json:"status"`
	ResponseMessage *string    `json:"response_message,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	MachineKind     string     `json:"machine_kind"`
	LaundromatName  string     `json:"laundromat_name"`
	LaundromatAddr  string     `json:"laundromat_address"`
	LaundromatPhoto *string    `json:"laundromat_photo,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AdminReservationDetail extends ReservationDetail with the customer
// who placed the booking. It is used by admin endpoints, where each
// row shows the customer next to the machine and window.
type AdminReservationDetail struct {
	ReservationDetail
	CustomerID    uint64 `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

const reservationSelect = `SELECT r.id, r.machine_id, r.starts_at, r.ends_at, r.status,
	       r.response_message, r.responded_at,
	       m.kind, l.name, l.address, l.photo, r.created_at`

const reservationJoins = ` FROM reservations r
	JOIN machines m ON m.id = r.machine_id
	JOIN laundromats l ON l.id = m.laundromat_id`

const adminReservationQuery = reservationSelect + `, r.customer_id, c.name, c.email` +
	reservationJoins + ` JOIN customers c ON c.id = r.customer_id`

func scanReservation(row interface{ Scan(...any) error }, d *ReservationDetail, extra ...any) error {
	var msg, photo sql.NullString
	var respondedAt sql.NullTime
	dest := []any{&d.ID, &d.MachineID, &d.StartsAt, &d.EndsAt, &d.Status,
		&msg, &respondedAt, &d.MachineKind, &d.LaundromatName, &d.LaundromatAddr,
		&photo, &d.CreatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	if msg.Valid {
		s := msg.String
		d.ResponseMessage = &s
	}
	if respondedAt.Valid {
		t := respondedAt.Time.UTC()
		d.RespondedAt = &t
	}
	if photo.Valid {
		p := photo.String
		d.LaundromatPhoto = &p
	}
	d.StartsAt = d.StartsAt.UTC()
	d.EndsAt = d.EndsAt.UTC()
	return nil
}

// Create books a machine for the fixed one-hour window starting at
// startsAt. Inside a single transaction it verifies that the machine
// exists and is active, checks for overlapping PENDING or CONFIRMED
// reservations on the same machine, and inserts the new row with
// status PENDING. Windows are half-open, so a booking that starts
// exactly when another ends does not clash. It returns
// ErrMachineNotFound, ErrMachineInactive or ErrConflict when one of
// the checks fails.
func (r *ReservationRepo) Create(ctx context.Context, customerID, machineID uint64, startsAt time.Time) (*ReservationDetail, error) {
	startsAt = startsAt.UTC()
	endsAt := startsAt.Add(model.Duration)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the machine row so concurrent bookings on the same machine
	// serialize on the overlap check below.
	var active bool
	err = tx.QueryRowContext(ctx,
		"SELECT active FROM machines WHERE id=? FOR UPDATE", machineID).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMachineNotFound
		}
		return nil, err
	}
	if !active {
		return nil, ErrMachineInactive
	}

	// SQL spelling of model.Overlaps: half-open windows clash iff
	// existing.starts_at < new.ends_at AND existing.ends_at > new.starts_at.
	var clashes int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE machine_id=? AND status IN ('PENDING','CONFIRMED')
		   AND starts_at < ? AND ends_at > ?`,
		machineID, endsAt, startsAt).Scan(&clashes)
	if err != nil {
		return nil, err
	}
	if clashes > 0 {
		return nil, ErrConflict
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO reservations (customer_id, machine_id, starts_at, ends_at, status) VALUES (?,?,?,?,?)",
		customerID, machineID, startsAt, endsAt, model.StatusPending)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Query back the full row to populate timestamps and defaults
	var d ReservationDetail
	err = scanReservation(tx.QueryRowContext(ctx,
		reservationSelect+reservationJoins+` WHERE r.id = ?`, uint64(id)), &d)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return &d, nil
}

// ListByCustomer returns all reservations for the given customer along
// with machine and laundromat details, ordered by creation time
// descending (newest first). When no reservations exist, an empty
// slice is returned.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]ReservationDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		reservationSelect+reservationJoins+` WHERE r.customer_id = ? ORDER BY r.created_at DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]ReservationDetail, 0)
	for rows.Next() {
		var d ReservationDetail
		if err := scanReservation(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every reservation with customer, machine and
// laundromat details, newest first. This feeds the admin console.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]AdminReservationDetail, error) {
	rows, err := r.DB.QueryContext(ctx, adminReservationQuery+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]AdminReservationDetail, 0)
	for rows.Next() {
		var d AdminReservationDetail
		if err := scanReservation(rows, &d.ReservationDetail,
			&d.CustomerID, &d.CustomerName, &d.CustomerEmail); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single reservation in its admin shape.
// ErrReservationNotFound is returned when the id is unknown.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*AdminReservationDetail, error) {
	var d AdminReservationDetail
	err := scanReservation(r.DB.QueryRowContext(ctx, adminReservationQuery+` WHERE r.id = ?`, id),
		&d.ReservationDetail, &d.CustomerID, &d.CustomerName, &d.CustomerEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Transition moves a reservation to a new status, optionally storing a
// response message, and returns the full updated record. The current
// status is read under lock and checked against the allowed moves
// (PENDING to CONFIRMED or REFUSED, CONFIRMED to CANCELLED); an
// illegal move yields ErrConflict and leaves the row untouched.
func (r *ReservationRepo) Transition(ctx context.Context, id uint64, newStatus string, message *string) (*AdminReservationDetail, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var current string
	err = tx.QueryRowContext(ctx,
		"SELECT status FROM reservations WHERE id=? FOR UPDATE", id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !model.CanTransition(current, newStatus) {
		return nil, ErrConflict
	}

	if message != nil {
		_, err = tx.ExecContext(ctx,
			"UPDATE reservations SET status=?, response_message=?, responded_at=NOW() WHERE id=?",
			newStatus, *message, id)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE reservations SET status=?, responded_at=NOW() WHERE id=?",
			newStatus, id)
	}
	if err != nil {
		return nil, err
	}

	var d AdminReservationDetail
	err = scanReservation(tx.QueryRowContext(ctx, adminReservationQuery+` WHERE r.id = ?`, id),
		&d.ReservationDetail, &d.CustomerID, &d.CustomerName, &d.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return &d, nil
}
