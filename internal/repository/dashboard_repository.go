package repository

import (
	"context"
	"database/sql"
)

// DashboardRepo aggregates counts for the admin dashboard. All queries
// are read-only and computed at request time; nothing is denormalized.
type DashboardRepo struct{ DB *sql.DB }

func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{DB: db} }

// Summary holds the headline totals shown at the top of the dashboard.
type Summary struct {
	Customers           int `json:"customers"`
	Laundromats         int `json:"laundromats"`
	Machines            int `json:"machines"`
	ActiveMachines      int `json:"active_machines"`
	Reservations        int `json:"reservations"`
	PendingReservations int `json:"pending_reservations"`
}

// LaundromatMachineCount pairs a laundromat with its machine count.
type LaundromatMachineCount struct {
	LaundromatID   uint64 `json:"laundromat_id"`
	LaundromatName string `json:"laundromat_name"`
	Machines       int    `json:"machines"`
	ActiveMachines int    `json:"active_machines"`
}

// StatusCount pairs a reservation status with how many reservations
// currently hold it.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Summary returns the headline totals in a single round trip.
func (r *DashboardRepo) Summary(ctx context.Context) (*Summary, error) {
	const q = `SELECT
		(SELECT COUNT(*) FROM customers),
		(SELECT COUNT(*) FROM laundromats),
		(SELECT COUNT(*) FROM machines),
		(SELECT COUNT(*) FROM machines WHERE active = TRUE),
		(SELECT COUNT(*) FROM reservations),
		(SELECT COUNT(*) FROM reservations WHERE status = 'PENDING')`
	var s Summary
	err := r.DB.QueryRowContext(ctx, q).Scan(&s.Customers, &s.Laundromats,
		&s.Machines, &s.ActiveMachines, &s.Reservations, &s.PendingReservations)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MachinesPerLaundromat returns one row per laundromat with its total
// and active machine counts, ordered by name. Laundromats with no
// machines are included with zero counts.
func (r *DashboardRepo) MachinesPerLaundromat(ctx context.Context) ([]LaundromatMachineCount, error) {
	const q = `SELECT l.id, l.name, COUNT(m.id),
	                  COALESCE(SUM(CASE WHEN m.active THEN 1 ELSE 0 END), 0)
	           FROM laundromats l
	           LEFT JOIN machines m ON m.laundromat_id = l.id
	           GROUP BY l.id
	           ORDER BY l.name`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]LaundromatMachineCount, 0)
	for rows.Next() {
		var c LaundromatMachineCount
		if err := rows.Scan(&c.LaundromatID, &c.LaundromatName, &c.Machines, &c.ActiveMachines); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ReservationsPerStatus returns one row per status present in the
// reservations table with its count. Statuses with zero reservations
// do not appear; the handler fills them in so clients always see the
// full set.
func (r *DashboardRepo) ReservationsPerStatus(ctx context.Context) ([]StatusCount, error) {
	const q = `SELECT status, COUNT(*) FROM reservations GROUP BY status ORDER BY status`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]StatusCount, 0)
	for rows.Next() {
		var c StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
