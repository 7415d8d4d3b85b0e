// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationDecidedEvent is published when an admin decides on a
// reservation (confirms, refuses or cancels it). It contains enough
// information for downstream consumers to log, notify, or trigger
// analytics without querying the primary database.
type ReservationDecidedEvent struct {
	ReservationID  uint64 `json:"reservation_id"`
	CustomerID     uint64 `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	MachineID      uint64 `json:"machine_id"`
	MachineKind    string `json:"machine_kind"`
	LaundromatName string `json:"laundromat_name"`
	StartsAt       string `json:"starts_at"`
	EndsAt         string `json:"ends_at"`
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	DecidedAt      string `json:"decided_at"`
}
