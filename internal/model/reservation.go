package model

import "time"

// Reservation statuses.  A reservation starts PENDING and is moved by
// an admin decision; REFUSED and CANCELLED are terminal.
const (
    StatusPending   = "PENDING"   // awaiting an admin decision
    StatusConfirmed = "CONFIRMED" // approved by an admin
    StatusRefused   = "REFUSED"   // rejected by an admin (terminal)
    StatusCancelled = "CANCELLED" // confirmed then withdrawn (terminal)
)

// Duration is the fixed length of every reservation slot.  The client
// submits only the start time; ends_at is always starts_at plus this
// duration, computed server-side.
const Duration = time.Hour

// Reservation records a customer's booking of a machine for a fixed
// one-hour window, as stored in the `reservations` table.  Admin
// decisions may attach a free-text response message; the response
// timestamp records when the decision was made.
//
// Fields:
//  ID              – primary key identifier.
//  CustomerID      – customer who made the reservation.
//  MachineID       – machine being reserved.
//  StartsAt        – start of the reserved window (UTC).
//  EndsAt          – end of the reserved window (UTC), StartsAt + Duration.
//  Status          – state of the reservation (PENDING, CONFIRMED,
//                    REFUSED, CANCELLED).
//  ResponseMessage – optional message left by the deciding admin.
//  RespondedAt     – when the deciding transition happened (nullable).
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
    ID              uint64     // reservations.id
    CustomerID      uint64     // reservations.customer_id
    MachineID       uint64     // reservations.machine_id
    StartsAt        time.Time  // reservations.starts_at
    EndsAt          time.Time  // reservations.ends_at
    Status          string     // reservations.status
    ResponseMessage *string    // reservations.response_message (nullable)
    RespondedAt     *time.Time // reservations.responded_at (nullable)
    CreatedAt       time.Time  // reservations.created_at
    UpdatedAt       time.Time  // reservations.updated_at
}

// ValidStatus reports whether s is a known reservation status.
func ValidStatus(s string) bool {
    switch s {
    case StatusPending, StatusConfirmed, StatusRefused, StatusCancelled:
        return true
    }
    return false
}

// CanTransition reports whether a reservation may move from one status
// to another.  The only legal moves are PENDING→CONFIRMED,
// PENDING→REFUSED and CONFIRMED→CANCELLED; everything else, including
// self-transitions, is rejected.
func CanTransition(from, to string) bool {
    switch from {
    case StatusPending:
        return to == StatusConfirmed || to == StatusRefused
    case StatusConfirmed:
        return to == StatusCancelled
    }
    return false
}

// Overlaps reports whether two half-open windows [aStart, aEnd) and
// [bStart, bEnd) share any instant.  Touching boundaries do not count
// as overlap, so back-to-back slots on the same machine are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
    return aStart.Before(bEnd) && bStart.Before(aEnd)
}
