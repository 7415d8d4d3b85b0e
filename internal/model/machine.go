package model

import "time"

// Machine kinds.  Every machine either washes or dries.
const (
    KindWash = "WASH" // machines.kind value for washing machines
    KindDry  = "DRY"  // machines.kind value for drying machines
)

// Machine represents a washing or drying machine as stored in the
// `machines` table.  Each machine belongs to exactly one laundromat.
// The active flag controls whether the machine appears on the public
// listing and accepts new reservations; toggling it does not touch
// reservations that already exist.
//
// Fields:
//  ID           – primary key identifier.
//  LaundromatID – laundromat that hosts the machine.
//  Kind         – WASH or DRY.
//  Active       – whether the machine accepts reservations.
//  Photo        – optional photo URL (nil when absent).
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Machine struct {
    ID           uint64    // machines.id
    LaundromatID uint64    // machines.laundromat_id
    Kind         string    // machines.kind
    Active       bool      // machines.active
    Photo        *string   // machines.photo (nullable)
    CreatedAt    time.Time // machines.created_at
    UpdatedAt    time.Time // machines.updated_at
}

// ValidKind reports whether s is a known machine kind.
func ValidKind(s string) bool {
    return s == KindWash || s == KindDry
}
