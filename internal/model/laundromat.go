package model

import "time"

// Laundromat represents a physical laundromat unit as stored in the
// `laundromats` table.  A laundromat hosts multiple machines and may
// be highlighted for promotional placement on the public listing.
// The machine count shown to clients is derived per query and never
// persisted on this row.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – unit name.
//  Address     – street address.
//  Photo       – optional photo URL (nil when absent).
//  Highlighted – promotional highlight flag.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Laundromat struct {
    ID          uint64    // laundromats.id
    Name        string    // laundromats.name
    Address     string    // laundromats.address
    Photo       *string   // laundromats.photo (nullable)
    Highlighted bool      // laundromats.highlighted
    CreatedAt   time.Time // laundromats.created_at
    UpdatedAt   time.Time // laundromats.updated_at
}
