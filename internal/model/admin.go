package model

import "time"

// Admin permission levels range from LevelMin to LevelMax.  Level 1 is
// the most restricted tier; destructive operations on other admin
// accounts require a level above LevelMin.
const (
    LevelMin = 1
    LevelMax = 5
)

// Admin represents an administrator account as stored in the `admins`
// table.  Admins manage laundromats, machines and reservations and
// carry an integer permission level between 1 and 5.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  Level        – permission level (1–5).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Admin struct {
    ID           uint64    // admins.id
    Name         string    // admins.name
    Email        string    // admins.email
    PasswordHash string    // admins.password_hash
    Level        int       // admins.level
    CreatedAt    time.Time // admins.created_at
    UpdatedAt    time.Time // admins.updated_at
}

// ValidLevel reports whether the given permission level is inside the
// accepted 1–5 range.
func ValidLevel(level int) bool {
    return level >= LevelMin && level <= LevelMax
}
