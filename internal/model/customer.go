package model

import "time"

// Customer represents a registered customer account as stored in the
// `customers` table.  Customers authenticate with email and password
// and own zero or more reservations.  The password is never kept in
// plain text; only its bcrypt hash is stored.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name shown on reservations.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Customer struct {
    ID           uint64    // customers.id
    Name         string    // customers.name
    Email        string    // customers.email
    PasswordHash string    // customers.password_hash
    CreatedAt    time.Time // customers.created_at
    UpdatedAt    time.Time // customers.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a customer and is the durable credential
// behind "keep me logged in".  The plain token is not stored; only
// its SHA-256 hash.
//
// Fields:
//  ID         – primary key identifier.
//  CustomerID – owner of the token.
//  TokenHash  – SHA-256 hex digest of the token value.
//  ExpiresAt  – expiration timestamp of the token.
//  RevokedAt  – when the token was revoked (null if still active).
//  CreatedAt  – timestamp of creation.
type RefreshToken struct {
    ID         uint64     // refresh_tokens.id
    CustomerID uint64     // refresh_tokens.customer_id
    TokenHash  string     // refresh_tokens.token_hash
    ExpiresAt  time.Time  // refresh_tokens.expires_at
    RevokedAt  *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt  time.Time  // refresh_tokens.created_at
}
