package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                         // Internal primary key, never exposed to clients
	ClientSideID uuid.UUID `json:"client_side_id" db:"client_side_id"` // Public identity embedded in auth tokens
	Name         string    `json:"name" db:"name"`                     // Unique display name
	CreatedAt    time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}

// UserCredentialDB is the join of a user row with its password row,
// used by the login path.
type UserCredentialDB struct {
	ID           uuid.UUID `db:"id"`
	ClientSideID uuid.UUID `db:"client_side_id"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"` // hex encoded
	Salt         string    `db:"salt"`          // hex encoded
	Version      int       `db:"version"`       // hash scheme version, forward-compatible metadata
}
