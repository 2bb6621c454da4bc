package models

import (
	"time"

	"github.com/google/uuid"
)

// ShareLinkDB represents a capacity-limited anonymous share link.
// The token itself is the primary key.
type ShareLinkDB struct {
	Token      string    `json:"token" db:"token"`
	ImageID    uuid.UUID `json:"image_id" db:"image_id"`
	TotalLimit int       `json:"total_limit" db:"total_limit"` // Fixed at creation, always > 0
	UsedLimit  int       `json:"used_limit" db:"used_limit"`   // Monotonically non-decreasing, never exceeds total_limit
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
