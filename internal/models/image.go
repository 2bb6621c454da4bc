package models

import (
	"time"

	"github.com/google/uuid"
)

// Scan status values for user_images.scan_status.
const (
	ScanStatusUnchecked = "unchecked"
	ScanStatusPassed    = "passed"
	ScanStatusFailed    = "failed"
	ScanStatusPending   = "pending" // attempt budget exhausted, external analysis id recorded
)

// ImageDB represents a stored image with its content
type ImageDB struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"user_id" db:"user_id"` // Owner
	Name           string     `json:"name" db:"name"`
	Image          []byte     `json:"-" db:"image"`
	ScanStatus     string     `json:"scan_status" db:"scan_status"`
	ScanAnalysisID *string    `json:"scan_analysis_id,omitempty" db:"scan_analysis_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	ExpireAt       *time.Time `json:"expire_at,omitempty" db:"expire_at"`
}

// ImageSummaryDB is the listing projection without content bytes
type ImageSummaryDB struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}
