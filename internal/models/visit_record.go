package models

import "time"

// VisitRecordDB records one successful redemption of a share link
type VisitRecordDB struct {
	LinkToken string    `db:"link_token"`
	UserAgent string    `db:"user_agent"`
	VisitedAt time.Time `db:"visited_at"`
}
