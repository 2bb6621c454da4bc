package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

// Visitor user-agent strings are truncated before storage.
const maxUserAgentLength = 512

// ShareLinkWriteRepository handles share link write operations
type ShareLinkWriteRepository struct {
	db *sqlx.DB
}

func NewShareLinkWriteRepository(db *sqlx.DB) *ShareLinkWriteRepository {
	return &ShareLinkWriteRepository{db: db}
}

// Save inserts a new share link with used_limit = 0.
func (r *ShareLinkWriteRepository) Save(ctx context.Context, token string, imageID uuid.UUID, totalLimit int) error {
	const query = `
		INSERT INTO image_share_links (token, image_id, total_limit, used_limit)
		VALUES ($1, $2, $3, 0)
	`

	_, err := r.db.ExecContext(ctx, query, token, imageID, totalLimit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID, totalLimit},
		"error", err,
	)

	return err
}

// Redeem consumes one unit of a link's capacity and records the visit,
// both in one transaction. The capacity check and the increment are a
// single conditional UPDATE: under N concurrent attempts against
// remaining capacity C, exactly min(N, C) match a row and the rest see
// no row, so used_limit can never exceed total_limit. If the visit
// insert fails the increment rolls back, so a consumed unit is never
// lost. Returns (uuid.Nil, false, nil) when the token does not exist or
// is exhausted; the two cases are indistinguishable on purpose.
func (r *ShareLinkWriteRepository) Redeem(ctx context.Context, token, userAgent string) (uuid.UUID, bool, error) {
	const redeemQuery = `
		UPDATE image_share_links
		SET used_limit = used_limit + 1
		WHERE token = $1 AND total_limit > used_limit
		RETURNING image_id
	`
	const visitQuery = `
		INSERT INTO visit_records (link_token, user_agent)
		VALUES ($1, $2)
	`

	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, false, err
	}
	defer tx.Rollback()

	var imageID uuid.UUID
	err = tx.GetContext(ctx, &imageID, redeemQuery, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(redeemQuery), " "),
		"result", imageID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	if _, err := tx.ExecContext(ctx, visitQuery, token, userAgent); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(visitQuery), " "),
			"error", err,
		)
		return uuid.Nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, false, err
	}
	return imageID, true, nil
}

// Delete removes a share link if its image is owned by the given user;
// visit records cascade. Returns whether a row existed.
func (r *ShareLinkWriteRepository) Delete(ctx context.Context, token string, ownerID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM image_share_links
		WHERE token = $1
		  AND image_id IN (SELECT id FROM user_images WHERE user_id = $2)
	`

	res, err := r.db.ExecContext(ctx, query, token, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// ShareLinkReadRepository handles share link read operations
type ShareLinkReadRepository struct {
	db *sqlx.DB
}

func NewShareLinkReadRepository(db *sqlx.DB) *ShareLinkReadRepository {
	return &ShareLinkReadRepository{db: db}
}

// GetActiveByImageID lists the image's share links that still have
// capacity, ordered by creation time. Exhausted links stay in storage
// for audit but are not listed.
func (r *ShareLinkReadRepository) GetActiveByImageID(ctx context.Context, imageID uuid.UUID) ([]models.ShareLinkDB, error) {
	const query = `
		SELECT token, image_id, total_limit, used_limit, created_at
		FROM image_share_links
		WHERE image_id = $1 AND used_limit < total_limit
		ORDER BY created_at
	`

	var links []models.ShareLinkDB
	err := r.db.SelectContext(ctx, &links, query, imageID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID},
		"result", len(links),
		"error", err,
	)

	return links, err
}

// OwnedByUser reports whether the share link exists and its image
// belongs to the given user.
func (r *ShareLinkReadRepository) OwnedByUser(ctx context.Context, token string, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM image_share_links l
			JOIN user_images i ON i.id = l.image_id
			WHERE l.token = $1 AND i.user_id = $2
		)
	`

	var owned bool
	err := r.db.GetContext(ctx, &owned, query, token, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", owned,
		"error", err,
	)

	return owned, err
}

// GetVisitsByToken returns the link's visit records ordered by time.
func (r *ShareLinkReadRepository) GetVisitsByToken(ctx context.Context, token string) ([]models.VisitRecordDB, error) {
	const query = `
		SELECT link_token, user_agent, visited_at
		FROM visit_records
		WHERE link_token = $1
		ORDER BY visited_at
	`

	var visits []models.VisitRecordDB
	err := r.db.SelectContext(ctx, &visits, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(visits),
		"error", err,
	)

	return visits, err
}
