package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

// ImageWriteRepository handles image write operations
type ImageWriteRepository struct {
	db *sqlx.DB
}

func NewImageWriteRepository(db *sqlx.DB) *ImageWriteRepository {
	return &ImageWriteRepository{db: db}
}

// Save inserts a new image owned by the given user and returns its id.
func (r *ImageWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string, content []byte, expireAt *time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO user_images (id, user_id, name, image, expire_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{uuid.New(), userID, name, content, expireAt}

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name, len(content), expireAt},
		"result", id,
		"error", err,
	)

	return id, err
}

// Rename updates the image name and returns the previous one. The row is
// locked for the duration of the read-modify-write so two concurrent
// renames cannot both observe the same previous name. Returns (nil, nil)
// when the image does not exist or is not owned by the user.
func (r *ImageWriteRepository) Rename(ctx context.Context, imageID, userID uuid.UUID, newName string) (*string, error) {
	const selectQuery = `
		SELECT name
		FROM user_images
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`
	const updateQuery = `
		UPDATE user_images
		SET name = $1
		WHERE id = $2
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var oldName string
	err = tx.GetContext(ctx, &oldName, selectQuery, imageID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(selectQuery), " "),
		"args", []any{imageID, userID},
		"result", oldName,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, updateQuery, newName, imageID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &oldName, nil
}

// Delete removes an image owned by the given user; share links and their
// visit records cascade. Returns whether a row existed.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM user_images
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, imageID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// SetScanStatus records the malware-check verdict for an image. It is
// called from the scan coordinator after the upload has already been
// answered, through the same transactional store as every other mutation.
func (r *ImageWriteRepository) SetScanStatus(ctx context.Context, imageID uuid.UUID, status string, analysisID *string) error {
	const query = `
		UPDATE user_images
		SET scan_status = $1, scan_analysis_id = $2
		WHERE id = $3
	`

	res, err := r.db.ExecContext(ctx, query, status, analysisID, imageID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status, analysisID, imageID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ImageReadRepository handles image read operations
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// GetByID returns an image with its content, or (nil, nil) when it does
// not exist or has expired. Expired images are excluded here so their
// bytes cannot be served through any path, including a still-valid share
// link.
func (r *ImageReadRepository) GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error) {
	const query = `
		SELECT id, user_id, name, image, scan_status, scan_analysis_id, created_at, expire_at
		FROM user_images
		WHERE id = $1
		  AND (expire_at IS NULL OR expire_at > NOW())
	`

	var image models.ImageDB
	err := r.db.GetContext(ctx, &image, query, imageID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByUserID lists the user's images without content bytes.
func (r *ImageReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ImageSummaryDB, error) {
	const query = `
		SELECT id, name
		FROM user_images
		WHERE user_id = $1
		ORDER BY created_at
	`

	var images []models.ImageSummaryDB
	err := r.db.SelectContext(ctx, &images, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(images),
		"error", err,
	)

	return images, err
}
