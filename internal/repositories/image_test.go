package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

func newImageMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	logger.Initialize("debug")

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return sqlxDB, mock, func() { db.Close() }
}

func TestImageWriteRepository_Save(t *testing.T) {
	db, mock, cleanup := newImageMockDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewImageWriteRepository(db)

	userID := uuid.New()
	returnedID := uuid.New()

	mock.ExpectQuery(`INSERT INTO user_images`).
		WithArgs(sqlmock.AnyArg(), userID, "cat.png", []byte("bytes"), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(returnedID))

	id, err := repo.Save(ctx, userID, "cat.png", []byte("bytes"), nil)
	assert.NoError(t, err)
	assert.Equal(t, returnedID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageWriteRepository_Rename(t *testing.T) {
	db, mock, cleanup := newImageMockDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewImageWriteRepository(db)

	imageID := uuid.New()
	userID := uuid.New()

	t.Run("rename returns the previous name", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name\s+FROM user_images`).
			WithArgs(imageID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("old.png"))
		mock.ExpectExec(`UPDATE user_images\s+SET name`).
			WithArgs("new.png", imageID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		oldName, err := repo.Rename(ctx, imageID, userID, "new.png")
		assert.NoError(t, err)
		assert.NotNil(t, oldName)
		assert.Equal(t, "old.png", *oldName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing image rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name\s+FROM user_images`).
			WithArgs(imageID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))
		mock.ExpectRollback()

		oldName, err := repo.Rename(ctx, imageID, userID, "new.png")
		assert.NoError(t, err)
		assert.Nil(t, oldName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestImageWriteRepository_Delete(t *testing.T) {
	db, mock, cleanup := newImageMockDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewImageWriteRepository(db)

	imageID := uuid.New()
	userID := uuid.New()

	t.Run("existing image", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM user_images`).
			WithArgs(imageID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		existed, err := repo.Delete(ctx, imageID, userID)
		assert.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("missing image", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM user_images`).
			WithArgs(imageID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		existed, err := repo.Delete(ctx, imageID, userID)
		assert.NoError(t, err)
		assert.False(t, existed)
	})
}

func TestImageWriteRepository_SetScanStatus(t *testing.T) {
	db, mock, cleanup := newImageMockDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewImageWriteRepository(db)

	imageID := uuid.New()
	analysisID := "analysis-7"

	mock.ExpectExec(`UPDATE user_images\s+SET scan_status`).
		WithArgs(models.ScanStatusPending, analysisID, imageID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetScanStatus(ctx, imageID, models.ScanStatusPending, &analysisID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReadRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newImageMockDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewImageReadRepository(db)

	imageID := uuid.New()
	userID := uuid.New()
	createdAt := time.Now()

	t.Run("image found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "image", "scan_status", "scan_analysis_id", "created_at", "expire_at"}).
			AddRow(imageID, userID, "cat.png", []byte("bytes"), models.ScanStatusPassed, nil, createdAt, nil)
		mock.ExpectQuery(`SELECT id, user_id, name, image, scan_status`).
			WithArgs(imageID).
			WillReturnRows(rows)

		image, err := repo.GetByID(ctx, imageID)
		assert.NoError(t, err)
		assert.NotNil(t, image)
		assert.Equal(t, imageID, image.ID)
		assert.Equal(t, userID, image.UserID)
		assert.Equal(t, []byte("bytes"), image.Image)
		assert.Equal(t, models.ScanStatusPassed, image.ScanStatus)
		assert.Nil(t, image.ExpireAt)
	})

	t.Run("missing or expired image", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, name, image, scan_status`).
			WithArgs(imageID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		image, err := repo.GetByID(ctx, imageID)
		assert.NoError(t, err)
		assert.Nil(t, image)
	})
}

func TestImageReadRepository_GetByUserID(t *testing.T) {
	db, mock, cleanup := newImageMockDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewImageReadRepository(db)

	userID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(firstID, "first.png").
		AddRow(secondID, "second.png")
	mock.ExpectQuery(`SELECT id, name\s+FROM user_images`).
		WithArgs(userID).
		WillReturnRows(rows)

	images, err := repo.GetByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, []models.ImageSummaryDB{
		{ID: firstID, Name: "first.png"},
		{ID: secondID, Name: "second.png"},
	}, images)
}
