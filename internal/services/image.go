package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

// ErrImageNotFound is returned when an image does not exist, has
// expired, or is not owned by the caller.
var ErrImageNotFound = errors.New("image not found")

// DefaultImageName is used when an upload carries no name.
const DefaultImageName = "Untitled"

// ImageWriter defines write operations for images.
type ImageWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string, content []byte, expireAt *time.Time) (uuid.UUID, error)
	Rename(ctx context.Context, imageID, userID uuid.UUID, newName string) (*string, error)
	Delete(ctx context.Context, imageID, userID uuid.UUID) (bool, error)
}

// ImageReader defines read operations for images.
type ImageReader interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ImageSummaryDB, error)
}

// ScanSubmitter hands uploaded content to the malware-scan coordinator.
// Submission must never block or fail the upload.
type ScanSubmitter interface {
	Submit(imageID uuid.UUID, content []byte)
}

// ImageService handles owner-side image operations.
type ImageService struct {
	writer  ImageWriter
	reader  ImageReader
	scanner ScanSubmitter
}

// NewImageService creates a new ImageService.
func NewImageService(writer ImageWriter, reader ImageReader, scanner ScanSubmitter) *ImageService {
	return &ImageService{
		writer:  writer,
		reader:  reader,
		scanner: scanner,
	}
}

// Upload stores a new image and hands its content to the scan
// coordinator after the insert has committed. The scan runs detached
// from this call; its outcome cannot affect the upload result.
func (s *ImageService) Upload(ctx context.Context, userID uuid.UUID, name string, content []byte, expireAt *time.Time) (uuid.UUID, error) {
	if name == "" {
		name = DefaultImageName
	}

	id, err := s.writer.Save(ctx, userID, name, content, expireAt)
	if err != nil {
		logger.Log.Errorw("failed to save image", "userID", userID, "error", err)
		return uuid.Nil, err
	}

	if s.scanner != nil {
		s.scanner.Submit(id, content)
	}
	return id, nil
}

// List returns the user's images without content.
func (s *ImageService) List(ctx context.Context, userID uuid.UUID) ([]models.ImageSummaryDB, error) {
	images, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list images", "userID", userID, "error", err)
		return nil, err
	}
	return images, nil
}

// Get returns an image with its content if it exists, has not expired,
// and is owned by the caller.
func (s *ImageService) Get(ctx context.Context, userID, imageID uuid.UUID) (*models.ImageDB, error) {
	image, err := s.reader.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to get image", "imageID", imageID, "error", err)
		return nil, err
	}
	if image == nil || image.UserID != userID {
		return nil, ErrImageNotFound
	}
	return image, nil
}

// Rename changes the image name and returns the previous one.
func (s *ImageService) Rename(ctx context.Context, userID, imageID uuid.UUID, newName string) (string, error) {
	oldName, err := s.writer.Rename(ctx, imageID, userID, newName)
	if err != nil {
		logger.Log.Errorw("failed to rename image", "imageID", imageID, "error", err)
		return "", err
	}
	if oldName == nil {
		return "", ErrImageNotFound
	}
	return *oldName, nil
}

// Delete removes an image; its share links and visit records cascade.
func (s *ImageService) Delete(ctx context.Context, userID, imageID uuid.UUID) error {
	existed, err := s.writer.Delete(ctx, imageID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete image", "imageID", imageID, "error", err)
		return err
	}
	if !existed {
		return ErrImageNotFound
	}
	return nil
}
