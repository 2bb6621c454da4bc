package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mileusna/useragent"
	"github.com/segmentio/kafka-go"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

// Error variables
var (
	// ErrInvalidLimit is returned when a share link is requested with a
	// non-positive capacity.
	ErrInvalidLimit = errors.New("share limit must be positive")

	// ErrShareNotFound collapses nonexistent, exhausted, and
	// expired-image redemption cases so an untrusted caller cannot tell
	// them apart.
	ErrShareNotFound = errors.New("share link not found")
)

// Share tokens carry 512 bits of entropy; collisions are treated as
// negligible and not handled.
const shareTokenBytes = 64

// UnknownUserAgent is the sentinel summary for unparseable visitor
// user-agent strings.
const UnknownUserAgent = "Unknown"

// ShareLinkWriter defines write operations for share links.
type ShareLinkWriter interface {
	Save(ctx context.Context, token string, imageID uuid.UUID, totalLimit int) error
	Redeem(ctx context.Context, token, userAgent string) (uuid.UUID, bool, error)
	Delete(ctx context.Context, token string, ownerID uuid.UUID) (bool, error)
}

// ShareLinkReader defines read operations for share links.
type ShareLinkReader interface {
	GetActiveByImageID(ctx context.Context, imageID uuid.UUID) ([]models.ShareLinkDB, error)
	OwnedByUser(ctx context.Context, token string, userID uuid.UUID) (bool, error)
	GetVisitsByToken(ctx context.Context, token string) ([]models.VisitRecordDB, error)
}

// ImageGetter fetches image rows for ownership checks and redemption.
type ImageGetter interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RedemptionEvent is published to Kafka after each successful redemption.
type RedemptionEvent struct {
	Token      string    `json:"token"`
	ImageID    string    `json:"image_id"`
	UserAgent  string    `json:"user_agent"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// VisitSummary is the presentational form of a visit record.
type VisitSummary struct {
	VisitedAt time.Time `json:"visited_at"`
	UserAgent string    `json:"user_agent"`
}

// ShareService owns the share link lifecycle: issuance, atomic
// capacity-limited redemption, listing, deletion, and visit history.
type ShareService struct {
	writer      ShareLinkWriter
	reader      ShareLinkReader
	images      ImageGetter
	kafkaWriter KafkaWriter
}

// NewShareService creates a new ShareService.
func NewShareService(writer ShareLinkWriter, reader ShareLinkReader, images ImageGetter, kafkaWriter KafkaWriter) *ShareService {
	return &ShareService{
		writer:      writer,
		reader:      reader,
		images:      images,
		kafkaWriter: kafkaWriter,
	}
}

// newShareToken returns a high-entropy random token encoded for use as
// a URL path segment and as a primary key.
func newShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Share issues a new link for an image owned by the caller.
func (s *ShareService) Share(ctx context.Context, userID, imageID uuid.UUID, totalLimit int) (string, error) {
	if totalLimit <= 0 {
		return "", ErrInvalidLimit
	}

	image, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to get image for sharing", "imageID", imageID, "error", err)
		return "", err
	}
	if image == nil || image.UserID != userID {
		return "", ErrImageNotFound
	}

	token, err := newShareToken()
	if err != nil {
		logger.Log.Errorw("failed to generate share token", "error", err)
		return "", err
	}

	if err := s.writer.Save(ctx, token, imageID, totalLimit); err != nil {
		logger.Log.Errorw("failed to save share link", "imageID", imageID, "error", err)
		return "", err
	}
	return token, nil
}

// Redeem consumes one unit of the link's capacity and returns the shared
// image. The decrement commits before the image is fetched, so a link to
// an expired image still burns a unit on every attempt; the contention
// logic stays uniform that way and the behavior is part of the external
// contract.
func (s *ShareService) Redeem(ctx context.Context, token, visitorUserAgent string) (*models.ImageDB, error) {
	imageID, ok, err := s.writer.Redeem(ctx, token, visitorUserAgent)
	if err != nil {
		logger.Log.Errorw("failed to redeem share link", "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrShareNotFound
	}

	image, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to get shared image", "imageID", imageID, "error", err)
		return nil, err
	}
	if image == nil {
		// Image gone or expired. The consumed unit stays consumed.
		return nil, ErrShareNotFound
	}

	s.publishRedemption(ctx, token, image.ID, visitorUserAgent)

	return image, nil
}

// publishRedemption publishes a redemption audit event to Kafka.
// Publishing is best effort and never fails the redemption.
func (s *ShareService) publishRedemption(ctx context.Context, token string, imageID uuid.UUID, userAgent string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "image_id", imageID)
		return
	}

	event := RedemptionEvent{
		Token:      token,
		ImageID:    imageID.String(),
		UserAgent:  userAgent,
		RedeemedAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal redemption event", "image_id", imageID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(token),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish redemption event", "image_id", imageID, "error", err)
	} else {
		logger.Log.Infow("redemption event published", "image_id", imageID)
	}
}

// List returns the image's still-redeemable links, newest last.
func (s *ShareService) List(ctx context.Context, userID, imageID uuid.UUID) ([]models.ShareLinkDB, error) {
	image, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to get image for listing links", "imageID", imageID, "error", err)
		return nil, err
	}
	if image == nil || image.UserID != userID {
		return nil, ErrImageNotFound
	}

	links, err := s.reader.GetActiveByImageID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to list share links", "imageID", imageID, "error", err)
		return nil, err
	}
	return links, nil
}

// Delete removes a link owned (through its image) by the caller.
func (s *ShareService) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	existed, err := s.writer.Delete(ctx, token, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete share link", "error", err)
		return err
	}
	if !existed {
		return ErrShareNotFound
	}
	return nil
}

// VisitHistory returns summarized visit records for a link owned by the
// caller, ordered by time.
func (s *ShareService) VisitHistory(ctx context.Context, userID uuid.UUID, token string) ([]VisitSummary, error) {
	owned, err := s.reader.OwnedByUser(ctx, token, userID)
	if err != nil {
		logger.Log.Errorw("failed to check share link ownership", "error", err)
		return nil, err
	}
	if !owned {
		return nil, ErrShareNotFound
	}

	visits, err := s.reader.GetVisitsByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get visit records", "error", err)
		return nil, err
	}

	summaries := make([]VisitSummary, 0, len(visits))
	for _, v := range visits {
		summaries = append(summaries, VisitSummary{
			VisitedAt: v.VisitedAt,
			UserAgent: summarizeUserAgent(v.UserAgent),
		})
	}
	return summaries, nil
}

// summarizeUserAgent reduces a raw user-agent string to a browser family
// and version. Parsing is purely presentational and tolerant of
// malformed input.
func summarizeUserAgent(raw string) string {
	ua := useragent.Parse(raw)
	if ua.Name == "" {
		return UnknownUserAgent
	}
	if ua.Version == "" {
		return ua.Name
	}
	return ua.Name + " " + ua.Version
}
