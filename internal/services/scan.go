package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

// Scanner checks content against the external malware-scan service.
// pendingID is non-empty when the service was still processing after the
// attempt budget ran out.
type Scanner interface {
	Check(ctx context.Context, content []byte) (passed bool, pendingID string, err error)
}

// ImageStatusWriter records scan verdicts on image metadata.
type ImageStatusWriter interface {
	SetScanStatus(ctx context.Context, imageID uuid.UUID, status string, analysisID *string) error
}

type scanJob struct {
	imageID uuid.UUID
	content []byte
}

// ScanCoordinator runs malware checks after uploads have already been
// answered. Jobs go through a bounded queue into a fixed worker pool;
// workers run on a detached context, so a slow scanner never holds a
// request open. Every downstream failure is swallowed into a
// conservative "failed" verdict.
type ScanCoordinator struct {
	scanner Scanner
	images  ImageStatusWriter
	jobs    chan scanJob
	wg      sync.WaitGroup
}

// NewScanCoordinator creates a coordinator with the given worker count
// and queue capacity and starts its workers. Call Stop on shutdown.
func NewScanCoordinator(scanner Scanner, images ImageStatusWriter, workers, queueSize int) *ScanCoordinator {
	c := &ScanCoordinator{
		scanner: scanner,
		images:  images,
		jobs:    make(chan scanJob, queueSize),
	}
	c.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go c.worker()
	}
	return c
}

// Submit enqueues content for scanning. It never blocks and never fails
// the originating upload: on a full queue the job is dropped and the
// image is conservatively marked failed.
func (c *ScanCoordinator) Submit(imageID uuid.UUID, content []byte) {
	select {
	case c.jobs <- scanJob{imageID: imageID, content: content}:
	default:
		logger.Log.Errorw("scan queue full, marking image failed", "image_id", imageID)
		go c.record(imageID, models.ScanStatusFailed, nil)
	}
}

// Stop drains the queue and waits for in-flight scans to finish.
func (c *ScanCoordinator) Stop() {
	close(c.jobs)
	c.wg.Wait()
}

func (c *ScanCoordinator) worker() {
	defer c.wg.Done()

	// Detached from any request lifetime.
	ctx := context.Background()

	for job := range c.jobs {
		passed, pendingID, err := c.scanner.Check(ctx, job.content)

		switch {
		case err != nil:
			logger.Log.Errorw("scan check failed", "image_id", job.imageID, "error", err)
			c.record(job.imageID, models.ScanStatusFailed, nil)
		case pendingID != "":
			c.record(job.imageID, models.ScanStatusPending, &pendingID)
		case passed:
			c.record(job.imageID, models.ScanStatusPassed, nil)
		default:
			c.record(job.imageID, models.ScanStatusFailed, nil)
		}
	}
}

func (c *ScanCoordinator) record(imageID uuid.UUID, status string, analysisID *string) {
	if err := c.images.SetScanStatus(context.Background(), imageID, status, analysisID); err != nil {
		logger.Log.Errorw("failed to record scan status", "image_id", imageID, "status", status, "error", err)
		return
	}
	logger.Log.Infow("scan status recorded", "image_id", imageID, "status", status)
}
