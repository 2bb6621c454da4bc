package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

// ImageLister defines the interface for the image listing service.
type ImageLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ImageSummaryDB, error)
}

// ImageListResponse lists the caller's images
// swagger:model ImageListResponse
type ImageListResponse struct {
	Images []models.ImageSummaryDB `json:"images"`
}

// NewImageListHandler returns an HTTP handler listing the caller's images.
// @Summary List images
// @Tags user-images
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ImageListResponse
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Router /user-images [get]
func NewImageListHandler(resolver InternalIDResolver, svc ImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolveUser(w, r, resolver)
		if !ok {
			return
		}

		images, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if images == nil {
			images = []models.ImageSummaryDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ImageListResponse{Images: images})
	}
}
