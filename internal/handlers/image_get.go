package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
	"github.com/imagineapp/imagine-server/internal/services"
)

// ImageContentGetter defines the interface for fetching an owned image.
type ImageContentGetter interface {
	Get(ctx context.Context, userID, imageID uuid.UUID) (*models.ImageDB, error)
}

// NewImageGetHandler returns an HTTP handler serving an owned image's bytes.
// @Summary Fetch an image
// @Tags user-images
// @Produce png
// @Security BearerAuth
// @Param id path string true "Image id"
// @Success 200 {file} binary
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/{id} [get]
func NewImageGetHandler(resolver InternalIDResolver, svc ImageContentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolveUser(w, r, resolver)
		if !ok {
			return
		}

		imageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		image, err := svc.Get(r.Context(), userID, imageID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrImageNotFound):
				writeError(w, http.StatusNotFound, "Not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", contentTypeFromName(image.Name))
		w.WriteHeader(http.StatusOK)
		w.Write(image.Image)
	}
}
