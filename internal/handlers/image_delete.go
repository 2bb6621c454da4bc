package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/services"
)

// ImageDeleter defines the interface for the delete service.
type ImageDeleter interface {
	Delete(ctx context.Context, userID, imageID uuid.UUID) error
}

// DeleteResponse confirms a deletion
// swagger:model DeleteResponse
type DeleteResponse struct {
	Res string `json:"res"`
}

// NewImageDeleteHandler returns an HTTP handler for deleting an image.
// Share links and visit records cascade with the image.
// @Summary Delete an image
// @Tags user-images
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image id"
// @Success 200 {object} handlers.DeleteResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/{id} [delete]
func NewImageDeleteHandler(resolver InternalIDResolver, svc ImageDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, imageID); err != nil {
			switch {
			case errors.Is(err, services.ErrImageNotFound):
				writeError(w, http.StatusNotFound, "Not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{Res: "OK"})
	}
}
