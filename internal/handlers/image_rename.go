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

// ImageRenamer defines the interface for the rename service.
type ImageRenamer interface {
	Rename(ctx context.Context, userID, imageID uuid.UUID, newName string) (string, error)
}

// RenameRequest carries the new image name
// swagger:model RenameRequest
type RenameRequest struct {
	// New name
	// required: true
	Name string `json:"name"`
}

// RenameResponse returns the previous image name
// swagger:model RenameResponse
type RenameResponse struct {
	OldName string `json:"oldName"`
}

// NewImageRenameHandler returns an HTTP handler for renaming an image.
// @Summary Rename an image
// @Tags user-images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image id"
// @Param renameRequest body handlers.RenameRequest true "Rename request"
// @Success 200 {object} handlers.RenameResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/{id} [patch]
func NewImageRenameHandler(resolver InternalIDResolver, svc ImageRenamer) http.HandlerFunc {
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

		var req RenameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		oldName, err := svc.Rename(r.Context(), userID, imageID, req.Name)
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RenameResponse{OldName: oldName})
	}
}
