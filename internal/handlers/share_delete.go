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

// ShareDeleter defines the interface for the share deletion service.
type ShareDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, token string) error
}

// NewShareDeleteHandler returns an HTTP handler deleting a share link
// and its visit records.
// @Summary Delete a share link
// @Tags share-links
// @Produce json
// @Security BearerAuth
// @Param token path string true "Share token"
// @Success 200 {object} handlers.DeleteResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/share-link/{token} [delete]
func NewShareDeleteHandler(resolver InternalIDResolver, svc ShareDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolveUser(w, r, resolver)
		if !ok {
			return
		}

		token := chi.URLParam(r, "token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		if err := svc.Delete(r.Context(), userID, token); err != nil {
			switch {
			case errors.Is(err, services.ErrShareNotFound):
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
