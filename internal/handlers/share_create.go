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

// ShareCreator defines the interface for the share issuance service.
type ShareCreator interface {
	Share(ctx context.Context, userID, imageID uuid.UUID, totalLimit int) (string, error)
}

// ShareRequest carries the redemption capacity of the new link
// swagger:model ShareRequest
type ShareRequest struct {
	// Maximum number of redemptions
	// required: true
	Limit int `json:"limit"`
}

// ShareResponse returns the new share token
// swagger:model ShareResponse
type ShareResponse struct {
	Token string `json:"token"`
}

// NewShareCreateHandler returns an HTTP handler issuing a share link.
// @Summary Create a share link
// @Description Issues a capacity-limited anonymous share link for an owned image.
// @Tags share-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image id"
// @Param shareRequest body handlers.ShareRequest true "Share request"
// @Success 201 {object} handlers.ShareResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/{id}/share-link [post]
func NewShareCreateHandler(resolver InternalIDResolver, svc ShareCreator) http.HandlerFunc {
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

		var req ShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		token, err := svc.Share(r.Context(), userID, imageID, req.Limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidLimit):
				writeError(w, http.StatusBadRequest, "Bad request")
			case errors.Is(err, services.ErrImageNotFound):
				writeError(w, http.StatusNotFound, "Not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ShareResponse{Token: token})
	}
}
