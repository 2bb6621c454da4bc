package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
	"github.com/imagineapp/imagine-server/internal/services"
)

// ShareLister defines the interface for the share listing service.
type ShareLister interface {
	List(ctx context.Context, userID, imageID uuid.UUID) ([]models.ShareLinkDB, error)
}

// ShareLinkItem is one share link in a listing
// swagger:model ShareLinkItem
type ShareLinkItem struct {
	Token     string    `json:"token"`
	Used      int       `json:"used"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// ShareListResponse lists an image's active share links
// swagger:model ShareListResponse
type ShareListResponse struct {
	Links []ShareLinkItem `json:"links"`
}

// NewShareListHandler returns an HTTP handler listing an image's
// still-redeemable share links.
// @Summary List share links
// @Tags share-links
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image id"
// @Success 200 {object} handlers.ShareListResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/{id}/share-links [get]
func NewShareListHandler(resolver InternalIDResolver, svc ShareLister) http.HandlerFunc {
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

		links, err := svc.List(r.Context(), userID, imageID)
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

		items := make([]ShareLinkItem, 0, len(links))
		for _, l := range links {
			items = append(items, ShareLinkItem{
				Token:     l.Token,
				Used:      l.UsedLimit,
				Total:     l.TotalLimit,
				CreatedAt: l.CreatedAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ShareListResponse{Links: items})
	}
}
