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
	"github.com/imagineapp/imagine-server/internal/services"
)

// VisitHistorian defines the interface for the visit history service.
type VisitHistorian interface {
	VisitHistory(ctx context.Context, userID uuid.UUID, token string) ([]services.VisitSummary, error)
}

// VisitItem is one redemption in a link's history
// swagger:model VisitItem
type VisitItem struct {
	VisitedAt time.Time `json:"visitedAt"`
	UserAgent string    `json:"userAgent"`
}

// VisitListResponse lists a link's redemptions
// swagger:model VisitListResponse
type VisitListResponse struct {
	Visits []VisitItem `json:"visits"`
}

// NewShareVisitsHandler returns an HTTP handler listing a link's visit
// history with summarized user agents.
// @Summary Share link visit history
// @Tags share-links
// @Produce json
// @Security BearerAuth
// @Param token path string true "Share token"
// @Success 200 {object} handlers.VisitListResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/share-link/{token}/visits [get]
func NewShareVisitsHandler(resolver InternalIDResolver, svc VisitHistorian) http.HandlerFunc {
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

		visits, err := svc.VisitHistory(r.Context(), userID, token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrShareNotFound):
				writeError(w, http.StatusNotFound, "Not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		items := make([]VisitItem, 0, len(visits))
		for _, v := range visits {
			items = append(items, VisitItem{
				VisitedAt: v.VisitedAt,
				UserAgent: v.UserAgent,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VisitListResponse{Visits: items})
	}
}
