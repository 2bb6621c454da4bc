package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
	"github.com/imagineapp/imagine-server/internal/services"
)

// ShareRedeemer defines the interface for the redemption service.
type ShareRedeemer interface {
	Redeem(ctx context.Context, token, visitorUserAgent string) (*models.ImageDB, error)
}

// NewShareRedeemHandler returns an HTTP handler that serves a shared
// image anonymously. Nonexistent, exhausted, and expired cases all
// answer 404.
// @Summary Redeem a share link
// @Tags share-links
// @Produce png
// @Param token path string true "Share token"
// @Success 200 {file} binary
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /user-images/share-link/{token} [post]
func NewShareRedeemHandler(svc ShareRedeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		image, err := svc.Redeem(r.Context(), token, r.UserAgent())
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

		w.Header().Set("Content-Type", contentTypeFromName(image.Name))
		w.WriteHeader(http.StatusOK)
		w.Write(image.Image)
	}
}
