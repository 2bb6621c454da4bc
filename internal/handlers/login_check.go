package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/imagineapp/imagine-server/internal/middlewares"
)

// LoginCheckResponse confirms a valid login token
// swagger:model LoginCheckResponse
type LoginCheckResponse struct {
	Res          string `json:"res"`
	ClientSideID string `json:"clientSideId"`
}

// NewLoginCheckHandler returns an HTTP handler that confirms the
// caller's token is still valid.
// @Summary Check login
// @Description Returns the authenticated client-side id when the token is valid.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LoginCheckResponse
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Router /users/login [get]
func NewLoginCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientSideID, ok := middlewares.GetClientSideIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Login required")
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginCheckResponse{
			Res:          "OK",
			ClientSideID: clientSideID.String(),
		})
	}
}
