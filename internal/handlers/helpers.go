package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/middlewares"
)

// InternalIDResolver maps the authenticated client-side id back to the
// internal user id. Every authenticated handler goes through it; the
// internal id never appears in tokens or URLs.
type InternalIDResolver interface {
	ResolveInternalID(ctx context.Context, clientSideID uuid.UUID) (*uuid.UUID, error)
}

// ErrorResponse is the common error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// resolveUser extracts the authenticated identity from the request
// context and resolves it to an internal user id. It writes the error
// response itself and returns false when the caller should stop.
func resolveUser(w http.ResponseWriter, r *http.Request, resolver InternalIDResolver) (uuid.UUID, bool) {
	clientSideID, ok := middlewares.GetClientSideIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Login required")
		return uuid.Nil, false
	}

	userID, err := resolver.ResolveInternalID(r.Context(), clientSideID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return uuid.Nil, false
	}
	if userID == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return uuid.Nil, false
	}
	return *userID, true
}

var validInputPattern = regexp.MustCompile(`^[\x20-\x7E]{8,512}$`)

// isValidInput accepts printable ASCII between 8 and 512 characters.
func isValidInput(input string) bool {
	return validInputPattern.MatchString(input)
}

// contentTypeFromName maps a stored image name to its content type.
func contentTypeFromName(name string) string {
	switch {
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
