package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Verify(ctx context.Context, tokenString string) (string, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var clientSideIDKey = contextKey{}

// AuthMiddleware returns a middleware that verifies the bearer token and
// threads the authenticated client-side id through the request context
// as an explicit typed value.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			clientSideID, err := tokener.Verify(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			id, err := uuid.Parse(clientSideID)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetClientSideIDToContext(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetClientSideIDToContext stores the authenticated identity in the context
func SetClientSideIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, clientSideIDKey, id)
}

// GetClientSideIDFromContext retrieves the authenticated client-side id.
// The boolean is false when the request did not pass the auth middleware.
func GetClientSideIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(clientSideIDKey).(uuid.UUID)
	return id, ok
}
