package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/imagineapp/imagine-server/internal/logger"
)

// ClientIDCacheRepository caches the client_side_id -> user_id mapping in
// Redis. The mapping never changes for the lifetime of a user, so a cached
// entry can never serve a stale identity; the TTL only bounds memory.
type ClientIDCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewClientIDCacheRepository creates a new repository instance with the given TTL
func NewClientIDCacheRepository(client *redis.Client, expiration time.Duration) *ClientIDCacheRepository {
	return &ClientIDCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached user id for a client-side id.
func (r *ClientIDCacheRepository) Get(ctx context.Context, clientSideID uuid.UUID) (uuid.UUID, error) {
	key := fmt.Sprintf("client_side_id:%s", clientSideID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return uuid.Nil, fmt.Errorf("user id not found in cache for %s", clientSideID)
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return uuid.Nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", userID,
		"error", nil,
	)

	return userID, nil
}

// Set caches a user id for a client-side id with expiration.
func (r *ClientIDCacheRepository) Set(ctx context.Context, clientSideID, userID uuid.UUID) error {
	key := fmt.Sprintf("client_side_id:%s", clientSideID)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"user_id", userID,
		"result", "ok",
		"error", err,
	)

	return err
}
