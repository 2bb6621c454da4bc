package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
)

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save creates a user and its credential row in one transaction. The
// uniqueness of the name is enforced by the conditional insert, not a
// pre-check, so two concurrent registrations cannot both win. Returns
// (nil, nil) when the name is already taken.
func (r *UserWriteRepository) Save(ctx context.Context, name, passwordHash, salt string, version int) (*models.UserDB, error) {
	const userQuery = `
		INSERT INTO users (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, client_side_id, name, created_at
	`
	const passwordQuery = `
		INSERT INTO user_passwords (user_id, password_hash, salt, version)
		VALUES ($1, $2, $3, $4)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var user models.UserDB
	err = tx.GetContext(ctx, &user, userQuery, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(userQuery), " "),
		"args", []any{name},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		// Name taken; the deferred rollback leaves no partial row.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, passwordQuery, user.ID, passwordHash, salt, version); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(passwordQuery), " "),
			"args", []any{user.ID, version},
			"error", err,
		)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &user, nil
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByName returns a user joined with its credential row, or (nil, nil)
// when no such user exists.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.UserCredentialDB, error) {
	const query = `
		SELECT u.id, u.client_side_id, u.name, p.password_hash, p.salt, p.version
		FROM users u
		JOIN user_passwords p ON p.user_id = u.id
		WHERE u.name = $1
	`

	var user models.UserCredentialDB
	err := r.db.GetContext(ctx, &user, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserIDByClientSideID maps the public identity back to the internal
// one. Returns (nil, nil) when the client-side id is unknown.
func (r *UserReadRepository) GetUserIDByClientSideID(ctx context.Context, clientSideID uuid.UUID) (*uuid.UUID, error) {
	const query = `
		SELECT id
		FROM users
		WHERE client_side_id = $1
	`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, clientSideID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientSideID},
		"result", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}
