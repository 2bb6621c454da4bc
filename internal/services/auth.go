package services

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/models"
	"github.com/imagineapp/imagine-server/internal/password"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByName(ctx context.Context, name string) (*models.UserCredentialDB, error)
	GetUserIDByClientSideID(ctx context.Context, clientSideID uuid.UUID) (*uuid.UUID, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, passwordHash, salt string, version int) (*models.UserDB, error)
}

// ClientIDCache caches the client-side id to user id mapping.
type ClientIDCache interface {
	Get(ctx context.Context, clientSideID uuid.UUID) (uuid.UUID, error)
	Set(ctx context.Context, clientSideID, userID uuid.UUID) error
}

// PasswordHasher derives and verifies password hashes.
type PasswordHasher interface {
	Salt() ([]byte, error)
	Hash(password string, salt []byte) ([]byte, error)
	Verify(derived, stored []byte) bool
}

// TokenIssuer issues signed login tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, clientSideID string) (string, error)
}

// AuthService handles registration and login. It is the only component
// that touches password material.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  ClientIDCache
	hasher PasswordHasher
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, cache ClientIDCache, hasher PasswordHasher, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user and returns a login token for it.
func (svc *AuthService) Register(ctx context.Context, username, pass string) (string, error) {
	salt, err := svc.hasher.Salt()
	if err != nil {
		logger.Log.Errorw("failed to generate salt", "err", err)
		return "", err
	}

	hash, err := svc.hasher.Hash(pass, salt)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	user, err := svc.writer.Save(ctx, username, hex.EncodeToString(hash), hex.EncodeToString(salt), password.SchemeVersion)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("username already taken", "username", username)
		return "", ErrUsernameTaken
	}

	token, err := svc.jwt.Issue(ctx, user.ClientSideID.String())
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return "", err
	}
	return token, nil
}

// Login authenticates a user and returns a login token. The derivation
// and the constant-time comparison run on every call, whether or not the
// username exists, so the response carries no timing signal about which
// usernames are registered. When no user is found the derived hash is
// compared against itself; the comparison then succeeds, but the outcome
// is only authoritative when a stored credential was actually found.
func (svc *AuthService) Login(ctx context.Context, username, pass string) (string, error) {
	cred, err := svc.reader.GetByName(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	found := cred != nil

	var salt []byte
	if found {
		if salt, err = hex.DecodeString(cred.Salt); err != nil {
			logger.Log.Errorw("failed to decode stored salt", "err", err)
			return "", err
		}
	} else {
		if salt, err = svc.hasher.Salt(); err != nil {
			logger.Log.Errorw("failed to generate salt", "err", err)
			return "", err
		}
	}

	derived, err := svc.hasher.Hash(pass, salt)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	reference := derived
	if found {
		if reference, err = hex.DecodeString(cred.PasswordHash); err != nil {
			logger.Log.Errorw("failed to decode stored hash", "err", err)
			return "", err
		}
	}

	match := svc.hasher.Verify(derived, reference)
	if !found || !match {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Issue(ctx, cred.ClientSideID.String())
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return "", err
	}
	return token, nil
}

// ResolveInternalID maps a client-side id back to the internal user id,
// consulting the cache first. Returns (nil, nil) for an unknown id.
func (svc *AuthService) ResolveInternalID(ctx context.Context, clientSideID uuid.UUID) (*uuid.UUID, error) {
	if svc.cache != nil {
		if userID, err := svc.cache.Get(ctx, clientSideID); err == nil {
			return &userID, nil
		}
	}

	userID, err := svc.reader.GetUserIDByClientSideID(ctx, clientSideID)
	if err != nil {
		logger.Log.Errorw("failed to resolve client side id", "err", err)
		return nil, err
	}
	if userID == nil {
		return nil, nil
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, clientSideID, *userID); err != nil {
			logger.Log.Errorw("failed to cache client side id", "err", err)
		}
	}
	return userID, nil
}
