package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Fixed token parameters. The issuer/audience pair scopes tokens to the
// login flow of this service.
const (
	issuer   = "imagine:login:server"
	audience = "imagine:login:user"

	// DefaultExpiration bounds the blast radius of a leaked token.
	// There is no revocation mechanism.
	DefaultExpiration = 15 * time.Minute
)

var signingMethod = jwt.SigningMethodHS256

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong issuer or audience, expired, or signed with an
// unexpected algorithm.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the single claim bound into login tokens.
type Claims struct {
	ClientSideID string `json:"clientSideId"`
	jwt.RegisteredClaims
}

// JWT issues and verifies login tokens. It is stateless and holds no
// database connection.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Issue creates a signed token carrying the given client-side id.
func (j *JWT) Issue(ctx context.Context, clientSideID string) (string, error) {
	now := time.Now()
	claims := Claims{
		ClientSideID: clientSideID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Verify parses the token string and returns the client-side id. It
// enforces the signature, the issuer, the audience, the expiration, and
// that the token was signed with the configured algorithm (rejecting
// algorithm-substitution attacks).
func (j *JWT) Verify(ctx context.Context, tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.SecretKey), nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.ClientSideID == "" {
		return "", ErrInvalidToken
	}
	return claims.ClientSideID, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
