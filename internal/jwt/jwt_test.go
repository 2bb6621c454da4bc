package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	j := New("test-secret", DefaultExpiration)
	ctx := context.Background()

	token, err := j.Issue(ctx, "abc")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	clientSideID, err := j.Verify(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "abc", clientSideID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Issue(ctx, "abc")
	assert.NoError(t, err)

	_, err = j.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongKey(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-one", DefaultExpiration).Issue(ctx, "abc")
	assert.NoError(t, err)

	_, err = New("secret-two", DefaultExpiration).Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongAlgorithmRejected(t *testing.T) {
	j := New("test-secret", DefaultExpiration)
	ctx := context.Background()

	// Same key, different HMAC variant: must fail the algorithm check.
	now := time.Now()
	claims := Claims{
		ClientSideID: "abc",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "imagine:login:server",
			Audience:  gojwt.ClaimStrings{"imagine:login:user"},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = j.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongIssuerOrAudience(t *testing.T) {
	j := New("test-secret", DefaultExpiration)
	ctx := context.Background()

	sign := func(iss, aud string) string {
		now := time.Now()
		claims := Claims{
			ClientSideID: "abc",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    iss,
				Audience:  gojwt.ClaimStrings{aud},
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)
		return token
	}

	_, err := j.Verify(ctx, sign("someone:else", "imagine:login:user"))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.Verify(ctx, sign("imagine:login:server", "someone:else"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("test-secret", DefaultExpiration)
	ctx := context.Background()

	_, err := j.Verify(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", DefaultExpiration)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
