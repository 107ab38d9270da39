package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

func TestValidateTokenAcceptsSignedToken(t *testing.T) {
	svc := NewAuthService("test-secret")
	token := signTestToken(t, "test-secret", 42, time.Hour)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewAuthService("test-secret")
	token := signTestToken(t, "other-secret", 42, time.Hour)

	_, err := svc.ValidateToken(token)

	require.Error(t, err)
}

func TestValidateTokenRejectsExpiredToken(t *testing.T) {
	svc := NewAuthService("test-secret")
	token := signTestToken(t, "test-secret", 42, -time.Minute)

	_, err := svc.ValidateToken(token)

	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService("test-secret")

	_, err := svc.ValidateToken("not.a.token")

	require.Error(t, err)
}

func signTestToken(t *testing.T, secret string, userID int64, ttl time.Duration) string {
	t.Helper()
	claims := models.JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}
