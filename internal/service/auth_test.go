package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func userClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "u1",
		"email": "user@example.com",
		"role":  "user",
		"exp":   exp.Unix(),
		"iat":   time.Now().Unix(),
	}
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret", "admin@example.com", "pw", nil)
	signed := signToken(t, "test-secret", userClaims(time.Now().Add(time.Hour)))

	claims, err := svc.VerifyToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.Sub)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	svc := NewAuthService("test-secret", "admin@example.com", "pw", nil)
	signed := signToken(t, "other-secret", userClaims(time.Now().Add(time.Hour)))

	_, err := svc.VerifyToken(signed)
	assert.Error(t, err)
}

func TestVerifyToken_RejectsExpiredToken(t *testing.T) {
	svc := NewAuthService("test-secret", "admin@example.com", "pw", nil)
	signed := signToken(t, "test-secret", userClaims(time.Now().Add(-time.Hour)))

	_, err := svc.VerifyToken(signed)
	assert.Error(t, err)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	svc := NewAuthService("test-secret", "admin@example.com", "pw", nil)

	_, err := svc.VerifyToken("not.a.token")
	assert.Error(t, err)
}
