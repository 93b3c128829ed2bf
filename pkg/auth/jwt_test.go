package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service, err := NewJWTService()
	require.NoError(t, err)

	tokenString := signToken(t, "test-secret", Claims{
		Email: "student@example.com",
		Name:  "Student One",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := service.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID())
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "Student One", claims.Name)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service, err := NewJWTService()
	require.NoError(t, err)

	tokenString := signToken(t, "test-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err = service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service, err := NewJWTService()
	require.NoError(t, err)

	tokenString := signToken(t, "another-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err = service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MissingSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service, err := NewJWTService()
	require.NoError(t, err)

	tokenString := signToken(t, "test-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err = service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}
