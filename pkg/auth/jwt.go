package auth

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("expired token")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrMissingJWTKey = errors.New("JWT secret key is not configured")
)

// Claims are the claims of a platform-issued access token. The platform
// handles sign-up and sign-in; this service only verifies the tokens it
// mints, so there is no token generation here.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the identity reference carried by the token
func (c *Claims) UserID() string {
	return c.Subject
}

// JWTService validates platform-issued JWT access tokens
type JWTService struct {
	secretKey []byte
}

// NewJWTService creates a JWTService with the shared secret from
// JWT_SECRET.
func NewJWTService() (*JWTService, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}

	return &JWTService{secretKey: []byte(secretKey)}, nil
}

// ValidateToken verifies a token's signature and expiry and returns its
// claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
