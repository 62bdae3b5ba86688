package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenValidity is how long an issued token stays acceptable.
const TokenValidity = time.Hour

// TokenService is responsible for creating and validating JWTs. Issuer and
// verifier share the same secret, injected at construction.
type TokenService struct {
	secretKey []byte
	now       func() time.Time
}

// NewTokenService creates a TokenService. An empty secret is a
// misconfiguration the process must not start with.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is not configured")
	}
	return &TokenService{secretKey: []byte(secret), now: time.Now}, nil
}

// GenerateToken creates a signed token binding the user id and an expiration
// instant one validity window from now.
func (s *TokenService) GenerateToken(userID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(TokenValidity).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses and verifies a token string and returns the user id it
// was issued for. A bad signature and an expired token produce the same
// error; callers are not told which check failed.
func (s *TokenService) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secretKey, nil
	})

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return sub, nil
}
