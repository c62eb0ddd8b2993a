package service

import (
	"fmt"
	"time"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims carried by a gateway session token.
type SessionClaims struct {
	DisplayName    string          `json:"name"`
	UserType       domain.UserType `json:"user_type"`
	ExternalNumber string          `json:"external_number"`

	jwt.RegisteredClaims
}

// SessionService mints and verifies short-lived HS256 session tokens for
// users the resolver has authenticated. The signing key is shared
// process-local state, fixed at construction.
type SessionService struct {
	SigningKey []byte
	Issuer     string
	TTL        time.Duration

	// Now overrides the clock for tests.
	Now func() time.Time
}

// Issue creates a session token for user, returning the token and its
// expiry.
func (s *SessionService) Issue(user domain.AuthenticatedUser) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.TTL)

	claims := SessionClaims{
		DisplayName:    user.DisplayName,
		UserType:       user.UserType,
		ExternalNumber: user.ExternalNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.SigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify parses and validates a session token, returning its claims.
func (s *SessionService) Verify(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.SigningKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
