package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim value required for dashboard routes.
const RoleAdmin = "admin"

// Claims are the token claims issued by the external identity provider for
// dashboard users.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager verifies dashboard access tokens. Token issuance belongs to the
// identity provider; this side only parses and checks.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager with the shared HS256 secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// ParseToken verifies the signature and expiry of an access token and
// returns its claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	return claims, nil
}
