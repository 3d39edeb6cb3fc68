package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for access tokens when the
// process configuration does not override it.
const DefaultTokenTTL = 1 * time.Hour

// Claims are the access-token claims shared across the service. The custom
// field names (user_id, user_roles, user_username) are part of the wire
// contract and must not change.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the authenticated user's identifier.
	UserID string `json:"user_id"`

	// Roles are the role tags carried by the user at login time,
	// e.g. ["user"] or ["user","admin"].
	Roles []string `json:"user_roles"`

	// Username for the authenticated user, mainly for audit entries.
	Username string `json:"user_username"`
}

// NewClaims builds minimally-correct claims for a freshly issued token.
func NewClaims(userID string, roles []string, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   userID,
		Roles:    roles,
		Username: username,
	}
}

// HasRole reports whether the claims carry the given role tag.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
