package service

import (
	"time"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/pkg/jwtx"
)

// TokenService issues and verifies the session tokens handed out at login.
// Signing key and expiry are process-wide configuration, loaded once at
// startup and read-only afterwards.
type TokenService struct {
	Signer   *jwtx.Signer
	Verifier *jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue produces a signed, time-bounded token embedding the user's identity
// and roles.
func (s *TokenService) Issue(u domain.User) (string, error) {
	claims := jwtx.NewClaims(u.ID, u.Roles.Strings(), u.Username, s.Issuer, s.TTL, time.Now())
	return s.Signer.Sign(claims)
}

// Verify validates a token string and returns its claims. This is the only
// way identity is ever extracted from a token.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}
