package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret    = errors.New("jwtx: empty signing secret")
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Signer signs claims with a process-wide HMAC secret using HS512.
type Signer struct {
	secret []byte
}

// NewSigner creates an HS512 signer. The secret is loaded once at startup
// and treated as read-only afterwards.
func NewSigner(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &Signer{secret: secret}, nil
}

// Sign produces the compact serialized JWT for the given claims.
func (s *Signer) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, c)
	return tok.SignedString(s.secret)
}

// Verifier validates an HS512 token and returns its claims if it is legit.
// Decoding without verification is deliberately not offered: the only way
// to obtain Claims from a token string is through Verify.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewVerifier creates a verifier bound to the same secret as the signer.
// An empty issuer means the iss claim is not enforced.
func NewVerifier(secret []byte, issuer string) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &Verifier{secret: secret, issuer: issuer, leeway: 30 * time.Second}, nil
}

// Verify parses and validates token, pinning the algorithm to HS512.
func (v *Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
				return nil, ErrAlgMismatch
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithLeeway(v.leeway),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, ErrAlgMismatch), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
