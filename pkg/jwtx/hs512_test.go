package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "todos-api"

var testSecret = []byte("unit-test-secret-please-rotate")

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifier(testSecret, testIssuer)
	require.NoError(t, err)

	now := time.Now()
	in := NewClaims("01ABC", []string{"user", "admin"}, "alice", testIssuer, time.Hour, now)

	token, err := signer.Sign(in)
	require.NoError(t, err)

	out, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ABC", out.UserID)
	require.Equal(t, []string{"user", "admin"}, out.Roles)
	require.Equal(t, "alice", out.Username)
	require.True(t, out.HasRole("admin"))
	require.False(t, out.HasRole("audit"))
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, _ := NewSigner(testSecret)
	verifier, _ := NewVerifier(testSecret, testIssuer)

	// Issued well in the past so expiry is outside the leeway window.
	issued := time.Now().Add(-2 * time.Hour)
	token, err := signer.Sign(NewClaims("01ABC", []string{"user"}, "alice", testIssuer, time.Minute, issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, _ := NewSigner([]byte("other-secret"))
	verifier, _ := NewVerifier(testSecret, testIssuer)

	token, err := signer.Sign(NewClaims("01ABC", []string{"user"}, "alice", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()

	verifier, _ := NewVerifier(testSecret, testIssuer)

	// HS256-signed token with the correct secret must still be rejected.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256,
		NewClaims("01ABC", []string{"user"}, "alice", testIssuer, time.Hour, time.Now()))
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier, _ := NewVerifier(testSecret, testIssuer)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := verifier.Verify(raw)
		require.Error(t, err, "input %q", raw)
	}
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, _ := NewSigner(testSecret)
	verifier, _ := NewVerifier(testSecret, testIssuer)

	token, err := signer.Sign(NewClaims("01ABC", []string{"user"}, "alice", "someone-else", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestNewSignerRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewSigner(nil)
	require.ErrorIs(t, err, ErrNoSecret)
	_, err = NewVerifier(nil, testIssuer)
	require.ErrorIs(t, err, ErrNoSecret)
}
