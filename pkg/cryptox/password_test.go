package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.NoError(t, VerifyPassword("secret1", hash))
	require.ErrorIs(t, VerifyPassword("wrong", hash), ErrPasswordMismatch)
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("secret1")
	require.NoError(t, err)
	b, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	require.Error(t, VerifyPassword("secret1", "not-a-bcrypt-hash"))
}
