package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoles(t *testing.T) {
	t.Run("valid roles deduplicated", func(t *testing.T) {
		roles, err := ParseRoles([]string{"user", "admin", "user"})
		require.NoError(t, err)
		require.Equal(t, []string{"user", "admin"}, roles.Strings())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := ParseRoles([]string{"user", "superuser"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := ParseRoles(nil)
		require.Error(t, err)
	})
}

func TestRoleSet_Has(t *testing.T) {
	require.True(t, DefaultRoles().Has(RoleUser))
	require.False(t, DefaultRoles().Has(RoleAdmin))
}

func TestUser_Redact(t *testing.T) {
	u := User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$05$...",
		Roles:        DefaultRoles(),
		Active:       true,
	}

	p := u.Redact()
	require.Equal(t, "alice", p.Username)
	require.Equal(t, []string{"user"}, p.Roles)
}
