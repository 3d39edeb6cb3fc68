package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st, Audit: newTestAudit(t, st)}

	t.Run("creates user with default role", func(t *testing.T) {
		u, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice", u.Username)
		require.True(t, u.Active)
		require.Equal(t, []string{"user"}, u.Roles.Strings())
		require.NotEqual(t, "secret1", u.PasswordHash)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		_, err := users.Register(ctx, "alice", "other@example.com", "secret1", nil)
		require.ErrorIs(t, err, ErrUsernameTaken)
		require.ErrorIs(t, err, ErrAccountTaken)
	})

	t.Run("rejects taken email", func(t *testing.T) {
		_, err := users.Register(ctx, "bob", "alice@example.com", "secret1", nil)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		var vErr *domain.ValidationError

		_, err := users.Register(ctx, "ab", "short@example.com", "secret1", nil)
		require.ErrorAs(t, err, &vErr)

		_, err = users.Register(ctx, "carol", "not-an-email", "secret1", nil)
		require.ErrorAs(t, err, &vErr)

		_, err = users.Register(ctx, "carol", "carol@example.com", "tiny", nil)
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := users.Register(ctx, "carol", "carol@example.com", "secret1", []string{"superuser"})
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("accepts explicit roles", func(t *testing.T) {
		u, err := users.Register(ctx, "root", "root@example.com", "secret1", []string{"admin", "user"})
		require.NoError(t, err)
		require.True(t, u.Roles.Has(domain.RoleAdmin))
	})
}

func TestUserService_VerifyCredentials(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st, Audit: newTestAudit(t, st)}

	u, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := users.VerifyCredentials(ctx, "alice@example.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := users.VerifyCredentials(ctx, "nobody@example.com", "secret1")
		require.ErrorIs(t, err, ErrUserUnknown)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := users.VerifyCredentials(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := false
		_, err := users.AdminPatch(ctx, u.ID, domain.UserPatch{Active: &inactive})
		require.NoError(t, err)

		_, err = users.VerifyCredentials(ctx, "alice@example.com", "secret1")
		require.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestUserService_FindPublicProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st, Audit: newTestAudit(t, st)}

	u, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		p, err := users.FindPublicProfile(ctx, "alice", "")
		require.NoError(t, err)
		require.Equal(t, u.ID, p.ID)
	})

	t.Run("by email", func(t *testing.T) {
		p, err := users.FindPublicProfile(ctx, "", "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, p.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := users.FindPublicProfile(ctx, "nobody", "")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("no criteria", func(t *testing.T) {
		_, err := users.FindPublicProfile(ctx, "", "")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserService_AdminPatch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st, Audit: newTestAudit(t, st)}

	u, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)
	_, err = users.Register(ctx, "bob", "bob@example.com", "secret1", nil)
	require.NoError(t, err)

	t.Run("updates fields", func(t *testing.T) {
		name := "alice2"
		penalties := 3
		got, err := users.AdminPatch(ctx, u.ID, domain.UserPatch{
			Username:  &name,
			Roles:     []string{"admin"},
			Penalties: &penalties,
		})
		require.NoError(t, err)
		require.Equal(t, "alice2", got.Username)
		require.True(t, got.Roles.Has(domain.RoleAdmin))
		require.Equal(t, 3, got.Penalties)
	})

	t.Run("rehashes password", func(t *testing.T) {
		pw := "new-secret"
		got, err := users.AdminPatch(ctx, u.ID, domain.UserPatch{Password: &pw})
		require.NoError(t, err)
		require.NotEqual(t, u.PasswordHash, got.PasswordHash)

		_, err = users.VerifyCredentials(ctx, "alice@example.com", "new-secret")
		require.NoError(t, err)
	})

	t.Run("rejects conflicting username", func(t *testing.T) {
		name := "bob"
		_, err := users.AdminPatch(ctx, u.ID, domain.UserPatch{Username: &name})
		require.ErrorIs(t, err, ErrAccountTaken)
	})

	t.Run("rejects invalid patch", func(t *testing.T) {
		penalties := -1
		_, err := users.AdminPatch(ctx, u.ID, domain.UserPatch{Penalties: &penalties})
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "ghost"
		_, err := users.AdminPatch(ctx, "no-such-id", domain.UserPatch{Username: &name})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	audit := newTestAudit(t, st)
	users := &UserService{Store: st, Audit: audit}
	categories := &CategoryService{Store: st, Audit: audit}
	todos := &TodoService{Store: st, Audit: audit}

	u, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)
	c, err := categories.CreateCategory(ctx, u.ID, "Work", "blue")
	require.NoError(t, err)
	td, err := todos.CreateTodo(ctx, u.ID, c.ID, "write report", "", false)
	require.NoError(t, err)

	t.Run("cascades categories and todos", func(t *testing.T) {
		require.NoError(t, users.DeleteUser(ctx, u.ID))

		_, err := users.GetUser(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = categories.GetCategory(ctx, c.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = todos.GetTodo(ctx, td.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		require.ErrorIs(t, users.DeleteUser(ctx, "no-such-id"), store.ErrNotFound)
	})
}
