package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	audit := newTestAudit(t, st)
	users := &UserService{Store: st, Audit: audit}
	categories := &CategoryService{Store: st, Audit: audit}

	alice, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "bob@example.com", "secret1", nil)
	require.NoError(t, err)

	t.Run("creates category", func(t *testing.T) {
		c, err := categories.CreateCategory(ctx, alice.ID, "Work", "blue")
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		require.Equal(t, alice.ID, c.OwnerID)
	})

	t.Run("rejects duplicate name for same owner", func(t *testing.T) {
		_, err := categories.CreateCategory(ctx, alice.ID, "Work", "red")
		require.ErrorIs(t, err, ErrDuplicateCategory)
	})

	t.Run("rejects duplicate color for same owner", func(t *testing.T) {
		_, err := categories.CreateCategory(ctx, alice.ID, "Chores", "blue")
		require.ErrorIs(t, err, ErrDuplicateCategory)
	})

	t.Run("same name allowed for other owner", func(t *testing.T) {
		_, err := categories.CreateCategory(ctx, bob.ID, "Work", "blue")
		require.NoError(t, err)
	})

	t.Run("rejects invalid name", func(t *testing.T) {
		_, err := categories.CreateCategory(ctx, alice.ID, "ab", "green")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	audit := newTestAudit(t, st)
	users := &UserService{Store: st, Audit: audit}
	categories := &CategoryService{Store: st, Audit: audit}
	todos := &TodoService{Store: st, Audit: audit}

	alice, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)
	c, err := categories.CreateCategory(ctx, alice.ID, "Work", "blue")
	require.NoError(t, err)

	t.Run("rejected while todos reference it", func(t *testing.T) {
		td, err := todos.CreateTodo(ctx, alice.ID, c.ID, "write report", "", false)
		require.NoError(t, err)

		require.ErrorIs(t, categories.DeleteCategory(ctx, c.ID), ErrCategoryInUse)

		require.NoError(t, todos.DeleteTodo(ctx, td.ID))
	})

	t.Run("deletes empty category", func(t *testing.T) {
		require.NoError(t, categories.DeleteCategory(ctx, c.ID))

		_, err := categories.GetCategory(ctx, c.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown category", func(t *testing.T) {
		require.ErrorIs(t, categories.DeleteCategory(ctx, "no-such-id"), store.ErrNotFound)
	})
}

func TestCategoryService_ListCategoriesByOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	audit := newTestAudit(t, st)
	users := &UserService{Store: st, Audit: audit}
	categories := &CategoryService{Store: st, Audit: audit}

	alice, err := users.Register(ctx, "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "bob@example.com", "secret1", nil)
	require.NoError(t, err)

	_, err = categories.CreateCategory(ctx, alice.ID, "Work", "blue")
	require.NoError(t, err)
	_, err = categories.CreateCategory(ctx, alice.ID, "Chores", "red")
	require.NoError(t, err)
	_, err = categories.CreateCategory(ctx, bob.ID, "Work", "blue")
	require.NoError(t, err)

	got, err := categories.ListCategoriesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		require.Equal(t, alice.ID, c.OwnerID)
	}
}
