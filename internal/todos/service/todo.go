package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/pkg/idx"
)

// TodoService maintains todos and their edges to users and categories.
type TodoService struct {
	Store store.Store
	Audit *AuditService
}

// CreateTodo creates a todo for ownerID against one of their categories.
// The category must exist and belong to the same owner; a foreign owner's
// category reports not-found rather than leaking its existence.
func (s *TodoService) CreateTodo(ctx context.Context, ownerID, categoryID, title, description string, urgent bool) (domain.Todo, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return domain.Todo{}, err
	}
	if err := domain.ValidateDescription(description); err != nil {
		return domain.Todo{}, err
	}

	category, err := s.Store.Categories().GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrCategoryNotFound
		}
		return domain.Todo{}, err
	}
	if category.OwnerID != ownerID {
		return domain.Todo{}, ErrCategoryNotFound
	}

	now := time.Now().UTC()
	t := domain.Todo{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		CategoryID:  categoryID,
		Title:       title,
		Description: description,
		Urgent:      urgent,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Todos().CreateTodo(ctx, t); err != nil {
		return domain.Todo{}, err
	}

	s.Audit.Record(ctx, fmt.Sprintf("todo created: %s (%s)", t.Title, t.ID))
	return t, nil
}

// GetTodo fetches a todo by id, for ownership checks by the caller.
func (s *TodoService) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	return s.Store.Todos().GetTodoByID(ctx, id)
}

// ListTodosByOwner returns the owner's todos in creation order.
func (s *TodoService) ListTodosByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return s.Store.Todos().ListTodosByOwner(ctx, ownerID)
}

// ListTodosByCategory returns a category's todos in creation order.
func (s *TodoService) ListTodosByCategory(ctx context.Context, categoryID string) ([]domain.Todo, error) {
	return s.Store.Todos().ListTodosByCategory(ctx, categoryID)
}

// UpdateTodo merges the set fields of patch onto an existing todo. Fields
// are validated before the merge. Completing a todo stamps the completion
// time once; re-opening clears it.
func (s *TodoService) UpdateTodo(ctx context.Context, todoID string, patch domain.TodoPatch) (domain.Todo, error) {
	t, err := s.Store.Todos().GetTodoByID(ctx, todoID)
	if err != nil {
		return domain.Todo{}, err
	}

	if patch.Title != nil {
		if err := domain.ValidateTitle(*patch.Title); err != nil {
			return domain.Todo{}, err
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		if err := domain.ValidateDescription(*patch.Description); err != nil {
			return domain.Todo{}, err
		}
		t.Description = *patch.Description
	}
	if patch.Urgent != nil {
		t.Urgent = *patch.Urgent
	}
	if patch.Completed != nil {
		switch {
		case *patch.Completed && !t.Completed:
			now := time.Now().UTC()
			t.CompletedAt = &now
		case !*patch.Completed:
			t.CompletedAt = nil
		}
		t.Completed = *patch.Completed
	}

	t.UpdatedAt = time.Now().UTC()
	if err := s.Store.Todos().UpdateTodo(ctx, t); err != nil {
		return domain.Todo{}, err
	}

	s.Audit.Record(ctx, "todo updated: "+t.ID)
	return t, nil
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, todoID string) error {
	if err := s.Store.Todos().DeleteTodo(ctx, todoID); err != nil {
		return err
	}
	s.Audit.Record(ctx, "todo deleted: "+todoID)
	return nil
}
