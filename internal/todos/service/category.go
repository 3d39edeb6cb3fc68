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

// CategoryService maintains the user→category side of the entity graph.
// Membership is computed by reverse lookup on owner_id; there are no
// denormalized collections to keep in sync.
type CategoryService struct {
	Store store.Store
	Audit *AuditService
}

// CreateCategory creates a category for ownerID. A category sharing the name
// or the colour with an existing one of the same owner is rejected. The
// pre-check gives the friendly error; the UNIQUE constraints make the
// decision final under concurrency.
func (s *CategoryService) CreateCategory(ctx context.Context, ownerID, name, color string) (domain.Category, error) {
	if err := domain.ValidateCategoryName(name); err != nil {
		return domain.Category{}, err
	}
	if err := domain.ValidateColor(color); err != nil {
		return domain.Category{}, err
	}

	if _, err := s.Store.Categories().FindCategoryConflict(ctx, ownerID, name, color); err == nil {
		return domain.Category{}, ErrDuplicateCategory
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Category{}, err
	}

	now := time.Now().UTC()
	c := domain.Category{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Categories().CreateCategory(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrDuplicateCategory
		}
		return domain.Category{}, err
	}

	s.Audit.Record(ctx, fmt.Sprintf("category created: %s (%s)", c.Name, c.ID))
	return c, nil
}

// GetCategory fetches a category by id, for ownership checks by the caller.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	return s.Store.Categories().GetCategoryByID(ctx, id)
}

// ListCategoriesByOwner returns the owner's categories in creation order.
func (s *CategoryService) ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	return s.Store.Categories().ListCategoriesByOwner(ctx, ownerID)
}

// DeleteCategory removes a category. Deletion is rejected while todos still
// reference the category, so the todo→category edge can never dangle.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Todos().CountTodosByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCategoryInUse
		}
		if err := tx.Categories().DeleteCategory(ctx, id); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrCategoryInUse
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Audit.Record(ctx, "category deleted: "+id)
	return nil
}
