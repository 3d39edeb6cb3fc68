package sqlite

import (
	"context"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
)

type categoriesRepo struct {
	db querier
}

const categoryColumns = `id, owner_id, name, color, created_at, updated_at`

func scanCategory(row rowScanner) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Color, c.CreatedAt, c.UpdatedAt)
	return mapConstraint(err)
}

func (r *categoriesRepo) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) FindCategoryConflict(ctx context.Context, ownerID, name, color string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE owner_id = ? AND (name = ? OR color = ?) LIMIT 1`,
		ownerID, name, color)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *categoriesRepo) DeleteCategoriesByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE owner_id = ?`, ownerID)
	return mapConstraint(err)
}
