package sqlite

import (
	"context"
	"database/sql"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
)

type todosRepo struct {
	db querier
}

const todoColumns = `id, owner_id, category_id, title, description, urgent, completed, completed_at, created_at, updated_at`

func scanTodo(row rowScanner) (domain.Todo, error) {
	var t domain.Todo
	var completedAt sql.NullTime
	if err := row.Scan(&t.ID, &t.OwnerID, &t.CategoryID, &t.Title, &t.Description,
		&t.Urgent, &t.Completed, &completedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Todo{}, err
	}
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	return t, nil
}

func completedAtArg(t *domain.Todo) sql.NullTime {
	if t.CompletedAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t.CompletedAt, Valid: true}
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.CategoryID, t.Title, t.Description,
		t.Urgent, t.Completed, completedAtArg(&t), t.CreatedAt, t.UpdatedAt)
	return mapConstraint(err)
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	t, err := scanTodo(row)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) listTodos(ctx context.Context, where string, arg any) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE `+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todosRepo) ListTodosByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return r.listTodos(ctx, `owner_id = ?`, ownerID)
}

func (r *todosRepo) ListTodosByCategory(ctx context.Context, categoryID string) ([]domain.Todo, error) {
	return r.listTodos(ctx, `category_id = ?`, categoryID)
}

func (r *todosRepo) CountTodosByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM todos WHERE category_id = ?`, categoryID).Scan(&n)
	return n, err
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos
		 SET title = ?, description = ?, urgent = ?, completed = ?, completed_at = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, t.Urgent, t.Completed, completedAtArg(&t), t.UpdatedAt, t.ID)
	if err != nil {
		return err
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

func (r *todosRepo) DeleteTodo(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
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

func (r *todosRepo) DeleteTodosByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE owner_id = ?`, ownerID)
	return err
}
