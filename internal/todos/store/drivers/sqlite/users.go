package sqlite

import (
	"context"
	"strings"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
)

type usersRepo struct {
	db querier
}

const userColumns = `id, username, email, password_hash, roles, active, penalties, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var roles string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &roles,
		&u.Active, &u.Penalties, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	for _, tag := range strings.Fields(roles) {
		u.Roles = append(u.Roles, domain.Role(tag))
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, strings.Join(u.Roles.Strings(), " "),
		u.Active, u.Penalties, u.CreatedAt, u.UpdatedAt)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (domain.User, error) {
	var (
		where string
		args  []any
	)
	switch {
	case username != "" && email != "":
		where, args = `username = ? OR email = ?`, []any{username, email}
	case username != "":
		where, args = `username = ?`, []any{username}
	case email != "":
		where, args = `email = ?`, []any{email}
	default:
		return domain.User{}, store.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where+` LIMIT 1`, args...)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET username = ?, email = ?, password_hash = ?, roles = ?, active = ?, penalties = ?, updated_at = ?
		 WHERE id = ?`,
		u.Username, u.Email, u.PasswordHash, strings.Join(u.Roles.Strings(), " "),
		u.Active, u.Penalties, u.UpdatedAt, u.ID)
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

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
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
