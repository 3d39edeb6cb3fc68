package store

import (
	"context"
	"errors"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrConflict      = errors.New("store: constraint conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Categories() Categories
	Todos() Todos
	Audit() Audit

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back if fn errors,
	// committed otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsernameOrEmail is the combined lookup backing registration
	// conflict checks and directory search. Either argument may be empty.
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (domain.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser persists all mutable fields of u and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	DeleteUser(ctx context.Context, id string) error
}

type Categories interface {
	// CreateCategory inserts a new category. Returns ErrAlreadyExists when
	// the owner already has a category with the same name or colour; the
	// UNIQUE constraints close the check-then-insert race.
	CreateCategory(ctx context.Context, c domain.Category) error

	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)

	// FindCategoryConflict returns an existing category of the owner sharing
	// the name or the colour, for the application-level duplicate pre-check.
	FindCategoryConflict(ctx context.Context, ownerID, name, color string) (domain.Category, error)

	// ListCategoriesByOwner returns the owner's categories in creation order.
	ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error)

	// DeleteCategory removes a category. Returns ErrConflict while todos
	// still reference it (FK RESTRICT).
	DeleteCategory(ctx context.Context, id string) error

	// DeleteCategoriesByOwner removes all of an owner's categories, for the
	// user cascade delete.
	DeleteCategoriesByOwner(ctx context.Context, ownerID string) error
}

type Todos interface {
	CreateTodo(ctx context.Context, t domain.Todo) error

	GetTodoByID(ctx context.Context, id string) (domain.Todo, error)

	// ListTodosByOwner returns the owner's todos in creation order.
	ListTodosByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)

	// ListTodosByCategory returns the category's todos in creation order.
	ListTodosByCategory(ctx context.Context, categoryID string) ([]domain.Todo, error)

	// CountTodosByCategory backs the category delete dependant check.
	CountTodosByCategory(ctx context.Context, categoryID string) (int, error)

	// UpdateTodo persists all mutable fields of t and bumps updated_at.
	UpdateTodo(ctx context.Context, t domain.Todo) error

	DeleteTodo(ctx context.Context, id string) error

	// DeleteTodosByOwner removes all of an owner's todos, for the user
	// cascade delete.
	DeleteTodosByOwner(ctx context.Context, ownerID string) error
}

type Audit interface {
	// AppendAuditEntry writes one audit record. Entries are append-only;
	// there is no update or delete.
	AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error

	// ListAuditEntries returns entries in creation order. Used by tests and
	// operational tooling only.
	ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error)
}
