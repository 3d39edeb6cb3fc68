package sqlite

import (
	"context"
	"database/sql"

	"github.com/smicho01/todos-rest-api/internal/todos/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return sql.ErrTxDone } // migrate before starting a tx

func (t *txStore) Users() store.Users           { return &usersRepo{db: t.tx} }
func (t *txStore) Categories() store.Categories { return &categoriesRepo{db: t.tx} }
func (t *txStore) Todos() store.Todos           { return &todosRepo{db: t.tx} }
func (t *txStore) Audit() store.Audit           { return &auditRepo{db: t.tx} }
