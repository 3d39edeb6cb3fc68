package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/internal/todos/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func newTestAudit(t *testing.T, s store.Store) *AuditService {
	t.Helper()

	audit := &AuditService{
		Store:  s,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	t.Cleanup(audit.Flush)
	return audit
}
