package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
	"github.com/smicho01/todos-rest-api/pkg/idx"
)

// AuditService is the append-only sink for significant actions. Every guard
// decision and mutation goes through Record. Writes are best-effort: they
// never fail or delay the triggering operation.
type AuditService struct {
	Store  store.Store
	Logger *slog.Logger

	wg sync.WaitGroup
}

// Record writes one audit entry tagged with the acting user when the request
// context carries verified claims, and mirrors it to the operational log.
// Persistence happens in the background; failures are swallowed.
func (s *AuditService) Record(ctx context.Context, message string) {
	entry := domain.AuditEntry{
		ID:        idx.New().String(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if claims, ok := httpx.ClaimsFromContext(ctx); ok {
		entry.ActorID = claims.UserID
		entry.ActorUsername = claims.Username
	}

	s.Logger.Info("audit",
		"message", entry.Message,
		"actor_id", entry.ActorID,
		"actor_username", entry.ActorUsername,
	)

	// Detached from the request context: the caller's response must not wait
	// for the audit write, and a cancelled request must not lose the entry.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Store.Audit().AppendAuditEntry(writeCtx, entry); err != nil {
			s.Logger.Warn("audit write failed", "err", err, "message", entry.Message)
		}
	}()
}

// Flush blocks until all in-flight audit writes have finished. Called on
// shutdown and by tests.
func (s *AuditService) Flush() {
	s.wg.Wait()
}
