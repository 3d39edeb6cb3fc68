package sqlite

import (
	"context"
	"database/sql"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
)

type auditRepo struct {
	db querier
}

func (r *auditRepo) AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, message, actor_id, actor_username, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Message, nullString(e.ActorID), nullString(e.ActorUsername), e.CreatedAt)
	return err
}

func (r *auditRepo) ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message, actor_id, actor_username, created_at FROM audit_log ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var actorID, actorUsername sql.NullString
		if err := rows.Scan(&e.ID, &e.Message, &actorID, &actorUsername, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.ActorID = actorID.String
		e.ActorUsername = actorUsername.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
