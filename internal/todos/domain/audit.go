package domain

import "time"

// AuditEntry is one append-only record of a significant action. Actor fields
// are empty when the acting user is unknown (e.g. failed authentication).
type AuditEntry struct {
	ID            string
	Message       string
	ActorID       string
	ActorUsername string
	CreatedAt     time.Time
}
