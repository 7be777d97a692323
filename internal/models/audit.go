package models

import "time"

// AuditLog represents a row of the audit_logs table. Metadata is stored as
// a JSONB column.
type AuditLog struct {
	AuditID   string            `db:"audit_id"`
	DealID    *string           `db:"deal_id"`
	Actor     string            `db:"actor"`
	Channel   string            `db:"channel"`
	Executor  string            `db:"executor"`
	Action    string            `db:"action"`
	Summary   string            `db:"summary"`
	Metadata  map[string]string `db:"metadata"`
	CreatedAt time.Time         `db:"created_at"`
}
