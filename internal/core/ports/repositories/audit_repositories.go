package repositories

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// AuditLogReader defines read operations for the audit trail
type AuditLogReader interface {
	// ListAuditLogs retrieves audit entries newest-first, optionally
	// filtered by deal and/or action.
	ListAuditLogs(ctx context.Context, dealID *string, action *domain.AuditAction, limit int) ([]domain.AuditLog, error)
}

// AuditLogWriter defines write operations for the audit trail. The log is
// append-only: there is no update or delete.
type AuditLogWriter interface {
	// SaveAuditLog appends a single entry outside of any enclosing
	// transaction. Deal mutations write their entries through the deal
	// repository instead, so entry and mutation commit together.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
}

// AuditLogRepositoryFacade combines all audit-log repository interfaces
type AuditLogRepositoryFacade interface {
	AuditLogReader
	AuditLogWriter
}
