package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	"github.com/nestapt/nest_backend/internal/models"
	"github.com/nestapt/nest_backend/internal/utils/mapping"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for the audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

const insertAuditQuery = `
	INSERT INTO audit_logs (audit_id, deal_id, actor, channel, executor, action, summary, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

// insertAuditLogsInTx appends audit entries inside an open transaction. Deal
// mutations route through here so entry and mutation commit together.
func insertAuditLogsInTx(ctx context.Context, tx pgx.Tx, entries []domain.AuditLog) error {
	for _, entry := range entries {
		m := mapping.ToModelAuditLog(entry)
		if _, err := tx.Exec(ctx, insertAuditQuery,
			m.AuditID, m.DealID, m.Actor, m.Channel, m.Executor, m.Action, m.Summary, m.Metadata, m.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert audit entry %s: %w", m.AuditID, err)
		}
	}
	return nil
}

// SaveAuditLog appends a single entry outside of any enclosing transaction.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := r.Pool.Exec(ctx, insertAuditQuery,
		m.AuditID, m.DealID, m.Actor, m.Channel, m.Executor, m.Action, m.Summary, m.Metadata, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry %s: %w", m.AuditID, err)
	}
	return nil
}

// ListAuditLogs retrieves audit entries newest-first, optionally filtered by
// deal and/or action.
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, dealID *string, action *domain.AuditAction, limit int) ([]domain.AuditLog, error) {
	query := `
		SELECT audit_id, deal_id, actor, channel, executor, action, summary, metadata, created_at
		FROM audit_logs
	`
	args := []any{}
	where := ""
	if dealID != nil {
		args = append(args, *dealID)
		where = fmt.Sprintf(" WHERE deal_id = $%d", len(args))
	}
	if action != nil {
		args = append(args, string(*action))
		if where == "" {
			where = fmt.Sprintf(" WHERE action = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND action = $%d", len(args))
		}
	}
	args = append(args, limit)
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLog
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(&m.AuditID, &m.DealID, &m.Actor, &m.Channel, &m.Executor, &m.Action, &m.Summary, &m.Metadata, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating audit logs: %w", err)
	}
	return mapping.ToDomainAuditLogs(entries), nil
}
