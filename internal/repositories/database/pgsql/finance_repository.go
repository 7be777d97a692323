package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	"github.com/nestapt/nest_backend/internal/models"
	"github.com/nestapt/nest_backend/internal/utils/mapping"
)

type PgxFinanceAttachmentRepository struct {
	BaseRepository
}

// newPgxFinanceAttachmentRepository creates a new read repository for finance
// attachments. Inserts go through the deal repository's SaveInvoiceAttachment.
func newPgxFinanceAttachmentRepository(pool *pgxpool.Pool) portsrepo.FinanceAttachmentRepositoryFacade {
	return &PgxFinanceAttachmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FinanceAttachmentRepositoryFacade = (*PgxFinanceAttachmentRepository)(nil)

// ListAttachmentsByDealID retrieves a deal's attachments newest-first.
func (r *PgxFinanceAttachmentRepository) ListAttachmentsByDealID(ctx context.Context, dealID string) ([]domain.FinanceAttachment, error) {
	query := `
		SELECT attachment_id, deal_id, attachment_type, file_name, file_path, channel, uploaded_at
		FROM finance_attachments
		WHERE deal_id = $1
		ORDER BY uploaded_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments for deal %s: %w", dealID, err)
	}
	defer rows.Close()

	var ms []models.FinanceAttachment
	for rows.Next() {
		var m models.FinanceAttachment
		if err := rows.Scan(&m.AttachmentID, &m.DealID, &m.AttachmentType, &m.FileName, &m.FilePath, &m.Channel, &m.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating attachments: %w", err)
	}
	return mapping.ToDomainFinanceAttachments(ms), nil
}

// HasAttachmentOfType reports whether the deal has at least one attachment of
// the given type.
func (r *PgxFinanceAttachmentRepository) HasAttachmentOfType(ctx context.Context, dealID string, attachmentType domain.FinanceAttachmentType) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM finance_attachments WHERE deal_id = $1 AND attachment_type = $2);`
	if err := r.Pool.QueryRow(ctx, query, dealID, string(attachmentType)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s attachment for deal %s: %w", attachmentType, dealID, err)
	}
	return exists, nil
}
