package repositories

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// FinanceAttachmentReader defines read operations for finance attachments
type FinanceAttachmentReader interface {
	// ListAttachmentsByDealID retrieves a deal's attachments newest-first.
	ListAttachmentsByDealID(ctx context.Context, dealID string) ([]domain.FinanceAttachment, error)

	// HasAttachmentOfType reports whether the deal has at least one
	// attachment of the given type.
	HasAttachmentOfType(ctx context.Context, dealID string, attachmentType domain.FinanceAttachmentType) (bool, error)
}

// FinanceAttachmentRepositoryFacade combines all finance-attachment
// repository interfaces. Inserts happen through the deal repository's
// transactional SaveInvoiceAttachment.
type FinanceAttachmentRepositoryFacade interface {
	FinanceAttachmentReader
}
