package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nestapt/nest_backend/internal/core/domain"
)

// DealReader defines read operations for deal data
type DealReader interface {
	// FindDealByID retrieves a deal by its unique identifier.
	FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error)

	// ListDeals retrieves deals newest-first, optionally filtered by status.
	ListDeals(ctx context.Context, status *domain.DealStatus) ([]domain.Deal, error)

	// CountDealsByStatus returns the number of deals in each of the given statuses.
	CountDealsByStatus(ctx context.Context, statuses ...domain.DealStatus) (int, error)

	// CountBlockedDeals returns the number of non-cancelled deals carrying a blocked reason.
	CountBlockedDeals(ctx context.Context) (int, error)
}

// DealWriter defines write operations for deal data. Every method persists
// the deal mutation together with its audit entries in one database
// transaction, so a state transition and its audit trail commit or fail
// as a whole.
type DealWriter interface {
	// NextDealCode reserves and returns the next human-facing deal code.
	NextDealCode(ctx context.Context) (string, error)

	// CreateDeal inserts the deal, moves its unit to RESERVED and writes the
	// audit entries.
	CreateDeal(ctx context.Context, deal domain.Deal, audits []domain.AuditLog) error

	// UpdateDeal persists the deal row and writes the audit entries.
	UpdateDeal(ctx context.Context, deal domain.Deal, audits []domain.AuditLog) error

	// UpdateDealAndUnit persists the deal row, updates the unit status and
	// writes the audit entries. Used by close and cancel.
	UpdateDealAndUnit(ctx context.Context, deal domain.Deal, unit domain.Unit, audits []domain.AuditLog) error

	// SaveGeneratedDocument upserts the document aggregate, marks prior
	// versions non-latest, inserts the new version, persists the advanced
	// deal and writes the audit entries.
	SaveGeneratedDocument(ctx context.Context, deal domain.Deal, doc domain.Document, version domain.DocumentVersion, audits []domain.AuditLog) error

	// SaveInvoiceAttachment inserts the finance attachment, persists the
	// advanced deal and writes the audit entries.
	SaveInvoiceAttachment(ctx context.Context, deal domain.Deal, attachment domain.FinanceAttachment, audits []domain.AuditLog) error
}

// UnitStatusUpdater updates a unit's status inside an existing transaction.
// Implemented by the unit repository and consumed by the deal repository,
// mirroring how journal persistence reaches into account balances.
type UnitStatusUpdater interface {
	UpdateUnitStatusInTx(ctx context.Context, tx pgx.Tx, unitID string, status domain.UnitStatus) error
}

// DealRepositoryFacade combines all deal-related repository interfaces
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}

// DealRepositoryWithTx extends DealRepositoryFacade with transaction capabilities
type DealRepositoryWithTx interface {
	DealRepositoryFacade
	TransactionManager
}
