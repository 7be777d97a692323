package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	unitRepo := newPgxUnitRepository(dbPool)
	tenantRepo := newPgxTenantRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	financeRepo := newPgxFinanceAttachmentRepository(dbPool)
	auditRepo := newPgxAuditLogRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	dealRepo := newPgxDealRepository(dbPool, unitRepo)

	return portsrepo.RepositoryProvider{
		DealRepo:     dealRepo,
		UnitRepo:     unitRepo,
		TenantRepo:   tenantRepo,
		DocumentRepo: documentRepo,
		FinanceRepo:  financeRepo,
		AuditRepo:    auditRepo,
		SettingsRepo: settingsRepo,
	}
}
