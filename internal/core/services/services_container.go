package services

import (
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
)

// NewServiceContainer wires every application service with its repositories
// and collaborators. Called once at startup.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	generator portssvc.DocumentGenerator,
	email portssvc.InvoiceEmailSender,
	store portssvc.FileStore,
	dealCfg DealServiceConfig,
) *portssvc.ServiceContainer {
	journey := NewJourneyService(repos.DocumentRepo, repos.FinanceRepo)
	return &portssvc.ServiceContainer{
		Journey: journey,
		Deal: NewDealService(
			repos.DealRepo,
			repos.UnitRepo,
			repos.TenantRepo,
			repos.DocumentRepo,
			repos.SettingsRepo,
			journey,
			generator,
			email,
			store,
			dealCfg,
		),
		Unit:      NewUnitService(repos.UnitRepo, repos.AuditRepo),
		Tenant:    NewTenantService(repos.TenantRepo, repos.AuditRepo),
		Document:  NewDocumentService(repos.DocumentRepo, repos.FinanceRepo, store),
		Dashboard: NewDashboardService(repos.DealRepo, repos.UnitRepo),
		Audit:     NewAuditService(repos.AuditRepo),
	}
}
