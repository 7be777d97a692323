package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	DealRepo     DealRepositoryWithTx
	UnitRepo     UnitRepositoryFacade
	TenantRepo   TenantRepositoryFacade
	DocumentRepo DocumentRepositoryFacade
	FinanceRepo  FinanceAttachmentRepositoryFacade
	AuditRepo    AuditLogRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
}
