package repositories

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a tenant by its unique identifier.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves tenants, optionally including archived ones.
	ListTenants(ctx context.Context, includeArchived bool) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant inserts a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant persists changes to an existing tenant.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
