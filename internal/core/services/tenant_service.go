package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// tenantService manages tenants.
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
	auditRepo  portsrepo.AuditLogRepositoryFacade
}

// NewTenantService creates a new tenant service.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo, auditRepo: auditRepo}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// CreateTenant registers a new tenant.
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, channel domain.Channel) (*domain.Tenant, error) {
	now := time.Now().UTC()
	tenant := domain.Tenant{
		TenantID:    uuid.NewString(),
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Notes:       req.Notes,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	audit := newAudit(domain.ActionCreateTenant, fmt.Sprintf("Created tenant %s", tenant.FullName), "", channel, nil)
	if err := s.auditRepo.SaveAuditLog(ctx, audit); err != nil {
		s.LogWarn(ctx, "Failed to write tenant audit entry", slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenant.TenantID))
	return &tenant, nil
}

// GetTenantByID retrieves a tenant.
func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}

// ListTenants retrieves tenants, optionally including archived ones.
func (s *tenantService) ListTenants(ctx context.Context, includeArchived bool) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// UpdateTenant changes tenant fields, including the archived flag.
func (s *tenantService) UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, channel domain.Channel) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}

	if req.FullName != nil {
		tenant.FullName = *req.FullName
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.CompanyName != nil {
		tenant.CompanyName = req.CompanyName
	}
	if req.Notes != nil {
		tenant.Notes = req.Notes
	}
	if req.IsArchived != nil {
		tenant.IsArchived = *req.IsArchived
	}
	tenant.UpdatedAt = time.Now().UTC()

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}

	audit := newAudit(domain.ActionUpdateTenant, fmt.Sprintf("Updated tenant %s", tenant.FullName), "", channel, nil)
	if err := s.auditRepo.SaveAuditLog(ctx, audit); err != nil {
		s.LogWarn(ctx, "Failed to write tenant audit entry", slog.String("error", err.Error()))
	}
	return tenant, nil
}
