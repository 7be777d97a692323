package services

import (
	"context"
	"io"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/dto"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Deal      DealSvcFacade
	Journey   JourneySvcFacade
	Unit      UnitSvcFacade
	Tenant    TenantSvcFacade
	Document  DocumentSvcFacade
	Dashboard DashboardSvcFacade
	Audit     AuditSvcFacade
}

// UnitSvcFacade manages rentable units.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, req dto.CreateUnitRequest, channel domain.Channel) (*domain.Unit, error)
	GetUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)
	ListUnits(ctx context.Context, status *domain.UnitStatus) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, unitID string, req dto.UpdateUnitRequest, channel domain.Channel) (*domain.Unit, error)
}

// TenantSvcFacade manages tenants.
type TenantSvcFacade interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, channel domain.Channel) (*domain.Tenant, error)
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context, includeArchived bool) ([]domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, channel domain.Channel) (*domain.Tenant, error)
}

// DocumentSvcFacade serves generated documents and their files.
type DocumentSvcFacade interface {
	ListDocuments(ctx context.Context, dealID *string) ([]dto.DocumentResponse, error)
	GetDocumentByID(ctx context.Context, documentID string) (*dto.DocumentResponse, error)
	// OpenVersionFile streams the HTML or PDF artifact of a version.
	OpenVersionFile(ctx context.Context, documentID, versionID string, pdf bool) (io.ReadCloser, string, error)
	// OpenLatestPDF streams the latest version's PDF.
	OpenLatestPDF(ctx context.Context, documentID string) (io.ReadCloser, string, error)
	// ListAttachments returns a deal's finance attachments.
	ListAttachments(ctx context.Context, dealID string) ([]domain.FinanceAttachment, error)
}

// DashboardSvcFacade aggregates counts for the dashboard.
type DashboardSvcFacade interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummary, error)
}

// AuditSvcFacade reads the append-only audit trail.
type AuditSvcFacade interface {
	ListAuditLogs(ctx context.Context, dealID *string, action *domain.AuditAction, limit int) ([]domain.AuditLog, error)
}
