package services_test

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
)

// MockDealRepository is a mock type for the DealRepositoryWithTx interface
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealRepository) ListDeals(ctx context.Context, status *domain.DealStatus) ([]domain.Deal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealRepository) CountDealsByStatus(ctx context.Context, statuses ...domain.DealStatus) (int, error) {
	args := m.Called(ctx, statuses)
	return args.Int(0), args.Error(1)
}

func (m *MockDealRepository) CountBlockedDeals(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDealRepository) NextDealCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDealRepository) CreateDeal(ctx context.Context, deal domain.Deal, audits []domain.AuditLog) error {
	args := m.Called(ctx, deal, audits)
	return args.Error(0)
}

func (m *MockDealRepository) UpdateDeal(ctx context.Context, deal domain.Deal, audits []domain.AuditLog) error {
	args := m.Called(ctx, deal, audits)
	return args.Error(0)
}

func (m *MockDealRepository) UpdateDealAndUnit(ctx context.Context, deal domain.Deal, unit domain.Unit, audits []domain.AuditLog) error {
	args := m.Called(ctx, deal, unit, audits)
	return args.Error(0)
}

func (m *MockDealRepository) SaveGeneratedDocument(ctx context.Context, deal domain.Deal, doc domain.Document, version domain.DocumentVersion, audits []domain.AuditLog) error {
	args := m.Called(ctx, deal, doc, version, audits)
	return args.Error(0)
}

func (m *MockDealRepository) SaveInvoiceAttachment(ctx context.Context, deal domain.Deal, attachment domain.FinanceAttachment, audits []domain.AuditLog) error {
	args := m.Called(ctx, deal, attachment, audits)
	return args.Error(0)
}

func (m *MockDealRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDealRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDealRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockUnitRepository is a mock type for the UnitRepositoryFacade interface
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) ListUnits(ctx context.Context, status *domain.UnitStatus) ([]domain.Unit, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) CountUnitsByStatus(ctx context.Context, status domain.UnitStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) UpdateUnit(ctx context.Context, unit domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) UpdateUnitStatusInTx(ctx context.Context, tx pgx.Tx, unitID string, status domain.UnitStatus) error {
	args := m.Called(ctx, tx, unitID, status)
	return args.Error(0)
}

// MockTenantRepository is a mock type for the TenantRepositoryFacade interface
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context, includeArchived bool) ([]domain.Tenant, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

// MockDocumentRepository is a mock type for the DocumentRepositoryFacade interface
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByDealAndType(ctx context.Context, dealID string, docType domain.DocumentType) (*domain.Document, error) {
	args := m.Called(ctx, dealID, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, dealID *string) ([]domain.Document, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindLatestDocumentByDealID(ctx context.Context, dealID string) (*domain.Document, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindVersionsByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentVersion, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentVersion), args.Error(1)
}

func (m *MockDocumentRepository) FindVersionByID(ctx context.Context, documentID, versionID string) (*domain.DocumentVersion, error) {
	args := m.Called(ctx, documentID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentVersion), args.Error(1)
}

func (m *MockDocumentRepository) FindLatestVersionByDocumentID(ctx context.Context, documentID string) (*domain.DocumentVersion, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentVersion), args.Error(1)
}

// MockFinanceRepository is a mock type for the FinanceAttachmentRepositoryFacade interface
type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) ListAttachmentsByDealID(ctx context.Context, dealID string) ([]domain.FinanceAttachment, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinanceAttachment), args.Error(1)
}

func (m *MockFinanceRepository) HasAttachmentOfType(ctx context.Context, dealID string, attachmentType domain.FinanceAttachmentType) (bool, error) {
	args := m.Called(ctx, dealID, attachmentType)
	return args.Bool(0), args.Error(1)
}

// MockAuditRepository is a mock type for the AuditLogRepositoryFacade interface
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) ListAuditLogs(ctx context.Context, dealID *string, action *domain.AuditAction, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, dealID, action, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

func (m *MockAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockSettingsRepository is a mock type for the SettingsRepositoryFacade interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

// MockDocumentGenerator is a mock type for the DocumentGenerator interface
type MockDocumentGenerator struct {
	mock.Mock
}

func (m *MockDocumentGenerator) Generate(ctx context.Context, deal *domain.Deal, docType domain.DocumentType, channel domain.Channel) (*domain.Document, *domain.DocumentVersion, error) {
	args := m.Called(ctx, deal, docType, channel)
	var doc *domain.Document
	var version *domain.DocumentVersion
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Document)
	}
	if args.Get(1) != nil {
		version = args.Get(1).(*domain.DocumentVersion)
	}
	return doc, version, args.Error(2)
}

// MockEmailSender is a mock type for the InvoiceEmailSender interface
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceRequest(ctx context.Context, req portssvc.InvoiceRequest) bool {
	args := m.Called(ctx, req)
	return args.Bool(0)
}

// MockFileStore is a mock type for the FileStore interface
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, relPath string, r io.Reader) (string, error) {
	args := m.Called(ctx, relPath, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	args := m.Called(ctx, relPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Exists(ctx context.Context, relPath string) bool {
	args := m.Called(ctx, relPath)
	return args.Bool(0)
}
