package docgen_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/platform/docgen"
	"github.com/nestapt/nest_backend/internal/platform/storage"
)

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

func (m *MockDocumentRepository) FindLatestDocumentByDealID(ctx context.Context, dealID string) (*domain.Document, error) {
	args := m.Called(ctx, dealID)
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

type GeneratorTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockSettingsRepo *MockSettingsRepository
	store            *storage.AferoStore
	generator        *docgen.Generator
	ctx              context.Context
}

func (suite *GeneratorTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.store = storage.NewMemStore()

	generator, err := docgen.NewGenerator(suite.mockDocumentRepo, suite.mockSettingsRepo, suite.store, docgen.Config{})
	suite.Require().NoError(err)
	suite.generator = generator
	suite.ctx = context.Background()
}

func (suite *GeneratorTestSuite) monthlyDeal() *domain.Deal {
	company := "PT Maju Bersama"
	return &domain.Deal{
		DealID:       uuid.NewString(),
		DealCode:     "NEST-00017",
		TermType:     domain.TermMonthly,
		StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		InitialPrice: decimal.NewFromInt(8000000),
		Currency:     "IDR",
		Tenant: &domain.Tenant{
			TenantID:    uuid.NewString(),
			FullName:    "Ayu Lestari",
			Phone:       "+62 812 0000 1111",
			Email:       "ayu@example.com",
			CompanyName: &company,
		},
		Unit: &domain.Unit{
			UnitID:   uuid.NewString(),
			UnitCode: "A-1201",
			UnitType: "1BR Deluxe",
		},
	}
}

func (suite *GeneratorTestSuite) TestGenerate_FirstVersion() {
	deal := suite.monthlyDeal()
	suite.mockSettingsRepo.On("GetSettings", suite.ctx).Return(&domain.AppSettings{
		CompanyLegalName: "PT Nest Hunian Indonesia",
		CompanyAddress:   "Jl. Sudirman 1, Jakarta",
		SignatoryName:    "Budi Santoso",
		SignatoryTitle:   "General Manager",
	}, nil)
	suite.mockDocumentRepo.On("FindDocumentByDealAndType", suite.ctx, deal.DealID, domain.DocLOODraft).
		Return(nil, apperrors.ErrNotFound)

	doc, version, err := suite.generator.Generate(suite.ctx, deal, domain.DocLOODraft, domain.ChannelWeb)

	suite.Require().NoError(err)
	suite.Equal(deal.DealID, doc.DealID)
	suite.Equal(domain.DocLOODraft, doc.DocType)
	suite.Equal(1, doc.LatestVersion)
	suite.Equal(1, version.VersionNo)
	suite.True(version.IsLatest)
	suite.Equal(domain.ChannelWeb, version.Channel)
	suite.Equal("documents/"+deal.DealID+"/LOO_DRAFT_v1.html", version.HTMLPath)
	suite.Equal("documents/"+deal.DealID+"/LOO_DRAFT_v1.pdf", version.PDFPath)
	suite.Require().NotNil(version.SignatoryName)
	suite.Equal("Budi Santoso", *version.SignatoryName)
	suite.Require().NotNil(version.SignatoryTitle)
	suite.Equal("General Manager", *version.SignatoryTitle)

	rc, err := suite.store.Open(suite.ctx, version.HTMLPath)
	suite.Require().NoError(err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	suite.Require().NoError(err)
	html := string(body)
	suite.Contains(html, "Letter of Offer – Draft")
	suite.Contains(html, "NEST-00017")
	suite.Contains(html, "Ayu Lestari")
	suite.Contains(html, "A-1201")
	suite.Contains(html, "IDR 8000000")
	suite.Contains(html, "PT Nest Hunian Indonesia")

	suite.True(suite.store.Exists(suite.ctx, version.PDFPath))
}

func (suite *GeneratorTestSuite) TestGenerate_IncrementsExistingVersion() {
	deal := suite.monthlyDeal()
	existing := &domain.Document{
		DocumentID:    uuid.NewString(),
		DealID:        deal.DealID,
		DocType:       domain.DocLOOFinal,
		LatestVersion: 2,
	}
	suite.mockSettingsRepo.On("GetSettings", suite.ctx).Return(nil, apperrors.ErrNotFound)
	suite.mockDocumentRepo.On("FindDocumentByDealAndType", suite.ctx, deal.DealID, domain.DocLOOFinal).
		Return(existing, nil)

	doc, version, err := suite.generator.Generate(suite.ctx, deal, domain.DocLOOFinal, domain.ChannelWhatsApp)

	suite.Require().NoError(err)
	suite.Equal(existing.DocumentID, doc.DocumentID)
	suite.Equal(3, doc.LatestVersion)
	suite.Equal(3, version.VersionNo)
	suite.Equal(domain.ChannelWhatsApp, version.Channel)
	suite.True(strings.HasSuffix(version.HTMLPath, "LOO_FINAL_v3.html"))
}

func (suite *GeneratorTestSuite) TestGenerate_FallsBackToDefaultCompany() {
	deal := suite.monthlyDeal()
	suite.mockSettingsRepo.On("GetSettings", suite.ctx).Return(nil, apperrors.ErrNotFound)
	suite.mockDocumentRepo.On("FindDocumentByDealAndType", suite.ctx, deal.DealID, domain.DocLeaseAgreement).
		Return(nil, apperrors.ErrNotFound)

	_, version, err := suite.generator.Generate(suite.ctx, deal, domain.DocLeaseAgreement, domain.ChannelWeb)

	suite.Require().NoError(err)
	suite.Nil(version.SignatoryName)

	rc, err := suite.store.Open(suite.ctx, version.HTMLPath)
	suite.Require().NoError(err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	suite.Require().NoError(err)
	suite.Contains(string(body), "NEST Serviced Apartment")
	suite.Contains(string(body), "Authorised Signatory")
}

func (suite *GeneratorTestSuite) TestGenerate_RepositoryErrorPropagates() {
	deal := suite.monthlyDeal()
	suite.mockSettingsRepo.On("GetSettings", suite.ctx).Return(nil, apperrors.ErrNotFound)
	suite.mockDocumentRepo.On("FindDocumentByDealAndType", suite.ctx, deal.DealID, domain.DocLOODraft).
		Return(nil, assert.AnError)

	_, _, err := suite.generator.Generate(suite.ctx, deal, domain.DocLOODraft, domain.ChannelWeb)

	suite.Require().Error(err)
}

func TestGenerator(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
