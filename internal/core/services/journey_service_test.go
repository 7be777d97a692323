package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/core/services"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// --- Test Suite Setup ---

type JourneyServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockFinanceRepo  *MockFinanceRepository
	service          portssvc.JourneySvcFacade
}

func (suite *JourneyServiceTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockFinanceRepo = new(MockFinanceRepository)
	suite.service = services.NewJourneyService(suite.mockDocumentRepo, suite.mockFinanceRepo)
}

func monthlyDealAt(step domain.JourneyStep, status domain.DealStatus) *domain.Deal {
	return &domain.Deal{
		DealID:      uuid.NewString(),
		DealCode:    "NEST-00042",
		TermType:    domain.TermMonthly,
		Status:      status,
		CurrentStep: step,
	}
}

// --- StepIndex ---

func (suite *JourneyServiceTestSuite) TestStepIndex_KnownStep() {
	deal := monthlyDealAt(domain.StepFinalizeLOO, domain.DealInProgress)
	suite.Equal(2, suite.service.StepIndex(deal))
}

func (suite *JourneyServiceTestSuite) TestStepIndex_UnknownStepDefaultsToZero() {
	deal := monthlyDealAt(domain.JourneyStep("NO_SUCH_STEP"), domain.DealInProgress)
	suite.Equal(0, suite.service.StepIndex(deal))
}

// --- CanProgress: terminal states ---

func (suite *JourneyServiceTestSuite) TestCanProgress_CancelledDeal() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepGenerateLOODraft, domain.DealCancelled)

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("This deal has been cancelled.", *blockedReason)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "FindDocumentByDealAndType")
}

func (suite *JourneyServiceTestSuite) TestCanProgress_CompletedDeal() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepDealClosed, domain.DealCompleted)

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("This deal is already completed.", *blockedReason)
}

func (suite *JourneyServiceTestSuite) TestCanProgress_LastStepExhausted() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepDealClosed, domain.DealInProgress)

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("All steps are complete.", *blockedReason)
}

// --- CanProgress: document gate ---

func (suite *JourneyServiceTestSuite) TestCanProgress_DocumentMissing() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepGenerateLOODraft, domain.DealInProgress)

	suite.mockDocumentRepo.On("FindDocumentByDealAndType", ctx, deal.DealID, domain.DocLOODraft).
		Return(nil, apperrors.ErrNotFound).Once()

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("Action required: Generate Offer (LOO Draft) to continue.", *blockedReason)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *JourneyServiceTestSuite) TestCanProgress_DocumentWithoutVersions() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepGenerateLeaseAgreement, domain.DealInProgress)

	doc := &domain.Document{DocumentID: uuid.NewString(), DealID: deal.DealID, DocType: domain.DocLeaseAgreement, LatestVersion: 0}
	suite.mockDocumentRepo.On("FindDocumentByDealAndType", ctx, deal.DealID, domain.DocLeaseAgreement).
		Return(doc, nil).Once()

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("Action required: Generate Lease Agreement to continue.", *blockedReason)
}

func (suite *JourneyServiceTestSuite) TestCanProgress_DocumentPresent() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepGenerateLOODraft, domain.DealInProgress)

	doc := &domain.Document{DocumentID: uuid.NewString(), DealID: deal.DealID, DocType: domain.DocLOODraft, LatestVersion: 1}
	suite.mockDocumentRepo.On("FindDocumentByDealAndType", ctx, deal.DealID, domain.DocLOODraft).
		Return(doc, nil).Once()

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.True(canGo)
	suite.Nil(blockedReason)
}

func (suite *JourneyServiceTestSuite) TestCanProgress_DocumentRepoError() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepGenerateLOODraft, domain.DealInProgress)

	suite.mockDocumentRepo.On("FindDocumentByDealAndType", ctx, deal.DealID, domain.DocLOODraft).
		Return(nil, assert.AnError).Once()

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.False(canGo)
	suite.Nil(blockedReason)
}

// --- CanProgress: invoice gates ---

func (suite *JourneyServiceTestSuite) TestCanProgress_InvoiceNotRequested() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepRequestInvoice, domain.DealInProgress)

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("Action required: Request Invoice to continue.", *blockedReason)
}

func (suite *JourneyServiceTestSuite) TestCanProgress_InvoiceRequested() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepRequestInvoice, domain.DealInProgress)
	now := deal.CreatedAt
	deal.InvoiceRequestedAt = &now

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.True(canGo)
	suite.Nil(blockedReason)
}

func (suite *JourneyServiceTestSuite) TestCanProgress_InvoiceNotUploaded() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepUploadInvoice, domain.DealInvoiceRequested)

	suite.mockFinanceRepo.On("HasAttachmentOfType", ctx, deal.DealID, domain.AttachmentInvoice).
		Return(false, nil).Once()

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.False(canGo)
	suite.Require().NotNil(blockedReason)
	suite.Equal("Action required: Upload Invoice to continue.", *blockedReason)
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *JourneyServiceTestSuite) TestCanProgress_InvoiceUploaded() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepUploadInvoice, domain.DealInvoiceRequested)

	suite.mockFinanceRepo.On("HasAttachmentOfType", ctx, deal.DealID, domain.AttachmentInvoice).
		Return(true, nil).Once()

	canGo, blockedReason, err := suite.service.CanProgress(ctx, deal)

	suite.Require().NoError(err)
	suite.True(canGo)
	suite.Nil(blockedReason)
}

// --- Advance ---

func (suite *JourneyServiceTestSuite) TestAdvance_MovesToNextStep() {
	deal := monthlyDealAt(domain.StepGenerateLOODraft, domain.DealInProgress)
	blocked := "Action required: Generate Offer (LOO Draft) to continue."
	deal.BlockedReason = &blocked

	newStep := suite.service.Advance(deal)

	suite.Equal(domain.StepFinalizeLOO, newStep)
	suite.Equal(domain.StepFinalizeLOO, deal.CurrentStep)
	suite.Equal(domain.DealInProgress, deal.Status)
	suite.Nil(deal.BlockedReason)
}

func (suite *JourneyServiceTestSuite) TestAdvance_IntoUploadInvoiceSetsStatus() {
	deal := monthlyDealAt(domain.StepRequestInvoice, domain.DealInProgress)

	newStep := suite.service.Advance(deal)

	suite.Equal(domain.StepUploadInvoice, newStep)
	suite.Equal(domain.DealInvoiceRequested, deal.Status)
}

func (suite *JourneyServiceTestSuite) TestAdvance_IntoDealClosedCompletes() {
	deal := monthlyDealAt(domain.StepGenerateHandover, domain.DealInvoiceUploaded)

	newStep := suite.service.Advance(deal)

	suite.Equal(domain.StepDealClosed, newStep)
	suite.Equal(domain.DealCompleted, deal.Status)
}

func (suite *JourneyServiceTestSuite) TestAdvance_AtEndIsNoOp() {
	deal := monthlyDealAt(domain.StepDealClosed, domain.DealCompleted)

	newStep := suite.service.Advance(deal)

	suite.Equal(domain.StepDealClosed, newStep)
	suite.Equal(domain.DealCompleted, deal.Status)
}

func (suite *JourneyServiceTestSuite) TestAdvance_DailyJourneySkipsLeaseSteps() {
	deal := monthlyDealAt(domain.StepGenerateBookingConfirmation, domain.DealInProgress)
	deal.TermType = domain.TermDaily

	newStep := suite.service.Advance(deal)

	suite.Equal(domain.StepGenerateOfficialConfirm, newStep)
}

// --- JourneyStatus ---

func (suite *JourneyServiceTestSuite) TestJourneyStatus_TagsAndLiveGate() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepFinalizeLOO, domain.DealInProgress)

	suite.mockDocumentRepo.On("FindDocumentByDealAndType", ctx, deal.DealID, domain.DocLOOFinal).
		Return(nil, apperrors.ErrNotFound).Once()

	entries, err := suite.service.JourneyStatus(ctx, deal)

	suite.Require().NoError(err)
	suite.Require().Len(entries, len(domain.MonthlyJourneySteps))

	suite.Equal(dto.JourneyStepCompleted, entries[0].Status)
	suite.Equal(dto.JourneyStepCompleted, entries[1].Status)
	suite.Equal(dto.JourneyStepCurrent, entries[2].Status)
	suite.Equal(dto.JourneyStepPending, entries[3].Status)
	suite.Equal(dto.JourneyStepPending, entries[len(entries)-1].Status)

	current := entries[2]
	suite.Equal(string(domain.StepFinalizeLOO), current.Step)
	suite.Equal("Finalize Offer (LOO Final)", current.Label)
	suite.False(current.CanProgress)
	suite.Require().NotNil(current.BlockedReason)
	suite.Equal("Action required: Finalize Offer (LOO Final) to continue.", *current.BlockedReason)

	for _, entry := range entries {
		if entry.Status != dto.JourneyStepCurrent {
			suite.False(entry.CanProgress)
			suite.Nil(entry.BlockedReason)
		}
	}
}

func (suite *JourneyServiceTestSuite) TestJourneyStatus_CancelledDealFrozen() {
	ctx := context.Background()
	deal := monthlyDealAt(domain.StepGenerateLOODraft, domain.DealCancelled)

	entries, err := suite.service.JourneyStatus(ctx, deal)

	suite.Require().NoError(err)
	suite.Require().Len(entries, len(domain.MonthlyJourneySteps))
	suite.Equal(dto.JourneyStepCurrent, entries[1].Status)
	suite.False(entries[1].CanProgress)
	suite.Nil(entries[1].BlockedReason)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "FindDocumentByDealAndType")
}

// --- Run Test Suite ---

func TestJourneyService(t *testing.T) {
	suite.Run(t, new(JourneyServiceTestSuite))
}
