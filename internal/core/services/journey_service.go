package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// Blocking reasons for terminal deals and exhausted journeys.
const (
	reasonCancelled    = "This deal has been cancelled."
	reasonCompleted    = "This deal is already completed."
	reasonAllComplete  = "All steps are complete."
	reasonActionFormat = "Action required: %s to continue."
)

// journeyService is the journey engine: step location, gate evaluation and
// advancement over the static journey catalog.
type journeyService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	financeRepo  portsrepo.FinanceAttachmentRepositoryFacade
}

// NewJourneyService creates a new journey engine.
func NewJourneyService(documentRepo portsrepo.DocumentRepositoryFacade, financeRepo portsrepo.FinanceAttachmentRepositoryFacade) portssvc.JourneySvcFacade {
	return &journeyService{
		documentRepo: documentRepo,
		financeRepo:  financeRepo,
	}
}

var _ portssvc.JourneySvcFacade = (*journeyService)(nil)

// StepIndex locates the deal's current step within its journey sequence.
// An unknown step maps to 0 rather than failing; it cannot occur while
// steps are only ever assigned from the catalog, but an engine that panics
// on bad data would take the whole deal view down with it.
func (s *journeyService) StepIndex(deal *domain.Deal) int {
	steps := domain.JourneySteps(deal.TermType)
	for i, step := range steps {
		if step == deal.CurrentStep {
			return i
		}
	}
	return 0
}

// CanProgress evaluates the exit gate of the deal's current step.
func (s *journeyService) CanProgress(ctx context.Context, deal *domain.Deal) (bool, *string, error) {
	switch deal.Status {
	case domain.DealCancelled:
		return false, reason(reasonCancelled), nil
	case domain.DealCompleted:
		return false, reason(reasonCompleted), nil
	case domain.DealDraft, domain.DealInProgress, domain.DealInvoiceRequested, domain.DealInvoiceUploaded:
		// Live deal, evaluate the step gate below.
	}

	steps := domain.JourneySteps(deal.TermType)
	currentIdx := s.StepIndex(deal)

	if currentIdx >= len(steps)-1 {
		return false, reason(reasonAllComplete), nil
	}

	currentStep := deal.CurrentStep

	// Document-gated steps require at least one generated version of the
	// mapped type. Any document of that type satisfies the gate, even one
	// produced before an emergency override jumped the deal backwards;
	// matching historical behavior, the gate does not distinguish journey
	// attempts.
	if docType, ok := domain.StepDocuments[currentStep]; ok {
		doc, err := s.documentRepo.FindDocumentByDealAndType(ctx, deal.DealID, docType)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return false, nil, fmt.Errorf("failed to check document gate for deal %s: %w", deal.DealID, err)
		}
		if doc == nil || doc.LatestVersion == 0 {
			return false, reason(fmt.Sprintf(reasonActionFormat, currentStep.Label())), nil
		}
	}

	switch currentStep {
	case domain.StepUploadInvoice:
		has, err := s.financeRepo.HasAttachmentOfType(ctx, deal.DealID, domain.AttachmentInvoice)
		if err != nil {
			return false, nil, fmt.Errorf("failed to check invoice attachment gate for deal %s: %w", deal.DealID, err)
		}
		if !has {
			return false, reason(fmt.Sprintf(reasonActionFormat, domain.StepUploadInvoice.Label())), nil
		}
	case domain.StepRequestInvoice:
		if deal.InvoiceRequestedAt == nil {
			return false, reason(fmt.Sprintf(reasonActionFormat, domain.StepRequestInvoice.Label())), nil
		}
	case domain.StepSelectUnit, domain.StepDealClosed,
		domain.StepGenerateBookingConfirmation, domain.StepGenerateLOODraft,
		domain.StepFinalizeLOO, domain.StepGenerateLeaseAgreement,
		domain.StepGenerateOfficialConfirm, domain.StepGenerateMoveIn,
		domain.StepGenerateHandover:
		// Either ungated or already covered by the document gate above.
	}

	return true, nil, nil
}

// Advance moves the deal to the next step of its journey and applies the
// step's status side effect. Callers are expected to have satisfied the
// current gate; Advance itself does not re-check it.
func (s *journeyService) Advance(deal *domain.Deal) domain.JourneyStep {
	steps := domain.JourneySteps(deal.TermType)
	nextIdx := s.StepIndex(deal) + 1

	if nextIdx >= len(steps) {
		return deal.CurrentStep
	}

	newStep := steps[nextIdx]
	deal.CurrentStep = newStep

	switch newStep {
	case domain.StepDealClosed:
		deal.Status = domain.DealCompleted
	case domain.StepUploadInvoice:
		deal.Status = domain.DealInvoiceRequested
	default:
		deal.Status = domain.DealInProgress
	}

	deal.BlockedReason = nil
	return newStep
}

// JourneyStatus produces the ordered journey view for a deal.
func (s *journeyService) JourneyStatus(ctx context.Context, deal *domain.Deal) ([]dto.JourneyStepEntry, error) {
	steps := domain.JourneySteps(deal.TermType)
	currentIdx := s.StepIndex(deal)

	entries := make([]dto.JourneyStepEntry, 0, len(steps))
	for i, step := range steps {
		status := dto.JourneyStepPending
		if i < currentIdx {
			status = dto.JourneyStepCompleted
		} else if i == currentIdx {
			status = dto.JourneyStepCurrent
		}

		entry := dto.JourneyStepEntry{
			Step:   string(step),
			Label:  step.Label(),
			Index:  i,
			Status: status,
		}

		// Only the current step of a live deal carries a live gate result;
		// a cancelled deal's journey is frozen.
		if status == dto.JourneyStepCurrent && deal.Status != domain.DealCancelled {
			canGo, blockedReason, err := s.CanProgress(ctx, deal)
			if err != nil {
				return nil, err
			}
			entry.CanProgress = canGo
			entry.BlockedReason = blockedReason
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func reason(msg string) *string {
	return &msg
}
