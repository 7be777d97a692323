package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// defaultActor is recorded on every audit entry; NestApp has a single
// administrative operator, bot traffic is distinguished by executor.
const defaultActor = "ADMIN"

// DealServiceConfig carries the config-level fallbacks the lifecycle needs.
type DealServiceConfig struct {
	FinanceEmail string // Used when no finance email is stored in settings
}

// dealService orchestrates the deal lifecycle: creation, pricing, document
// generation, invoicing, closing, cancellation and administrative override.
type dealService struct {
	BaseService
	dealRepo     portsrepo.DealRepositoryWithTx
	unitRepo     portsrepo.UnitRepositoryFacade
	tenantRepo   portsrepo.TenantRepositoryFacade
	documentRepo portsrepo.DocumentRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	journey      portssvc.JourneySvcFacade
	generator    portssvc.DocumentGenerator
	email        portssvc.InvoiceEmailSender
	store        portssvc.FileStore
	cfg          DealServiceConfig
}

// NewDealService creates a new deal lifecycle service.
func NewDealService(
	dealRepo portsrepo.DealRepositoryWithTx,
	unitRepo portsrepo.UnitRepositoryFacade,
	tenantRepo portsrepo.TenantRepositoryFacade,
	documentRepo portsrepo.DocumentRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	journey portssvc.JourneySvcFacade,
	generator portssvc.DocumentGenerator,
	email portssvc.InvoiceEmailSender,
	store portssvc.FileStore,
	cfg DealServiceConfig,
) portssvc.DealSvcFacade {
	return &dealService{
		dealRepo:     dealRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		documentRepo: documentRepo,
		settingsRepo: settingsRepo,
		journey:      journey,
		generator:    generator,
		email:        email,
		store:        store,
		cfg:          cfg,
	}
}

var _ portssvc.DealSvcFacade = (*dealService)(nil)

// newAudit builds one audit entry attributed to the given channel.
func newAudit(action domain.AuditAction, summary string, dealID string, channel domain.Channel, metadata map[string]string) domain.AuditLog {
	var dealRef *string
	if dealID != "" {
		dealRef = &dealID
	}
	return domain.AuditLog{
		AuditID:   uuid.NewString(),
		DealID:    dealRef,
		Actor:     defaultActor,
		Channel:   channel,
		Executor:  channel.Executor(),
		Action:    action,
		Summary:   summary,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
}

// loadDeal fetches a deal with its tenant/unit references populated.
func (s *dealService) loadDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to find deal %s: %w", dealID, err)
	}
	return deal, nil
}

// GetDealByID retrieves a deal for read access.
func (s *dealService) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	return s.loadDeal(ctx, dealID)
}

// ListDeals retrieves deals newest-first, optionally filtered by status.
func (s *dealService) ListDeals(ctx context.Context, status *domain.DealStatus) ([]domain.Deal, error) {
	deals, err := s.dealRepo.ListDeals(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, nil
}

// GetJourney returns the ordered journey view of a deal.
func (s *dealService) GetJourney(ctx context.Context, dealID string) (*dto.JourneyResponse, error) {
	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	steps, err := s.journey.JourneyStatus(ctx, deal)
	if err != nil {
		return nil, err
	}
	return &dto.JourneyResponse{
		DealID:      deal.DealID,
		TermType:    deal.TermType,
		CurrentStep: string(deal.CurrentStep),
		Status:      deal.Status,
		Steps:       steps,
	}, nil
}

// CreateDeal books a unit for a tenant. The unit must be AVAILABLE and carry
// a configured price for the requested term; the deal reserves the unit and
// auto-advances past SELECT_UNIT, which is satisfied by creation itself.
func (s *dealService) CreateDeal(ctx context.Context, req dto.CreateDealRequest, channel domain.Channel) (*domain.Deal, error) {
	logger := s.GetLogger(ctx)

	if !req.TermType.IsValid() {
		return nil, fmt.Errorf("%w: invalid term type: %s", apperrors.ErrValidation, req.TermType)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", req.TenantID, err)
	}

	unit, err := s.unitRepo.FindUnitByID(ctx, req.UnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", req.UnitID, err)
	}
	if unit.Status != domain.UnitAvailable {
		return nil, fmt.Errorf("%w: this unit is not available for booking", apperrors.ErrConflict)
	}

	tierPrice := unit.PriceForTerm(req.TermType)
	if tierPrice == nil {
		return nil, fmt.Errorf("%w: unit %s does not have a %s price configured",
			apperrors.ErrValidation, unit.UnitCode, strings.ToLower(strings.ReplaceAll(string(req.TermType), "_", " ")))
	}

	dealCode, err := s.dealRepo.NextDealCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve deal code: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = unit.Currency
	}

	now := time.Now().UTC()
	deal := domain.Deal{
		DealID:       uuid.NewString(),
		DealCode:     dealCode,
		TenantID:     req.TenantID,
		UnitID:       req.UnitID,
		TermType:     req.TermType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		InitialPrice: *tierPrice,
		Currency:     currency,
		Status:       domain.DealDraft,
		CurrentStep:  domain.StepSelectUnit,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	// Unit selection is satisfied by creating the deal, so the journey
	// starts at its second step with the deal already in progress.
	s.journey.Advance(&deal)

	audits := []domain.AuditLog{
		newAudit(domain.ActionCreateDeal, fmt.Sprintf("Created deal %s", dealCode), deal.DealID, channel, nil),
	}

	if err := s.dealRepo.CreateDeal(ctx, deal, audits); err != nil {
		s.LogError(ctx, err, "Failed to create deal", slog.String("unit_id", req.UnitID))
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	logger.Info("Deal created", slog.String("deal_id", deal.DealID), slog.String("deal_code", dealCode), slog.String("current_step", string(deal.CurrentStep)))

	unit.Status = domain.UnitReserved
	deal.Tenant = tenant
	deal.Unit = unit
	return &deal, nil
}

// ensureMutable rejects updates to cancelled or completed deals.
func ensureMutable(deal *domain.Deal) error {
	switch deal.Status {
	case domain.DealCancelled:
		return fmt.Errorf("%w: this deal has been cancelled and cannot be modified", apperrors.ErrConflict)
	case domain.DealCompleted:
		return fmt.Errorf("%w: this deal is completed and cannot be modified", apperrors.ErrConflict)
	}
	return nil
}

// UpdateDeal changes non-status fields of a live deal.
func (s *dealService) UpdateDeal(ctx context.Context, dealID string, req dto.UpdateDealRequest, channel domain.Channel) (*domain.Deal, error) {
	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := ensureMutable(deal); err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		deal.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		deal.EndDate = req.EndDate
	}
	deal.UpdatedAt = time.Now().UTC()

	audits := []domain.AuditLog{
		newAudit(domain.ActionUpdateDeal, fmt.Sprintf("Updated deal %s", deal.DealCode), deal.DealID, channel, nil),
	}
	if err := s.dealRepo.UpdateDeal(ctx, *deal, audits); err != nil {
		return nil, fmt.Errorf("failed to update deal %s: %w", dealID, err)
	}
	return deal, nil
}

// SetDealPrice records the negotiated price. Only permitted while the deal
// sits at a pricing step (FINALIZE_LOO or GENERATE_BOOKING_CONFIRMATION).
func (s *dealService) SetDealPrice(ctx context.Context, dealID string, req dto.SetDealPriceRequest, channel domain.Channel) (*domain.Deal, error) {
	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := ensureMutable(deal); err != nil {
		return nil, err
	}
	if !isPricingStep(deal.CurrentStep) {
		return nil, fmt.Errorf("%w: deal price can only be set at the Booking Confirmation or Finalize LOO step", apperrors.ErrValidation)
	}

	price := req.DealPrice
	deal.DealPrice = &price
	deal.UpdatedAt = time.Now().UTC()

	audits := []domain.AuditLog{
		newAudit(domain.ActionSetDealPrice,
			fmt.Sprintf("Negotiated price set to %s for deal %s", price.String(), deal.DealCode),
			deal.DealID, channel,
			map[string]string{
				"initial_price": deal.InitialPrice.String(),
				"deal_price":    price.String(),
			}),
	}
	if err := s.dealRepo.UpdateDeal(ctx, *deal, audits); err != nil {
		return nil, fmt.Errorf("failed to set deal price for %s: %w", dealID, err)
	}

	s.LogInfo(ctx, "Deal price set", slog.String("deal_id", deal.DealID), slog.String("deal_price", price.String()))
	return deal, nil
}

func isPricingStep(step domain.JourneyStep) bool {
	return step == domain.StepFinalizeLOO || step == domain.StepGenerateBookingConfirmation
}

// SetMoveInDetails records move-in date and notes at the move-in step.
func (s *dealService) SetMoveInDetails(ctx context.Context, dealID string, req dto.SetMoveInRequest, channel domain.Channel) (*domain.Deal, error) {
	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := ensureMutable(deal); err != nil {
		return nil, err
	}
	if deal.CurrentStep != domain.StepGenerateMoveIn {
		return nil, fmt.Errorf("%w: move-in details can only be set at the Move-in Confirmation step", apperrors.ErrValidation)
	}

	moveInDate := req.MoveInDate
	deal.MoveInDate = &moveInDate
	deal.MoveInNotes = req.MoveInNotes
	deal.UpdatedAt = time.Now().UTC()

	metadata := map[string]string{"move_in_date": moveInDate.Format(time.DateOnly)}
	if req.MoveInNotes != nil {
		metadata["move_in_notes"] = *req.MoveInNotes
	}
	audits := []domain.AuditLog{
		newAudit(domain.ActionSetMoveInDetails,
			fmt.Sprintf("Move-in details set for deal %s: date=%s", deal.DealCode, moveInDate.Format(time.DateOnly)),
			deal.DealID, channel, metadata),
	}
	if err := s.dealRepo.UpdateDeal(ctx, *deal, audits); err != nil {
		return nil, fmt.Errorf("failed to set move-in details for %s: %w", dealID, err)
	}
	return deal, nil
}

// GenerateDocument renders the document the current step requires and
// advances the journey. Rendering, the new version rows, the advanced deal
// and both audit entries commit in a single transaction.
func (s *dealService) GenerateDocument(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error) {
	logger := s.GetLogger(ctx)

	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: this deal cannot be progressed", apperrors.ErrConflict)
	}

	docType, ok := domain.StepDocuments[deal.CurrentStep]
	if !ok {
		return nil, fmt.Errorf("%w: the current step does not require document generation", apperrors.ErrValidation)
	}

	// A pricing step that never saw an explicit negotiation locks in the
	// listed price as the deal price.
	if isPricingStep(deal.CurrentStep) && deal.DealPrice == nil {
		initial := deal.InitialPrice
		deal.DealPrice = &initial
	}

	doc, version, err := s.generator.Generate(ctx, deal, docType, channel)
	if err != nil {
		s.LogError(ctx, err, "Document generation failed", slog.String("deal_id", deal.DealID), slog.String("doc_type", string(docType)))
		return nil, fmt.Errorf("failed to generate %s for deal %s: %w", docType, dealID, err)
	}

	audits := []domain.AuditLog{
		newAudit(domain.ActionGenerateDocument,
			fmt.Sprintf("Generated %s v%d for deal %s", docType, version.VersionNo, deal.DealCode),
			deal.DealID, channel, nil),
	}

	s.journey.Advance(deal)
	deal.UpdatedAt = time.Now().UTC()

	audits = append(audits, newAudit(domain.ActionProgressDeal,
		fmt.Sprintf("Advanced deal %s to step: %s", deal.DealCode, deal.CurrentStep),
		deal.DealID, channel, nil))

	if err := s.dealRepo.SaveGeneratedDocument(ctx, *deal, *doc, *version, audits); err != nil {
		return nil, fmt.Errorf("failed to persist generated %s for deal %s: %w", docType, dealID, err)
	}

	logger.Info("Document generated",
		slog.String("deal_id", deal.DealID),
		slog.String("doc_type", string(docType)),
		slog.Int("version_no", version.VersionNo),
		slog.String("current_step", string(deal.CurrentStep)))
	return deal, nil
}

// RequestInvoice notifies finance and advances past REQUEST_INVOICE. Email
// delivery is fire-and-forget: a failed send is logged but never rolls back
// the step advancement.
func (s *dealService) RequestInvoice(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error) {
	logger := s.GetLogger(ctx)

	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.CurrentStep != domain.StepRequestInvoice {
		return nil, fmt.Errorf("%w: this action is not available yet", apperrors.ErrConflict)
	}

	request := portssvc.InvoiceRequest{
		FinanceEmail: s.financeEmail(ctx),
		DealCode:     deal.DealCode,
		Amount:       deal.EffectivePrice().String(),
		Currency:     deal.Currency,
	}
	if deal.Tenant != nil {
		request.TenantName = deal.Tenant.FullName
	}
	if deal.Unit != nil {
		request.UnitCode = deal.Unit.UnitCode
	}
	request.PDFPath = s.latestPDFPath(ctx, deal.DealID)

	if !s.email.SendInvoiceRequest(ctx, request) {
		logger.Warn("Invoice request email failed, continuing", slog.String("deal_id", deal.DealID))
	}

	now := time.Now().UTC()
	deal.InvoiceRequestedAt = &now
	deal.Status = domain.DealInvoiceRequested
	deal.UpdatedAt = now

	audits := []domain.AuditLog{
		newAudit(domain.ActionRequestInvoice, fmt.Sprintf("Invoice requested for deal %s", deal.DealCode), deal.DealID, channel, nil),
	}

	s.journey.Advance(deal)

	if err := s.dealRepo.UpdateDeal(ctx, *deal, audits); err != nil {
		return nil, fmt.Errorf("failed to record invoice request for deal %s: %w", dealID, err)
	}

	logger.Info("Invoice requested", slog.String("deal_id", deal.DealID), slog.String("amount", request.Amount))
	return deal, nil
}

// financeEmail resolves the finance address from settings with a config fallback.
func (s *dealService) financeEmail(ctx context.Context) string {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err == nil && settings.FinanceEmail != "" {
		return settings.FinanceEmail
	}
	return s.cfg.FinanceEmail
}

// latestPDFPath finds the deal's most recent document PDF to attach, "" when none.
func (s *dealService) latestPDFPath(ctx context.Context, dealID string) string {
	doc, err := s.documentRepo.FindLatestDocumentByDealID(ctx, dealID)
	if err != nil {
		return ""
	}
	version, err := s.documentRepo.FindLatestVersionByDocumentID(ctx, doc.DocumentID)
	if err != nil {
		return ""
	}
	return version.PDFPath
}

// UploadInvoice stores the uploaded invoice file and advances past
// UPLOAD_INVOICE. Unlike the email path, a storage failure aborts the whole
// operation: there must never be an attachment record without a stored file.
func (s *dealService) UploadInvoice(ctx context.Context, dealID string, fileName string, file io.Reader, channel domain.Channel) (*domain.Deal, error) {
	logger := s.GetLogger(ctx)

	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.CurrentStep != domain.StepUploadInvoice {
		return nil, fmt.Errorf("%w: this action is not available yet", apperrors.ErrConflict)
	}

	ext := "pdf"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = fileName[i+1:]
	}
	storedName := fmt.Sprintf("invoice_%s.%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:8], ext)
	relPath := path.Join("finance", deal.DealID, storedName)

	storedPath, err := s.store.Save(ctx, relPath, file)
	if err != nil {
		s.LogError(ctx, err, "Failed to store invoice file", slog.String("deal_id", deal.DealID))
		return nil, fmt.Errorf("failed to store invoice for deal %s: %w", dealID, err)
	}

	attachment := domain.FinanceAttachment{
		AttachmentID:   uuid.NewString(),
		DealID:         deal.DealID,
		AttachmentType: domain.AttachmentInvoice,
		FileName:       fileName,
		FilePath:       storedPath,
		Channel:        channel,
		UploadedAt:     time.Now().UTC(),
	}

	deal.Status = domain.DealInvoiceUploaded
	deal.UpdatedAt = attachment.UploadedAt

	audits := []domain.AuditLog{
		newAudit(domain.ActionUploadInvoice, fmt.Sprintf("Invoice uploaded for deal %s", deal.DealCode), deal.DealID, channel, nil),
	}

	s.journey.Advance(deal)

	if err := s.dealRepo.SaveInvoiceAttachment(ctx, *deal, attachment, audits); err != nil {
		return nil, fmt.Errorf("failed to record invoice upload for deal %s: %w", dealID, err)
	}

	logger.Info("Invoice uploaded", slog.String("deal_id", deal.DealID), slog.String("file_name", fileName))
	return deal, nil
}

// CloseDeal completes a deal that has walked its whole journey; the unit
// becomes OCCUPIED.
func (s *dealService) CloseDeal(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error) {
	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.CurrentStep != domain.StepDealClosed {
		return nil, fmt.Errorf("%w: this deal cannot be closed yet, please complete all steps", apperrors.ErrConflict)
	}

	unit, err := s.unitRepo.FindUnitByID(ctx, deal.UnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", deal.UnitID, err)
	}

	deal.Status = domain.DealCompleted
	deal.UpdatedAt = time.Now().UTC()
	unit.Status = domain.UnitOccupied

	audits := []domain.AuditLog{
		newAudit(domain.ActionProgressDeal, fmt.Sprintf("Deal %s closed", deal.DealCode), deal.DealID, channel, nil),
	}
	if err := s.dealRepo.UpdateDealAndUnit(ctx, *deal, *unit, audits); err != nil {
		return nil, fmt.Errorf("failed to close deal %s: %w", dealID, err)
	}

	s.LogInfo(ctx, "Deal closed", slog.String("deal_id", deal.DealID))
	deal.Unit = unit
	return deal, nil
}

// CancelDeal terminates a deal from any live state and releases its unit.
// Cancelling twice is a conflict.
func (s *dealService) CancelDeal(ctx context.Context, dealID string, req dto.CancelDealRequest, channel domain.Channel) (*domain.Deal, error) {
	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status == domain.DealCancelled {
		return nil, fmt.Errorf("%w: this deal is already cancelled", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	reason := req.Reason
	deal.Status = domain.DealCancelled
	deal.CancelledAt = &now
	deal.CancellationReason = &reason
	deal.UpdatedAt = now

	audits := []domain.AuditLog{
		newAudit(domain.ActionCancelDeal,
			fmt.Sprintf("Deal %s cancelled. Reason: %s", deal.DealCode, reason),
			deal.DealID, channel,
			map[string]string{"reason": reason}),
	}

	unit, err := s.unitRepo.FindUnitByID(ctx, deal.UnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", deal.UnitID, err)
	}

	if unit.Status == domain.UnitReserved || unit.Status == domain.UnitOccupied {
		unit.Status = domain.UnitAvailable
		if err := s.dealRepo.UpdateDealAndUnit(ctx, *deal, *unit, audits); err != nil {
			return nil, fmt.Errorf("failed to cancel deal %s: %w", dealID, err)
		}
	} else {
		if err := s.dealRepo.UpdateDeal(ctx, *deal, audits); err != nil {
			return nil, fmt.Errorf("failed to cancel deal %s: %w", dealID, err)
		}
	}

	s.LogInfo(ctx, "Deal cancelled", slog.String("deal_id", deal.DealID), slog.String("reason", reason))
	deal.Unit = unit
	return deal, nil
}

// EmergencyOverride force-sets a deal's step outside normal gating. Web-only:
// the bot channel must not reach it. Intended for manual recovery of stuck
// deals; it deliberately bypasses every gate.
func (s *dealService) EmergencyOverride(ctx context.Context, dealID string, req dto.OverrideDealRequest, channel domain.Channel) (*domain.Deal, error) {
	if channel == domain.ChannelWhatsApp {
		return nil, fmt.Errorf("%w: emergency override is not accessible via WhatsApp", apperrors.ErrForbidden)
	}

	deal, err := s.loadDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot override a cancelled or completed deal", apperrors.ErrConflict)
	}

	targetStep := domain.JourneyStep(req.TargetStep)
	if !stepInJourney(deal.TermType, targetStep) {
		return nil, fmt.Errorf("%w: invalid target step: %s", apperrors.ErrValidation, req.TargetStep)
	}

	oldStep := deal.CurrentStep
	deal.CurrentStep = targetStep
	deal.BlockedReason = nil
	if targetStep == domain.StepDealClosed {
		deal.Status = domain.DealCompleted
	} else {
		deal.Status = domain.DealInProgress
	}
	deal.UpdatedAt = time.Now().UTC()

	audits := []domain.AuditLog{
		newAudit(domain.ActionEmergencyOverride,
			fmt.Sprintf("Emergency override on deal %s: %s -> %s. Reason: %s", deal.DealCode, oldStep, targetStep, req.Reason),
			deal.DealID, channel,
			map[string]string{
				"reason":    req.Reason,
				"from_step": string(oldStep),
				"to_step":   string(targetStep),
			}),
	}
	if err := s.dealRepo.UpdateDeal(ctx, *deal, audits); err != nil {
		return nil, fmt.Errorf("failed to override deal %s: %w", dealID, err)
	}

	s.LogWarn(ctx, "Emergency override applied",
		slog.String("deal_id", deal.DealID),
		slog.String("from_step", string(oldStep)),
		slog.String("to_step", string(targetStep)))
	return deal, nil
}

func stepInJourney(term domain.TermType, step domain.JourneyStep) bool {
	for _, s := range domain.JourneySteps(term) {
		if s == step {
			return true
		}
	}
	return false
}
