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

// unitService manages the unit catalog. Occupancy transitions are owned by
// the deal lifecycle; this service only handles catalog data.
type unitService struct {
	BaseService
	unitRepo  portsrepo.UnitRepositoryFacade
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewUnitService creates a new unit service.
func NewUnitService(unitRepo portsrepo.UnitRepositoryFacade, auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.UnitSvcFacade {
	return &unitService{unitRepo: unitRepo, auditRepo: auditRepo}
}

var _ portssvc.UnitSvcFacade = (*unitService)(nil)

// CreateUnit registers a new unit, starting AVAILABLE.
func (s *unitService) CreateUnit(ctx context.Context, req dto.CreateUnitRequest, channel domain.Channel) (*domain.Unit, error) {
	currency := req.Currency
	if currency == "" {
		currency = "IDR"
	}
	now := time.Now().UTC()
	unit := domain.Unit{
		UnitID:           uuid.NewString(),
		UnitCode:         req.UnitCode,
		UnitType:         req.UnitType,
		Status:           domain.UnitAvailable,
		Notes:            req.Notes,
		DailyPrice:       req.DailyPrice,
		MonthlyPrice:     req.MonthlyPrice,
		SixMonthPrice:    req.SixMonthPrice,
		TwelveMonthPrice: req.TwelveMonthPrice,
		Currency:         currency,
		Timestamps:       domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create unit %s: %w", req.UnitCode, err)
	}

	audit := newAudit(domain.ActionCreateUnit, fmt.Sprintf("Created unit %s", unit.UnitCode), "", channel, nil)
	if err := s.auditRepo.SaveAuditLog(ctx, audit); err != nil {
		s.LogWarn(ctx, "Failed to write unit audit entry", slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Unit created", slog.String("unit_id", unit.UnitID), slog.String("unit_code", unit.UnitCode))
	return &unit, nil
}

// GetUnitByID retrieves a unit.
func (s *unitService) GetUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", unitID, err)
	}
	return unit, nil
}

// ListUnits retrieves units, optionally filtered by status.
func (s *unitService) ListUnits(ctx context.Context, status *domain.UnitStatus) ([]domain.Unit, error) {
	units, err := s.unitRepo.ListUnits(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// UpdateUnit changes catalog fields of a unit. Status is deliberately not
// updatable here.
func (s *unitService) UpdateUnit(ctx context.Context, unitID string, req dto.UpdateUnitRequest, channel domain.Channel) (*domain.Unit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", unitID, err)
	}

	if req.UnitType != nil {
		unit.UnitType = *req.UnitType
	}
	if req.Notes != nil {
		unit.Notes = req.Notes
	}
	if req.DailyPrice != nil {
		unit.DailyPrice = req.DailyPrice
	}
	if req.MonthlyPrice != nil {
		unit.MonthlyPrice = req.MonthlyPrice
	}
	if req.SixMonthPrice != nil {
		unit.SixMonthPrice = req.SixMonthPrice
	}
	if req.TwelveMonthPrice != nil {
		unit.TwelveMonthPrice = req.TwelveMonthPrice
	}
	unit.UpdatedAt = time.Now().UTC()

	if err := s.unitRepo.UpdateUnit(ctx, *unit); err != nil {
		return nil, fmt.Errorf("failed to update unit %s: %w", unitID, err)
	}

	audit := newAudit(domain.ActionUpdateUnit, fmt.Sprintf("Updated unit %s", unit.UnitCode), "", channel, nil)
	if err := s.auditRepo.SaveAuditLog(ctx, audit); err != nil {
		s.LogWarn(ctx, "Failed to write unit audit entry", slog.String("error", err.Error()))
	}
	return unit, nil
}
