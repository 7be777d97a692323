package services

import (
	"context"
	"fmt"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// dashboardService aggregates deal and unit counts for the admin dashboard.
type dashboardService struct {
	BaseService
	dealRepo portsrepo.DealRepositoryFacade
	unitRepo portsrepo.UnitRepositoryFacade
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(dealRepo portsrepo.DealRepositoryFacade, unitRepo portsrepo.UnitRepositoryFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{dealRepo: dealRepo, unitRepo: unitRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetSummary computes the dashboard counters. "In progress" covers every
// live non-draft status; "awaiting action" is the invoice pipeline subset.
func (s *dashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	inProgress, err := s.dealRepo.CountDealsByStatus(ctx,
		domain.DealInProgress, domain.DealInvoiceRequested, domain.DealInvoiceUploaded)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress deals: %w", err)
	}
	blocked, err := s.dealRepo.CountBlockedDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blocked deals: %w", err)
	}
	awaiting, err := s.dealRepo.CountDealsByStatus(ctx,
		domain.DealInvoiceRequested, domain.DealInvoiceUploaded)
	if err != nil {
		return nil, fmt.Errorf("failed to count awaiting deals: %w", err)
	}
	completed, err := s.dealRepo.CountDealsByStatus(ctx, domain.DealCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed deals: %w", err)
	}

	summary := &dto.DashboardSummary{
		DealsInProgress:     inProgress,
		DealsBlocked:        blocked,
		DealsAwaitingAction: awaiting,
		DealsCompleted:      completed,
	}

	for _, entry := range []struct {
		status domain.UnitStatus
		dst    *int
	}{
		{domain.UnitAvailable, &summary.UnitOccupancy.Available},
		{domain.UnitReserved, &summary.UnitOccupancy.Reserved},
		{domain.UnitOccupied, &summary.UnitOccupancy.Occupied},
	} {
		count, err := s.unitRepo.CountUnitsByStatus(ctx, entry.status)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s units: %w", entry.status, err)
		}
		*entry.dst = count
	}

	return summary, nil
}
