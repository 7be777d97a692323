package services

import (
	"context"
	"io"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/dto"
)

// DealReaderSvc defines read operations over deals.
type DealReaderSvc interface {
	GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error)
	ListDeals(ctx context.Context, status *domain.DealStatus) ([]domain.Deal, error)
	GetJourney(ctx context.Context, dealID string) (*dto.JourneyResponse, error)
}

// DealWriterSvc defines the lifecycle operations of the deal state machine.
// Every mutation writes its audit entries in the same transaction as the
// state change.
type DealWriterSvc interface {
	CreateDeal(ctx context.Context, req dto.CreateDealRequest, channel domain.Channel) (*domain.Deal, error)
	UpdateDeal(ctx context.Context, dealID string, req dto.UpdateDealRequest, channel domain.Channel) (*domain.Deal, error)
	SetDealPrice(ctx context.Context, dealID string, req dto.SetDealPriceRequest, channel domain.Channel) (*domain.Deal, error)
	SetMoveInDetails(ctx context.Context, dealID string, req dto.SetMoveInRequest, channel domain.Channel) (*domain.Deal, error)
	GenerateDocument(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error)
	RequestInvoice(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error)
	UploadInvoice(ctx context.Context, dealID string, fileName string, file io.Reader, channel domain.Channel) (*domain.Deal, error)
	CloseDeal(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error)
	CancelDeal(ctx context.Context, dealID string, req dto.CancelDealRequest, channel domain.Channel) (*domain.Deal, error)
	EmergencyOverride(ctx context.Context, dealID string, req dto.OverrideDealRequest, channel domain.Channel) (*domain.Deal, error)
}

// DealSvcFacade combines all deal service interfaces.
type DealSvcFacade interface {
	DealReaderSvc
	DealWriterSvc
}
