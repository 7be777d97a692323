package dto

import (
	"time"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDealRequest defines the payload for creating a deal.
type CreateDealRequest struct {
	TenantID  string          `json:"tenantID" binding:"required"`
	UnitID    string          `json:"unitID" binding:"required"`
	TermType  domain.TermType `json:"termType" binding:"required,termtype"`
	StartDate time.Time       `json:"startDate" binding:"required"`
	EndDate   *time.Time      `json:"endDate"`
	Currency  string          `json:"currency"`
}

// UpdateDealRequest defines the updatable non-status fields of a deal.
type UpdateDealRequest struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// SetDealPriceRequest carries the negotiated price.
type SetDealPriceRequest struct {
	DealPrice decimal.Decimal `json:"dealPrice" binding:"required"`
}

// SetMoveInRequest carries move-in details for monthly-term deals.
type SetMoveInRequest struct {
	MoveInDate  time.Time `json:"moveInDate" binding:"required"`
	MoveInNotes *string   `json:"moveInNotes"`
}

// CancelDealRequest carries the cancellation reason.
type CancelDealRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// OverrideDealRequest carries the emergency override target.
type OverrideDealRequest struct {
	TargetStep string `json:"targetStep" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// DealResponse defines the data returned for a deal.
type DealResponse struct {
	DealID             string            `json:"dealID"`
	DealCode           string            `json:"dealCode"`
	TenantID           string            `json:"tenantID"`
	UnitID             string            `json:"unitID"`
	TermType           domain.TermType   `json:"termType"`
	StartDate          time.Time         `json:"startDate"`
	EndDate            *time.Time        `json:"endDate"`
	InitialPrice       decimal.Decimal   `json:"initialPrice"`
	DealPrice          *decimal.Decimal  `json:"dealPrice"`
	Currency           string            `json:"currency"`
	Status             domain.DealStatus `json:"status"`
	CurrentStep        string            `json:"currentStep"`
	BlockedReason      *string           `json:"blockedReason"`
	InvoiceRequestedAt *time.Time        `json:"invoiceRequestedAt"`
	CancelledAt        *time.Time        `json:"cancelledAt"`
	CancellationReason *string           `json:"cancellationReason"`
	MoveInDate         *time.Time        `json:"moveInDate"`
	MoveInNotes        *string           `json:"moveInNotes"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	Tenant             *TenantResponse   `json:"tenant,omitempty"`
	Unit               *UnitResponse     `json:"unit,omitempty"`
}

// ToDealResponse converts a domain.Deal to DealResponse DTO.
func ToDealResponse(d *domain.Deal) DealResponse {
	resp := DealResponse{
		DealID:             d.DealID,
		DealCode:           d.DealCode,
		TenantID:           d.TenantID,
		UnitID:             d.UnitID,
		TermType:           d.TermType,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		InitialPrice:       d.InitialPrice,
		DealPrice:          d.DealPrice,
		Currency:           d.Currency,
		Status:             d.Status,
		CurrentStep:        string(d.CurrentStep),
		BlockedReason:      d.BlockedReason,
		InvoiceRequestedAt: d.InvoiceRequestedAt,
		CancelledAt:        d.CancelledAt,
		CancellationReason: d.CancellationReason,
		MoveInDate:         d.MoveInDate,
		MoveInNotes:        d.MoveInNotes,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	if d.Tenant != nil {
		tenant := ToTenantResponse(d.Tenant)
		resp.Tenant = &tenant
	}
	if d.Unit != nil {
		unit := ToUnitResponse(d.Unit)
		resp.Unit = &unit
	}
	return resp
}

// ToDealResponses converts a slice of domain.Deal to []DealResponse.
func ToDealResponses(deals []domain.Deal) []DealResponse {
	responses := make([]DealResponse, len(deals))
	for i := range deals {
		responses[i] = ToDealResponse(&deals[i])
	}
	return responses
}
