package dto

import (
	"time"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUnitRequest defines the payload for creating a unit.
type CreateUnitRequest struct {
	UnitCode         string           `json:"unitCode" binding:"required"`
	UnitType         string           `json:"unitType"`
	Notes            *string          `json:"notes"`
	DailyPrice       *decimal.Decimal `json:"dailyPrice"`
	MonthlyPrice     *decimal.Decimal `json:"monthlyPrice"`
	SixMonthPrice    *decimal.Decimal `json:"sixMonthPrice"`
	TwelveMonthPrice *decimal.Decimal `json:"twelveMonthPrice"`
	Currency         string           `json:"currency"`
}

// UpdateUnitRequest defines the updatable fields of a unit.
type UpdateUnitRequest struct {
	UnitType         *string          `json:"unitType"`
	Notes            *string          `json:"notes"`
	DailyPrice       *decimal.Decimal `json:"dailyPrice"`
	MonthlyPrice     *decimal.Decimal `json:"monthlyPrice"`
	SixMonthPrice    *decimal.Decimal `json:"sixMonthPrice"`
	TwelveMonthPrice *decimal.Decimal `json:"twelveMonthPrice"`
}

// UnitResponse defines the data returned for a unit.
type UnitResponse struct {
	UnitID           string            `json:"unitID"`
	UnitCode         string            `json:"unitCode"`
	UnitType         string            `json:"unitType"`
	Status           domain.UnitStatus `json:"status"`
	Notes            *string           `json:"notes"`
	DailyPrice       *decimal.Decimal  `json:"dailyPrice"`
	MonthlyPrice     *decimal.Decimal  `json:"monthlyPrice"`
	SixMonthPrice    *decimal.Decimal  `json:"sixMonthPrice"`
	TwelveMonthPrice *decimal.Decimal  `json:"twelveMonthPrice"`
	Currency         string            `json:"currency"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ToUnitResponse converts a domain.Unit to UnitResponse DTO.
func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{
		UnitID:           u.UnitID,
		UnitCode:         u.UnitCode,
		UnitType:         u.UnitType,
		Status:           u.Status,
		Notes:            u.Notes,
		DailyPrice:       u.DailyPrice,
		MonthlyPrice:     u.MonthlyPrice,
		SixMonthPrice:    u.SixMonthPrice,
		TwelveMonthPrice: u.TwelveMonthPrice,
		Currency:         u.Currency,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// ToUnitResponses converts a slice of domain.Unit to []UnitResponse.
func ToUnitResponses(units []domain.Unit) []UnitResponse {
	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = ToUnitResponse(&units[i])
	}
	return responses
}
