package domain

import (
	"github.com/shopspring/decimal"
)

// UnitStatus is the occupancy state of a rentable unit.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "AVAILABLE"
	UnitReserved  UnitStatus = "RESERVED"
	UnitOccupied  UnitStatus = "OCCUPIED"
)

// IsValid reports whether the unit status is a known value.
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitAvailable, UnitReserved, UnitOccupied:
		return true
	}
	return false
}

// Unit represents a rentable physical unit with per-term price tiers.
// Any tier may be absent; a deal can only be created for a term whose tier
// is configured.
type Unit struct {
	UnitID           string           `json:"unitID"`
	UnitCode         string           `json:"unitCode"`
	UnitType         string           `json:"unitType"`
	Status           UnitStatus       `json:"status"`
	Notes            *string          `json:"notes"`
	DailyPrice       *decimal.Decimal `json:"dailyPrice"`
	MonthlyPrice     *decimal.Decimal `json:"monthlyPrice"`
	SixMonthPrice    *decimal.Decimal `json:"sixMonthPrice"`
	TwelveMonthPrice *decimal.Decimal `json:"twelveMonthPrice"`
	Currency         string           `json:"currency"`
	Timestamps
}

// PriceForTerm returns the configured price tier for the given term type,
// or nil when the unit has no price for that term.
func (u *Unit) PriceForTerm(term TermType) *decimal.Decimal {
	switch term {
	case TermDaily:
		return u.DailyPrice
	case TermMonthly:
		return u.MonthlyPrice
	case TermSixMonths:
		return u.SixMonthPrice
	case TermTwelveMonths:
		return u.TwelveMonthPrice
	}
	return nil
}
