package models

import (
	"github.com/shopspring/decimal"
)

// Unit represents a row of the units table.
type Unit struct {
	UnitID           string           `db:"unit_id"`
	UnitCode         string           `db:"unit_code"`
	UnitType         string           `db:"unit_type"`
	Status           string           `db:"status"`
	Notes            *string          `db:"notes"`
	DailyPrice       *decimal.Decimal `db:"daily_price"`
	MonthlyPrice     *decimal.Decimal `db:"monthly_price"`
	SixMonthPrice    *decimal.Decimal `db:"six_month_price"`
	TwelveMonthPrice *decimal.Decimal `db:"twelve_month_price"`
	Currency         string           `db:"currency"`
	Timestamps
}
