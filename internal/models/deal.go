package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal represents a row of the deals table.
type Deal struct {
	DealID             string           `db:"deal_id"`
	DealCode           string           `db:"deal_code"`
	TenantID           string           `db:"tenant_id"`
	UnitID             string           `db:"unit_id"`
	TermType           string           `db:"term_type"`
	StartDate          time.Time        `db:"start_date"`
	EndDate            *time.Time       `db:"end_date"`
	InitialPrice       decimal.Decimal  `db:"initial_price"`
	DealPrice          *decimal.Decimal `db:"deal_price"`
	Currency           string           `db:"currency"`
	Status             string           `db:"status"`
	CurrentStep        string           `db:"current_step"`
	BlockedReason      *string          `db:"blocked_reason"`
	InvoiceRequestedAt *time.Time       `db:"invoice_requested_at"`
	CancelledAt        *time.Time       `db:"cancelled_at"`
	CancellationReason *string          `db:"cancellation_reason"`
	MoveInDate         *time.Time       `db:"move_in_date"`
	MoveInNotes        *string          `db:"move_in_notes"`
	Timestamps
}
