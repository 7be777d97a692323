package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TermType is the rental duration category of a deal. It selects which
// journey sequence the deal follows and which unit price tier applies.
type TermType string

const (
	TermDaily        TermType = "DAILY"
	TermMonthly      TermType = "MONTHLY"
	TermSixMonths    TermType = "SIX_MONTHS"
	TermTwelveMonths TermType = "TWELVE_MONTHS"
)

// TermTypeLabels maps term types to their human-readable labels.
var TermTypeLabels = map[TermType]string{
	TermDaily:        "Daily",
	TermMonthly:      "Monthly",
	TermSixMonths:    "6 Months",
	TermTwelveMonths: "12 Months",
}

// IsValid reports whether the term type is a known value.
func (t TermType) IsValid() bool {
	switch t {
	case TermDaily, TermMonthly, TermSixMonths, TermTwelveMonths:
		return true
	}
	return false
}

// DealStatus is the lifecycle state of a deal.
type DealStatus string

const (
	DealDraft            DealStatus = "DRAFT"
	DealInProgress       DealStatus = "IN_PROGRESS"
	DealInvoiceRequested DealStatus = "INVOICE_REQUESTED"
	DealInvoiceUploaded  DealStatus = "INVOICE_UPLOADED"
	DealCompleted        DealStatus = "COMPLETED"
	DealCancelled        DealStatus = "CANCELLED"
)

// IsTerminal reports whether the deal can no longer be mutated.
func (s DealStatus) IsTerminal() bool {
	return s == DealCompleted || s == DealCancelled
}

// Deal represents a tenant/unit rental negotiation progressing through a
// journey to completion or cancellation.
type Deal struct {
	DealID             string           `json:"dealID"`
	DealCode           string           `json:"dealCode"` // Human-facing sequential code (NEST-00001)
	TenantID           string           `json:"tenantID"`
	UnitID             string           `json:"unitID"`
	TermType           TermType         `json:"termType"`
	StartDate          time.Time        `json:"startDate"`
	EndDate            *time.Time       `json:"endDate"`
	InitialPrice       decimal.Decimal  `json:"initialPrice"` // Unit tier price at creation, immutable
	DealPrice          *decimal.Decimal `json:"dealPrice"`    // Negotiated price, settable at pricing steps only
	Currency           string           `json:"currency"`
	Status             DealStatus       `json:"status"`
	CurrentStep        JourneyStep      `json:"currentStep"`
	BlockedReason      *string          `json:"blockedReason"`
	InvoiceRequestedAt *time.Time       `json:"invoiceRequestedAt"`
	CancelledAt        *time.Time       `json:"cancelledAt"`
	CancellationReason *string          `json:"cancellationReason"`
	MoveInDate         *time.Time       `json:"moveInDate"` // Monthly-term journeys only
	MoveInNotes        *string          `json:"moveInNotes"`
	Timestamps

	// Joined references, populated by the repository on single-deal reads.
	Tenant *Tenant `json:"tenant,omitempty"`
	Unit   *Unit   `json:"unit,omitempty"`
}

// EffectivePrice returns the negotiated deal price if one was set, otherwise
// the unit's listed price captured at creation.
func (d *Deal) EffectivePrice() decimal.Decimal {
	if d.DealPrice != nil {
		return *d.DealPrice
	}
	return d.InitialPrice
}
