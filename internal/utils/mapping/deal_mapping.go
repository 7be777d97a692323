package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToModelDeal converts a domain Deal to a model Deal
func ToModelDeal(d domain.Deal) models.Deal {
	return models.Deal{
		DealID:             d.DealID,
		DealCode:           d.DealCode,
		TenantID:           d.TenantID,
		UnitID:             d.UnitID,
		TermType:           string(d.TermType),
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		InitialPrice:       d.InitialPrice,
		DealPrice:          d.DealPrice,
		Currency:           d.Currency,
		Status:             string(d.Status),
		CurrentStep:        string(d.CurrentStep),
		BlockedReason:      d.BlockedReason,
		InvoiceRequestedAt: d.InvoiceRequestedAt,
		CancelledAt:        d.CancelledAt,
		CancellationReason: d.CancellationReason,
		MoveInDate:         d.MoveInDate,
		MoveInNotes:        d.MoveInNotes,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainDeal converts a model Deal to a domain Deal
func ToDomainDeal(m models.Deal) domain.Deal {
	return domain.Deal{
		DealID:             m.DealID,
		DealCode:           m.DealCode,
		TenantID:           m.TenantID,
		UnitID:             m.UnitID,
		TermType:           domain.TermType(m.TermType),
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		InitialPrice:       m.InitialPrice,
		DealPrice:          m.DealPrice,
		Currency:           m.Currency,
		Status:             domain.DealStatus(m.Status),
		CurrentStep:        domain.JourneyStep(m.CurrentStep),
		BlockedReason:      m.BlockedReason,
		InvoiceRequestedAt: m.InvoiceRequestedAt,
		CancelledAt:        m.CancelledAt,
		CancellationReason: m.CancellationReason,
		MoveInDate:         m.MoveInDate,
		MoveInNotes:        m.MoveInNotes,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainDeals converts a slice of model Deals to domain Deals
func ToDomainDeals(ms []models.Deal) []domain.Deal {
	deals := make([]domain.Deal, len(ms))
	for i, m := range ms {
		deals[i] = ToDomainDeal(m)
	}
	return deals
}
