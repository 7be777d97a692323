package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToModelUnit converts a domain Unit to a model Unit
func ToModelUnit(d domain.Unit) models.Unit {
	return models.Unit{
		UnitID:           d.UnitID,
		UnitCode:         d.UnitCode,
		UnitType:         d.UnitType,
		Status:           string(d.Status),
		Notes:            d.Notes,
		DailyPrice:       d.DailyPrice,
		MonthlyPrice:     d.MonthlyPrice,
		SixMonthPrice:    d.SixMonthPrice,
		TwelveMonthPrice: d.TwelveMonthPrice,
		Currency:         d.Currency,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainUnit converts a model Unit to a domain Unit
func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		UnitID:           m.UnitID,
		UnitCode:         m.UnitCode,
		UnitType:         m.UnitType,
		Status:           domain.UnitStatus(m.Status),
		Notes:            m.Notes,
		DailyPrice:       m.DailyPrice,
		MonthlyPrice:     m.MonthlyPrice,
		SixMonthPrice:    m.SixMonthPrice,
		TwelveMonthPrice: m.TwelveMonthPrice,
		Currency:         m.Currency,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainUnits converts a slice of model Units to domain Units
func ToDomainUnits(ms []models.Unit) []domain.Unit {
	units := make([]domain.Unit, len(ms))
	for i, m := range ms {
		units[i] = ToDomainUnit(m)
	}
	return units
}
