package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToDomainAppSettings converts a model AppSettings to its domain form
func ToDomainAppSettings(m models.AppSettings) domain.AppSettings {
	return domain.AppSettings{
		SettingsID:       m.SettingsID,
		CompanyLegalName: m.CompanyLegalName,
		CompanyAddress:   m.CompanyAddress,
		SignatoryName:    m.SignatoryName,
		SignatoryTitle:   m.SignatoryTitle,
		FinanceEmail:     m.FinanceEmail,
		LogoPath:         m.LogoPath,
		UpdatedAt:        m.UpdatedAt,
	}
}
