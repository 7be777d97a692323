package domain

import "time"

// AppSettings holds the company identity consumed by document generation
// and the invoice-request email. A single row; read-through with config
// fallbacks when absent.
type AppSettings struct {
	SettingsID       string    `json:"settingsID"`
	CompanyLegalName string    `json:"companyLegalName"`
	CompanyAddress   string    `json:"companyAddress"`
	SignatoryName    string    `json:"signatoryName"`
	SignatoryTitle   string    `json:"signatoryTitle"`
	FinanceEmail     string    `json:"financeEmail"`
	LogoPath         string    `json:"logoPath"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
