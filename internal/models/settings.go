package models

import "time"

// AppSettings represents the single row of the app_settings table.
type AppSettings struct {
	SettingsID       string    `db:"settings_id"`
	CompanyLegalName string    `db:"company_legal_name"`
	CompanyAddress   string    `db:"company_address"`
	SignatoryName    string    `db:"signatory_name"`
	SignatoryTitle   string    `db:"signatory_title"`
	FinanceEmail     string    `db:"finance_email"`
	LogoPath         string    `db:"logo_path"`
	UpdatedAt        time.Time `db:"updated_at"`
}
