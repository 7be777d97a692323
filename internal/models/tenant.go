package models

// Tenant represents a row of the tenants table.
type Tenant struct {
	TenantID    string  `db:"tenant_id"`
	FullName    string  `db:"full_name"`
	Phone       string  `db:"phone"`
	Email       string  `db:"email"`
	CompanyName *string `db:"company_name"`
	Notes       *string `db:"notes"`
	IsArchived  bool    `db:"is_archived"`
	Timestamps
}
