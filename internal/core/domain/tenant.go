package domain

// Tenant represents a renting party referenced by deals.
type Tenant struct {
	TenantID    string  `json:"tenantID"`
	FullName    string  `json:"fullName"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	CompanyName *string `json:"companyName"`
	Notes       *string `json:"notes"`
	IsArchived  bool    `json:"isArchived"`
	Timestamps
}
