package dto

import (
	"time"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// CreateTenantRequest defines the payload for creating a tenant.
type CreateTenantRequest struct {
	FullName    string  `json:"fullName" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	CompanyName *string `json:"companyName"`
	Notes       *string `json:"notes"`
}

// UpdateTenantRequest defines the updatable fields of a tenant.
type UpdateTenantRequest struct {
	FullName    *string `json:"fullName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	CompanyName *string `json:"companyName"`
	Notes       *string `json:"notes"`
	IsArchived  *bool   `json:"isArchived"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID    string    `json:"tenantID"`
	FullName    string    `json:"fullName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"companyName"`
	Notes       *string   `json:"notes"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToTenantResponse converts a domain.Tenant to TenantResponse DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:    t.TenantID,
		FullName:    t.FullName,
		Phone:       t.Phone,
		Email:       t.Email,
		CompanyName: t.CompanyName,
		Notes:       t.Notes,
		IsArchived:  t.IsArchived,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTenantResponses converts a slice of domain.Tenant to []TenantResponse.
func ToTenantResponses(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses
}
