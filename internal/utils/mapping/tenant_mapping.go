package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		FullName:    d.FullName,
		Phone:       d.Phone,
		Email:       d.Email,
		CompanyName: d.CompanyName,
		Notes:       d.Notes,
		IsArchived:  d.IsArchived,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		FullName:    m.FullName,
		Phone:       m.Phone,
		Email:       m.Email,
		CompanyName: m.CompanyName,
		Notes:       m.Notes,
		IsArchived:  m.IsArchived,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainTenants converts a slice of model Tenants to domain Tenants
func ToDomainTenants(ms []models.Tenant) []domain.Tenant {
	tenants := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		tenants[i] = ToDomainTenant(m)
	}
	return tenants
}
