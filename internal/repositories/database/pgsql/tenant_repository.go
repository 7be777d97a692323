package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	"github.com/nestapt/nest_backend/internal/models"
	"github.com/nestapt/nest_backend/internal/utils/mapping"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `tenant_id, full_name, phone, email, company_name, notes, is_archived, created_at, updated_at`

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var m models.Tenant
	err := row.Scan(
		&m.TenantID, &m.FullName, &m.Phone, &m.Email,
		&m.CompanyName, &m.Notes, &m.IsArchived, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTenant inserts a new tenant.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.FullName, m.Phone, m.Email,
		m.CompanyName, m.Notes, m.IsArchived, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save tenant %s: %w", m.TenantID, err)
	}
	return nil
}

// FindTenantByID retrieves a tenant by its ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1;`
	m, err := scanTenant(r.Pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: tenant %s", apperrors.ErrNotFound, tenantID)
		}
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	tenant := mapping.ToDomainTenant(*m)
	return &tenant, nil
}

// ListTenants retrieves tenants by name, optionally including archived ones.
func (r *PgxTenantRepository) ListTenants(ctx context.Context, includeArchived bool) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants`
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}
	defer rows.Close()

	var ms []models.Tenant
	for rows.Next() {
		m, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating tenants: %w", err)
	}
	return mapping.ToDomainTenants(ms), nil
}

// UpdateTenant persists changes to an existing tenant.
func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		UPDATE tenants
		SET full_name = $2, phone = $3, email = $4, company_name = $5, notes = $6, is_archived = $7, updated_at = $8
		WHERE tenant_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.FullName, m.Phone, m.Email, m.CompanyName, m.Notes, m.IsArchived, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update tenant %s: %w", m.TenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: tenant %s", apperrors.ErrNotFound, m.TenantID)
	}
	return nil
}
