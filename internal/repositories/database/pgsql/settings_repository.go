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

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the app settings row.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings retrieves the single settings row.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	query := `
		SELECT settings_id, company_legal_name, company_address, signatory_name, signatory_title, finance_email, logo_path, updated_at
		FROM app_settings
		LIMIT 1;
	`
	var m models.AppSettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.SettingsID, &m.CompanyLegalName, &m.CompanyAddress,
		&m.SignatoryName, &m.SignatoryTitle, &m.FinanceEmail, &m.LogoPath, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load app settings: %w", err)
	}
	settings := mapping.ToDomainAppSettings(m)
	return &settings, nil
}
