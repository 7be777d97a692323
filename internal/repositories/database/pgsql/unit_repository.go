package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	"github.com/nestapt/nest_backend/internal/models"
	"github.com/nestapt/nest_backend/internal/utils/mapping"
)

type PgxUnitRepository struct {
	BaseRepository
}

// newPgxUnitRepository creates a new repository for unit data.
func newPgxUnitRepository(pool *pgxpool.Pool) *PgxUnitRepository {
	return &PgxUnitRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

const unitColumns = `unit_id, unit_code, unit_type, status, notes, daily_price, monthly_price, six_month_price, twelve_month_price, currency, created_at, updated_at`

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var m models.Unit
	err := row.Scan(
		&m.UnitID, &m.UnitCode, &m.UnitType, &m.Status, &m.Notes,
		&m.DailyPrice, &m.MonthlyPrice, &m.SixMonthPrice, &m.TwelveMonthPrice,
		&m.Currency, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUnit inserts a new unit.
func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UnitID, m.UnitCode, m.UnitType, m.Status, m.Notes,
		m.DailyPrice, m.MonthlyPrice, m.SixMonthPrice, m.TwelveMonthPrice,
		m.Currency, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: unit with code %s already exists", apperrors.ErrDuplicate, m.UnitCode)
		}
		return fmt.Errorf("failed to save unit %s: %w", m.UnitID, err)
	}
	return nil
}

// FindUnitByID retrieves a unit by its ID.
func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE unit_id = $1;`
	m, err := scanUnit(r.Pool.QueryRow(ctx, query, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: unit %s", apperrors.ErrNotFound, unitID)
		}
		return nil, fmt.Errorf("failed to find unit %s: %w", unitID, err)
	}
	unit := mapping.ToDomainUnit(*m)
	return &unit, nil
}

// ListUnits retrieves units ordered by code, optionally filtered by status.
func (r *PgxUnitRepository) ListUnits(ctx context.Context, status *domain.UnitStatus) ([]domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY unit_code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	var ms []models.Unit
	for rows.Next() {
		m, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating units: %w", err)
	}
	return mapping.ToDomainUnits(ms), nil
}

// CountUnitsByStatus returns the number of units in the given status.
func (r *PgxUnitRepository) CountUnitsByStatus(ctx context.Context, status domain.UnitStatus) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM units WHERE status = $1;`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s units: %w", status, err)
	}
	return count, nil
}

// UpdateUnit persists changes to an existing unit.
func (r *PgxUnitRepository) UpdateUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	query := `
		UPDATE units
		SET unit_type = $2, status = $3, notes = $4, daily_price = $5, monthly_price = $6,
		    six_month_price = $7, twelve_month_price = $8, currency = $9, updated_at = $10
		WHERE unit_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UnitID, m.UnitType, m.Status, m.Notes, m.DailyPrice, m.MonthlyPrice,
		m.SixMonthPrice, m.TwelveMonthPrice, m.Currency, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update unit %s: %w", m.UnitID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: unit %s", apperrors.ErrNotFound, m.UnitID)
	}
	return nil
}

// UpdateUnitStatusInTx updates a unit's status inside an open transaction.
// Used by the deal repository so unit occupancy moves atomically with the
// deal mutation that caused it.
func (r *PgxUnitRepository) UpdateUnitStatusInTx(ctx context.Context, tx pgx.Tx, unitID string, status domain.UnitStatus) error {
	tag, err := tx.Exec(ctx, `UPDATE units SET status = $2, updated_at = NOW() WHERE unit_id = $1;`, unitID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update status of unit %s: %w", unitID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: unit %s", apperrors.ErrNotFound, unitID)
	}
	return nil
}
