package repositories

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// UnitReader defines read operations for unit data
type UnitReader interface {
	// FindUnitByID retrieves a unit by its unique identifier.
	FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)

	// ListUnits retrieves units, optionally filtered by status.
	ListUnits(ctx context.Context, status *domain.UnitStatus) ([]domain.Unit, error)

	// CountUnitsByStatus returns the number of units in the given status.
	CountUnitsByStatus(ctx context.Context, status domain.UnitStatus) (int, error)
}

// UnitWriter defines write operations for unit data
type UnitWriter interface {
	// SaveUnit inserts a new unit.
	SaveUnit(ctx context.Context, unit domain.Unit) error

	// UpdateUnit persists changes to an existing unit.
	UpdateUnit(ctx context.Context, unit domain.Unit) error
}

// UnitRepositoryFacade combines all unit-related repository interfaces
type UnitRepositoryFacade interface {
	UnitReader
	UnitWriter
	UnitStatusUpdater
}
