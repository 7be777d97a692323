package repositories

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// SettingsReader defines read access to the single app-settings row.
type SettingsReader interface {
	// GetSettings retrieves the settings row, or apperrors.ErrNotFound when
	// none has been stored yet.
	GetSettings(ctx context.Context) (*domain.AppSettings, error)
}

// SettingsRepositoryFacade combines all settings repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
}
