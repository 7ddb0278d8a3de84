package settings

import (
	"context"

	"aircontrol/internal/domain"
)

// SettingsStore is the persistence port for per-user display preferences.
// Get returns nil when the user has never saved any.
type SettingsStore interface {
	Get(ctx context.Context, userID int64) (*domain.DisplaySettings, error)
	Put(ctx context.Context, userID int64, s domain.DisplaySettings) error
}
