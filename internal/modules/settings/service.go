package settings

import (
	"context"

	"aircontrol/internal/domain"
)

type Service struct {
	store SettingsStore
}

func NewService(store SettingsStore) *Service {
	return &Service{store: store}
}

// Get returns the user's saved preferences, falling back to the defaults
// when nothing has been saved yet.
func (s *Service) Get(ctx context.Context, userID int64) (domain.DisplaySettings, error) {
	saved, err := s.store.Get(ctx, userID)
	if err != nil {
		return domain.DisplaySettings{}, err
	}
	if saved == nil {
		return domain.DefaultDisplaySettings(), nil
	}
	return *saved, nil
}

func (s *Service) Update(ctx context.Context, userID int64, in domain.DisplaySettings) (domain.DisplaySettings, error) {
	if !in.MaintenanceViewMode.Valid() {
		return domain.DisplaySettings{}, ErrBadViewMode
	}
	if in.UpcomingDays < 1 || in.UpcomingDays > 90 {
		return domain.DisplaySettings{}, ErrBadUpcomingDays
	}
	if in.BaseFontSize < 10 || in.BaseFontSize > 24 {
		return domain.DisplaySettings{}, ErrBadFontSize
	}

	if err := s.store.Put(ctx, userID, in); err != nil {
		return domain.DisplaySettings{}, err
	}
	return in, nil
}
