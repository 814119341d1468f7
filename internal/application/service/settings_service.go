package service

import (
	"context"

	"github.com/craftlister/craftlister-api/internal/domain/entity"
	"github.com/craftlister/craftlister-api/internal/domain/repository"
	"github.com/google/uuid"
)

// SettingsService handles default listing settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves user settings. When no row exists the defaults are
// returned without persisting anything; a row is only ever created by
// SaveSettings.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return entity.NewDefaultSettings(userID), nil
	}
	return settings, nil
}

// UpdateSettingsInput carries a partial update. Nil fields are left
// untouched on the stored row.
type UpdateSettingsInput struct {
	DefaultPrice    *float64
	DefaultQuantity *int
	AutoRenew       *bool
}

// SaveSettings applies a partial update to the user's settings, creating the
// row with defaults on first save. Concurrent saves for the same user are
// last-write-wins; the row is only ever written under the store's own
// transaction.
func (s *SettingsService) SaveSettings(ctx context.Context, userID uuid.UUID, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.NewDefaultSettings(userID)
	}

	if input.DefaultPrice != nil {
		settings.DefaultPrice = *input.DefaultPrice
	}
	if input.DefaultQuantity != nil {
		settings.DefaultQuantity = *input.DefaultQuantity
	}
	if input.AutoRenew != nil {
		settings.AutoRenew = *input.AutoRenew
	}

	if settings.ID == uuid.Nil {
		err = s.settingsRepo.Create(ctx, settings)
	} else {
		err = s.settingsRepo.Update(ctx, settings)
	}
	if err != nil {
		return nil, err
	}

	return settings, nil
}
