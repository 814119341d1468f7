package repository

import (
	"context"

	"github.com/craftlister/craftlister-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SettingsRepository defines the interface for settings data access.
// GetByUserID returns (nil, nil) when no row exists for the user.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	Create(ctx context.Context, settings *entity.UserSettings) error
	Update(ctx context.Context, settings *entity.UserSettings) error
}
