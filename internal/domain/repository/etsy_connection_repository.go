package repository

import (
	"context"

	"github.com/craftlister/craftlister-api/internal/domain/entity"
	"github.com/google/uuid"
)

// EtsyConnectionRepository defines the interface for Etsy connection data access
type EtsyConnectionRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.EtsyConnection, error)
	Create(ctx context.Context, conn *entity.EtsyConnection) error
	Update(ctx context.Context, conn *entity.EtsyConnection) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
