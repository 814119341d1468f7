package repository

import (
	"context"
	"errors"

	"github.com/craftlister/craftlister-api/internal/domain/entity"
	domainRepo "github.com/craftlister/craftlister-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type etsyConnectionRepository struct {
	db *gorm.DB
}

// NewEtsyConnectionRepository creates a new Etsy connection repository
func NewEtsyConnectionRepository(db *gorm.DB) domainRepo.EtsyConnectionRepository {
	return &etsyConnectionRepository{db: db}
}

func (r *etsyConnectionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.EtsyConnection, error) {
	var conn entity.EtsyConnection
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&conn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *etsyConnectionRepository) Create(ctx context.Context, conn *entity.EtsyConnection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

func (r *etsyConnectionRepository) Update(ctx context.Context, conn *entity.EtsyConnection) error {
	return r.db.WithContext(ctx).Save(conn).Error
}

func (r *etsyConnectionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.EtsyConnection{}).Error
}
