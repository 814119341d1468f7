package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EtsyConnection stores the per-user OAuth tokens for a linked Etsy shop.
// One connection per user; disconnecting removes the row.
type EtsyConnection struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ShopName     string    `gorm:"size:255" json:"shop_name"`
	AccessToken  string    `gorm:"type:text" json:"-"`
	RefreshToken string    `gorm:"type:text" json:"-"`
	TokenExpiry  time.Time `json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new connection
func (c *EtsyConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EtsyConnection model
func (EtsyConnection) TableName() string {
	return "etsy_connections"
}
