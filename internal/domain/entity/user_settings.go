package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default listing settings applied when a user has no stored row.
const (
	DefaultListingPrice    = 10.0
	DefaultListingQuantity = 999
	DefaultAutoRenew       = true
)

// UserSettings holds a user's default listing settings. At most one row
// exists per user; the row is created lazily on the first save.
type UserSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// No gorm default tags: a zero value (price 0, auto_renew false) must be
	// persisted as-is, and gorm skips zero-valued fields that carry a column
	// default. NewDefaultSettings fills the defaults before the first insert.
	DefaultPrice    float64 `json:"default_price"`
	DefaultQuantity int     `json:"default_quantity"`
	AutoRenew       bool    `json:"auto_renew"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// NewDefaultSettings returns an unsaved settings row for the given user
// with every field at its default value.
func NewDefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:          userID,
		DefaultPrice:    DefaultListingPrice,
		DefaultQuantity: DefaultListingQuantity,
		AutoRenew:       DefaultAutoRenew,
	}
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
