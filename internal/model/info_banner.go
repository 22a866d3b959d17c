package model

import (
	"time"

	"github.com/google/uuid"
)

// InfoBanner is shown on the public login page, ordered by OrderIndex.
type InfoBanner struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ImageURL   string    `gorm:"not null"`
	LinkURL    string
	IsActive   bool `gorm:"not null;default:true"`
	OrderIndex int  `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
