package model

import (
	"time"

	"github.com/google/uuid"
)

// Administrator is a back-office user. Each capability flag gates one class
// of administrative action and is re-read from the database on every gated
// request, so edits take effect immediately.
type Administrator struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`

	CanCreateCollaborator bool `gorm:"not null;default:false"`
	CanCreateAdmin        bool `gorm:"not null;default:false"`
	CanEnterHours         bool `gorm:"not null;default:false"`
	CanChangeAccessCode   bool `gorm:"not null;default:false"`

	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
