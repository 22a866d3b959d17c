package model

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is an admin-published message fanned out to all active
// collaborators as notifications (and best-effort e-mail).
type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"not null"`
	Body      string    `gorm:"not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}
