package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification targets exactly one principal: either CollaboratorID or
// AdminID is set, never both.
type Notification struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CollaboratorID *uuid.UUID `gorm:"type:uuid;index"`
	AdminID        *uuid.UUID `gorm:"type:uuid;index"`
	Message        string     `gorm:"not null"`
	IsRead         bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time
}
