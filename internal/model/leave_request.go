package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest is a collaborator-submitted absence request.
// Status always starts at "pending"; only an admin review moves it.
type LeaveRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CollaboratorID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	Reason         string    `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:pending"`
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewNote     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
