package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collaborator is a time-bank participant who logs in with a badge number.
// AccessCodeHash stays nil until the collaborator completes first-time setup;
// while nil, login only yields a pending-setup session.
type Collaborator struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BadgeNumber    string    `gorm:"uniqueIndex;not null"`
	FullName       string    `gorm:"not null"`
	DirectLeader   string
	Email          *string
	AccessCodeHash *string
	// BalanceHours is the signed accrued balance; mutated only through
	// time-entry writes, never set directly by handlers.
	BalanceHours decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	IsActive     bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
