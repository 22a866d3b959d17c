package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeEntry is one administrative hour adjustment for a collaborator.
// BalanceHours is the signed delta applied to the collaborator's balance;
// entries are immutable once written.
type TimeEntry struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CollaboratorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date           time.Time       `gorm:"type:date;not null"`
	HoursWorked    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	OvertimeHours  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	BalanceHours   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	// EntryType: "credit" | "debit" | "adjustment"
	EntryType   string    `gorm:"type:varchar(20);not null"`
	Description string
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}
