package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCollaboratorRequest struct {
	BadgeNumber  string `json:"badge_number"  validate:"required,min=1,max=50"`
	FullName     string `json:"full_name"     validate:"required,min=2,max=150"`
	DirectLeader string `json:"direct_leader" validate:"omitempty,max=150"`
}

type UpdateCollaboratorRequest struct {
	FullName     string `json:"full_name"     validate:"omitempty,min=2,max=150"`
	DirectLeader string `json:"direct_leader" validate:"omitempty,max=150"`
}

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	Reason    string `json:"reason"     validate:"required"`
}

type MarkNotificationsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CollaboratorResponse struct {
	ID              string          `json:"id"`
	BadgeNumber     string          `json:"badge_number"`
	FullName        string          `json:"full_name"`
	DirectLeader    string          `json:"direct_leader"`
	BalanceHours    decimal.Decimal `json:"balance_hours"`
	HasAccessCode   bool            `json:"has_access_code"`
	IsActive        bool            `json:"is_active"`
}

type TimeEntryResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	BalanceHours  decimal.Decimal `json:"balance_hours"`
	EntryType     string          `json:"entry_type"`
	Description   string          `json:"description"`
}

type HistoryResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
}

type LeaveRequestResponse struct {
	ID             string `json:"id"`
	CollaboratorID string `json:"collaborator_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	ReviewNote     string `json:"review_note,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
