package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAdminRequest struct {
	Username string `json:"username"  validate:"required,min=1,max=150"`
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Password string `json:"password"  validate:"required,min=8"`

	CanCreateCollaborator bool `json:"can_create_collaborator"`
	CanCreateAdmin        bool `json:"can_create_admin"`
	CanEnterHours         bool `json:"can_enter_hours"`
	CanChangeAccessCode   bool `json:"can_change_access_code"`
}

type UpdateAdminRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2,max=150"`
	Password string `json:"password"  validate:"omitempty,min=8"`

	CanCreateCollaborator *bool `json:"can_create_collaborator"`
	CanCreateAdmin        *bool `json:"can_create_admin"`
	CanEnterHours         *bool `json:"can_enter_hours"`
	CanChangeAccessCode   *bool `json:"can_change_access_code"`
}

type CreateTimeEntryRequest struct {
	CollaboratorID string          `json:"collaborator_id" validate:"required,uuid"`
	Date           string          `json:"date"            validate:"required"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	BalanceHours   decimal.Decimal `json:"balance_hours"`
	EntryType      string          `json:"entry_type"  validate:"required,oneof=credit debit adjustment"`
	Description    string          `json:"description" validate:"omitempty,max=500"`
}

type ReviewLeaveRequest struct {
	Status     string `json:"status"      validate:"required,oneof=approved rejected"`
	ReviewNote string `json:"review_note" validate:"omitempty,max=500"`
}

type PublishAnnouncementRequest struct {
	Title string `json:"title" validate:"required,min=1,max=150"`
	Body  string `json:"body"  validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`

	CanCreateCollaborator bool `json:"can_create_collaborator"`
	CanCreateAdmin        bool `json:"can_create_admin"`
	CanEnterHours         bool `json:"can_enter_hours"`
	CanChangeAccessCode   bool `json:"can_change_access_code"`

	IsActive bool `json:"is_active"`
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type DashboardResponse struct {
	ActiveCollaborators int64           `json:"active_collaborators"`
	TotalBalance        decimal.Decimal `json:"total_balance"`
	PositiveBalance     decimal.Decimal `json:"positive_balance"`
	NegativeBalance     decimal.Decimal `json:"negative_balance"`
	PendingLeave        int64           `json:"pending_leave"`
}
