package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CollaboratorLoginRequest struct {
	BadgeNumber string `json:"badgeNumber" validate:"required,min=1"`
}

// SetupAccessCodeRequest carries the first-time access code and its
// confirmation. Match and minimum-length rules live in the service so both
// failures map to the same 400 contract.
type SetupAccessCodeRequest struct {
	AccessCode        string `json:"accessCode"        validate:"required"`
	ConfirmAccessCode string `json:"confirmAccessCode" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CollaboratorLoginResponse struct {
	Message         string `json:"message"`
	NeedsAccessCode bool   `json:"needsAccessCode"`
}

type AdminLoginResponse struct {
	Message string        `json:"message"`
	User    AdminResponse `json:"user"`
}

type SessionResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
