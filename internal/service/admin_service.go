package service

import (
	"context"
	"errors"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService manages collaborator and administrator accounts plus the
// aggregate dashboard. Capability checks happen in the middleware; by the
// time these run the actor is already authorized.
type AdminService interface {
	CreateCollaborator(ctx context.Context, req dto.CreateCollaboratorRequest) (*dto.CollaboratorResponse, error)
	ListCollaborators(ctx context.Context) ([]dto.CollaboratorResponse, error)
	UpdateCollaborator(ctx context.Context, id uuid.UUID, req dto.UpdateCollaboratorRequest) (*dto.CollaboratorResponse, error)
	DeactivateCollaborator(ctx context.Context, id uuid.UUID) error
	ReactivateCollaborator(ctx context.Context, id uuid.UUID) error
	// ResetAccessCode clears the collaborator's code; next badge login
	// re-enters the pending-setup flow.
	ResetAccessCode(ctx context.Context, id uuid.UUID) error

	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*dto.AdminResponse, error)
	ListAdmins(ctx context.Context) ([]dto.AdminResponse, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, req dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	DeactivateAdmin(ctx context.Context, id uuid.UUID) error

	Notifications(ctx context.Context, adminID uuid.UUID) ([]dto.NotificationResponse, error)
	MarkNotificationsRead(ctx context.Context, adminID uuid.UUID, req dto.MarkNotificationsReadRequest) (int64, error)

	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type adminService struct {
	collaborators repository.CollaboratorRepository
	admins        repository.AdminRepository
	leaves        repository.LeaveRequestRepository
	notifications repository.NotificationRepository
	dashboard     repository.DashboardRepository
}

func NewAdminService(
	collaborators repository.CollaboratorRepository,
	admins repository.AdminRepository,
	leaves repository.LeaveRequestRepository,
	notifications repository.NotificationRepository,
	dashboard repository.DashboardRepository,
) AdminService {
	return &adminService{
		collaborators: collaborators,
		admins:        admins,
		leaves:        leaves,
		notifications: notifications,
		dashboard:     dashboard,
	}
}

// ── Collaborators ─────────────────────────────────────────────────────────────

func (s *adminService) CreateCollaborator(ctx context.Context, req dto.CreateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	collab := &model.Collaborator{
		BadgeNumber:  req.BadgeNumber,
		FullName:     req.FullName,
		DirectLeader: req.DirectLeader,
		IsActive:     true,
	}
	if err := s.collaborators.Create(ctx, collab); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	resp := toCollaboratorResponse(collab)
	return &resp, nil
}

func (s *adminService) ListCollaborators(ctx context.Context) ([]dto.CollaboratorResponse, error) {
	cs, err := s.collaborators.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CollaboratorResponse, len(cs))
	for i := range cs {
		resp[i] = toCollaboratorResponse(&cs[i])
	}
	return resp, nil
}

func (s *adminService) UpdateCollaborator(ctx context.Context, id uuid.UUID, req dto.UpdateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	collab, err := s.collaborators.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.FullName != "" {
		collab.FullName = req.FullName
	}
	if req.DirectLeader != "" {
		collab.DirectLeader = req.DirectLeader
	}
	if err := s.collaborators.Update(ctx, collab); err != nil {
		return nil, err
	}
	resp := toCollaboratorResponse(collab)
	return &resp, nil
}

func (s *adminService) DeactivateCollaborator(ctx context.Context, id uuid.UUID) error {
	return s.collaborators.SoftDelete(ctx, id)
}

func (s *adminService) ReactivateCollaborator(ctx context.Context, id uuid.UUID) error {
	return s.collaborators.Reactivate(ctx, id)
}

func (s *adminService) ResetAccessCode(ctx context.Context, id uuid.UUID) error {
	if _, err := s.collaborators.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.collaborators.ResetAccessCode(ctx, id)
}

// ── Administrators ────────────────────────────────────────────────────────────

func (s *adminService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	admin := &model.Administrator{
		Username:              req.Username,
		FullName:              req.FullName,
		PasswordHash:          string(hash),
		CanCreateCollaborator: req.CanCreateCollaborator,
		CanCreateAdmin:        req.CanCreateAdmin,
		CanEnterHours:         req.CanEnterHours,
		CanChangeAccessCode:   req.CanChangeAccessCode,
		IsActive:              true,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *adminService) ListAdmins(ctx context.Context) ([]dto.AdminResponse, error) {
	as, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AdminResponse, len(as))
	for i := range as {
		resp[i] = toAdminResponse(&as[i])
	}
	return resp, nil
}

func (s *adminService) UpdateAdmin(ctx context.Context, id uuid.UUID, req dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.FullName != "" {
		admin.FullName = req.FullName
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
	}
	if req.CanCreateCollaborator != nil {
		admin.CanCreateCollaborator = *req.CanCreateCollaborator
	}
	if req.CanCreateAdmin != nil {
		admin.CanCreateAdmin = *req.CanCreateAdmin
	}
	if req.CanEnterHours != nil {
		admin.CanEnterHours = *req.CanEnterHours
	}
	if req.CanChangeAccessCode != nil {
		admin.CanChangeAccessCode = *req.CanChangeAccessCode
	}
	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *adminService) DeactivateAdmin(ctx context.Context, id uuid.UUID) error {
	return s.admins.SoftDelete(ctx, id)
}

// ── Notifications ─────────────────────────────────────────────────────────────

func (s *adminService) Notifications(ctx context.Context, adminID uuid.UUID) ([]dto.NotificationResponse, error) {
	ns, err := s.notifications.ListForAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(ns), nil
}

func (s *adminService) MarkNotificationsRead(ctx context.Context, adminID uuid.UUID, req dto.MarkNotificationsReadRequest) (int64, error) {
	ids := parseNotificationIDs(req.IDs)
	if len(ids) == 0 {
		return 0, nil
	}
	// Same ownership rule as the collaborator side: foreign ids fall out of
	// the WHERE clause.
	return s.notifications.MarkReadForAdmin(ctx, adminID, ids)
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func (s *adminService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := s.dashboard.BalanceStats(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.leaves.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ActiveCollaborators: stats.ActiveCollaborators,
		TotalBalance:        stats.TotalBalance,
		PositiveBalance:     stats.PositiveBalance,
		NegativeBalance:     stats.NegativeBalance,
		PendingLeave:        pending,
	}, nil
}

func toAdminResponse(a *model.Administrator) dto.AdminResponse {
	return dto.AdminResponse{
		ID:                    a.ID.String(),
		Username:              a.Username,
		FullName:              a.FullName,
		CanCreateCollaborator: a.CanCreateCollaborator,
		CanCreateAdmin:        a.CanCreateAdmin,
		CanEnterHours:         a.CanEnterHours,
		CanChangeAccessCode:   a.CanChangeAccessCode,
		IsActive:              a.IsActive,
	}
}
