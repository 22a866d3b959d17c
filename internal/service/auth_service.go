package service

import (
	"context"
	"errors"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/session"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minAccessCodeLen = 4

// AuthService resolves presented credentials to sessions and runs the
// one-time access-code setup flow.
type AuthService interface {
	// CollaboratorLogin authenticates by badge number alone. When the
	// collaborator has no access code yet, the returned session is
	// pending-setup and the response says so.
	CollaboratorLogin(ctx context.Context, req dto.CollaboratorLoginRequest) (*dto.CollaboratorLoginResponse, string, error)
	// SetupAccessCode completes first-time setup for a pending session. The
	// old token is destroyed and a full session token returned.
	SetupAccessCode(ctx context.Context, sess *session.Session, oldToken string, req dto.SetupAccessCodeRequest) (string, error)
	// CheckAccessCode compares a presented code with the stored hash.
	CheckAccessCode(ctx context.Context, badgeNumber, code string) error
	AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (*dto.AdminLoginResponse, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	collaborators repository.CollaboratorRepository
	admins        repository.AdminRepository
	sessions      session.Store
}

func NewAuthService(collaborators repository.CollaboratorRepository, admins repository.AdminRepository, sessions session.Store) AuthService {
	return &authService{collaborators: collaborators, admins: admins, sessions: sessions}
}

func (s *authService) CollaboratorLogin(ctx context.Context, req dto.CollaboratorLoginRequest) (*dto.CollaboratorLoginResponse, string, error) {
	collab, err := s.collaborators.FindByBadge(ctx, req.BadgeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidBadge
		}
		return nil, "", err
	}

	if !collab.IsActive {
		return nil, "", ErrAccountInactive
	}

	// No access code on file yet: issue a pending session whose only
	// privilege is running the setup flow.
	if collab.AccessCodeHash == nil {
		token, err := s.sessions.Create(ctx, collab.ID, session.RoleCollaborator, true)
		if err != nil {
			return nil, "", err
		}
		return &dto.CollaboratorLoginResponse{
			Message:         "Cadastro de código de acesso necessário.",
			NeedsAccessCode: true,
		}, token, nil
	}

	// Code already on file: a full session is issued on badge match alone;
	// the code value is not read in this request. Inherited product
	// behavior — see DESIGN.md before changing.
	token, err := s.sessions.Create(ctx, collab.ID, session.RoleCollaborator, false)
	if err != nil {
		return nil, "", err
	}
	return &dto.CollaboratorLoginResponse{
		Message:         "Login bem-sucedido.",
		NeedsAccessCode: false,
	}, token, nil
}

func (s *authService) SetupAccessCode(ctx context.Context, sess *session.Session, oldToken string, req dto.SetupAccessCodeRequest) (string, error) {
	if req.AccessCode != req.ConfirmAccessCode {
		return "", ErrCodeMismatch
	}
	if len(req.AccessCode) < minAccessCodeLen {
		return "", ErrCodeTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AccessCode), 12)
	if err != nil {
		return "", err
	}

	// Guarded write: only succeeds while no code is stored. Exactly one of
	// any concurrent setup attempts wins; the rest see the conflict.
	if err := s.collaborators.SetAccessCode(ctx, sess.UserID, string(hash)); err != nil {
		if errors.Is(err, repository.ErrAccessCodeAlreadySet) {
			return "", ErrAccessCodeSet
		}
		return "", err
	}

	// Replace the pending session with a full one. Destroy first so the old
	// token can never resolve again.
	if err := s.sessions.Destroy(ctx, oldToken); err != nil {
		return "", err
	}
	return s.sessions.Create(ctx, sess.UserID, session.RoleCollaborator, false)
}

func (s *authService) CheckAccessCode(ctx context.Context, badgeNumber, code string) error {
	collab, err := s.collaborators.FindByBadge(ctx, badgeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidBadge
		}
		return err
	}
	if !collab.IsActive {
		return ErrAccountInactive
	}
	if collab.AccessCodeHash == nil {
		return ErrInvalidBadge
	}
	if bcrypt.CompareHashAndPassword([]byte(*collab.AccessCodeHash), []byte(code)) != nil {
		return ErrInvalidBadge
	}
	return nil
}

func (s *authService) AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (*dto.AdminLoginResponse, string, error) {
	admin, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredential
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredential
	}

	// Capabilities are NOT embedded in the session; the capability gate
	// re-reads them per request so revocation is immediate.
	token, err := s.sessions.Create(ctx, admin.ID, session.RoleAdmin, false)
	if err != nil {
		return nil, "", err
	}
	return &dto.AdminLoginResponse{
		Message: "Login bem-sucedido.",
		User: dto.AdminResponse{
			ID:                    admin.ID.String(),
			Username:              admin.Username,
			FullName:              admin.FullName,
			CanCreateCollaborator: admin.CanCreateCollaborator,
			CanCreateAdmin:        admin.CanCreateAdmin,
			CanEnterHours:         admin.CanEnterHours,
			CanChangeAccessCode:   admin.CanChangeAccessCode,
			IsActive:              admin.IsActive,
		},
	}, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
