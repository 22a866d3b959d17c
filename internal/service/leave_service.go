package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EmailDispatcher is the slice of the worker dispatcher the services need;
// tests substitute an in-memory fake.
type EmailDispatcher interface {
	EnqueueNotifyEmail(ctx context.Context, payload worker.NotifyEmailPayload) error
}

// LeaveService is the admin side of leave requests: listing and review.
// A review decision notifies the collaborator.
type LeaveService interface {
	ListPending(ctx context.Context) ([]dto.LeaveRequestResponse, error)
	List(ctx context.Context) ([]dto.LeaveRequestResponse, error)
	Review(ctx context.Context, adminID, leaveID uuid.UUID, req dto.ReviewLeaveRequest) (*dto.LeaveRequestResponse, error)
}

type leaveService struct {
	leaves        repository.LeaveRequestRepository
	collaborators repository.CollaboratorRepository
	notifications repository.NotificationRepository
	dispatcher    EmailDispatcher
}

func NewLeaveService(
	leaves repository.LeaveRequestRepository,
	collaborators repository.CollaboratorRepository,
	notifications repository.NotificationRepository,
	dispatcher EmailDispatcher,
) LeaveService {
	return &leaveService{
		leaves:        leaves,
		collaborators: collaborators,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

func (s *leaveService) ListPending(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	lrs, err := s.leaves.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(lrs), nil
}

func (s *leaveService) List(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	lrs, err := s.leaves.List(ctx)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(lrs), nil
}

func (s *leaveService) Review(ctx context.Context, adminID, leaveID uuid.UUID, req dto.ReviewLeaveRequest) (*dto.LeaveRequestResponse, error) {
	lr, err := s.leaves.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if lr.Status != model.LeaveStatusPending {
		return nil, ErrDuplicate
	}

	lr.Status = req.Status
	lr.ReviewedBy = &adminID
	lr.ReviewNote = req.ReviewNote
	if err := s.leaves.Update(ctx, lr); err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, lr)

	resp := toLeaveResponse(lr)
	return &resp, nil
}

// notifyDecision records the notification and enqueues a best-effort e-mail.
// Failures are logged, not propagated: the review itself already succeeded.
func (s *leaveService) notifyDecision(ctx context.Context, lr *model.LeaveRequest) {
	verdict := "aprovada"
	if lr.Status == model.LeaveStatusRejected {
		verdict = "recusada"
	}
	msg := fmt.Sprintf("Sua solicitação de folga de %s a %s foi %s.",
		lr.StartDate.Format("02/01/2006"), lr.EndDate.Format("02/01/2006"), verdict)

	n := model.Notification{CollaboratorID: &lr.CollaboratorID, Message: msg}
	if err := s.notifications.CreateBatch(ctx, []model.Notification{n}); err != nil {
		log.Error().Err(err).Str("leave_id", lr.ID.String()).Msg("leave review: notification insert failed")
		return
	}

	collab, err := s.collaborators.FindByID(ctx, lr.CollaboratorID)
	if err != nil || collab.Email == nil {
		return
	}
	if err := s.dispatcher.EnqueueNotifyEmail(ctx, worker.NotifyEmailPayload{
		ToEmail: *collab.Email,
		Subject: "Atualização da sua solicitação de folga",
		Body:    msg,
	}); err != nil {
		log.Error().Err(err).Str("leave_id", lr.ID.String()).Msg("leave review: e-mail enqueue failed")
	}
}

func toLeaveResponses(lrs []model.LeaveRequest) []dto.LeaveRequestResponse {
	resp := make([]dto.LeaveRequestResponse, len(lrs))
	for i := range lrs {
		resp[i] = toLeaveResponse(&lrs[i])
	}
	return resp
}
