package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AnnouncementService publishes admin announcements and fans them out as
// notifications to every active collaborator.
type AnnouncementService interface {
	Publish(ctx context.Context, adminID uuid.UUID, req dto.PublishAnnouncementRequest) (*dto.AnnouncementResponse, error)
	List(ctx context.Context) ([]dto.AnnouncementResponse, error)
}

type announcementService struct {
	announcements repository.AnnouncementRepository
	collaborators repository.CollaboratorRepository
	notifications repository.NotificationRepository
	dispatcher    EmailDispatcher
}

func NewAnnouncementService(
	announcements repository.AnnouncementRepository,
	collaborators repository.CollaboratorRepository,
	notifications repository.NotificationRepository,
	dispatcher EmailDispatcher,
) AnnouncementService {
	return &announcementService{
		announcements: announcements,
		collaborators: collaborators,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

func (s *announcementService) Publish(ctx context.Context, adminID uuid.UUID, req dto.PublishAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	ann := &model.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: adminID,
	}
	if err := s.announcements.Create(ctx, ann); err != nil {
		return nil, err
	}

	// Fan out to active collaborators. The announcement row is already
	// durable; fan-out failure is logged and the publish still succeeds.
	active, err := s.collaborators.ListActive(ctx)
	if err != nil {
		log.Error().Err(err).Str("announcement_id", ann.ID.String()).Msg("announcement: collaborator listing failed")
		return toAnnouncementResponse(ann), nil
	}

	msg := fmt.Sprintf("%s: %s", ann.Title, ann.Body)
	ns := make([]model.Notification, len(active))
	for i := range active {
		ns[i] = model.Notification{CollaboratorID: &active[i].ID, Message: msg}
	}
	if err := s.notifications.CreateBatch(ctx, ns); err != nil {
		log.Error().Err(err).Str("announcement_id", ann.ID.String()).Msg("announcement: notification fan-out failed")
		return toAnnouncementResponse(ann), nil
	}

	for i := range active {
		if active[i].Email == nil {
			continue
		}
		if err := s.dispatcher.EnqueueNotifyEmail(ctx, worker.NotifyEmailPayload{
			ToEmail: *active[i].Email,
			Subject: ann.Title,
			Body:    ann.Body,
		}); err != nil {
			log.Error().Err(err).Str("announcement_id", ann.ID.String()).Msg("announcement: e-mail enqueue failed")
			break // Redis is down; no point trying the rest
		}
	}

	return toAnnouncementResponse(ann), nil
}

func (s *announcementService) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	as, err := s.announcements.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnnouncementResponse, len(as))
	for i := range as {
		resp[i] = *toAnnouncementResponse(&as[i])
	}
	return resp, nil
}

func toAnnouncementResponse(a *model.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
