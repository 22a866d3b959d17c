package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// CollaboratorService serves the collaborator-facing endpoints: profile,
// time-entry history, leave submission, and notifications.
type CollaboratorService interface {
	Profile(ctx context.Context, id uuid.UUID) (*dto.CollaboratorResponse, error)
	History(ctx context.Context, id uuid.UUID) (*dto.HistoryResponse, error)
	SubmitLeave(ctx context.Context, id uuid.UUID, req dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error)
	MyLeaveRequests(ctx context.Context, id uuid.UUID) ([]dto.LeaveRequestResponse, error)
	Notifications(ctx context.Context, id uuid.UUID) ([]dto.NotificationResponse, error)
	MarkNotificationsRead(ctx context.Context, id uuid.UUID, req dto.MarkNotificationsReadRequest) (int64, error)
}

type collaboratorService struct {
	collaborators repository.CollaboratorRepository
	entries       repository.TimeEntryRepository
	leaves        repository.LeaveRequestRepository
	notifications repository.NotificationRepository
	admins        repository.AdminRepository
}

func NewCollaboratorService(
	collaborators repository.CollaboratorRepository,
	entries repository.TimeEntryRepository,
	leaves repository.LeaveRequestRepository,
	notifications repository.NotificationRepository,
	admins repository.AdminRepository,
) CollaboratorService {
	return &collaboratorService{
		collaborators: collaborators,
		entries:       entries,
		leaves:        leaves,
		notifications: notifications,
		admins:        admins,
	}
}

func (s *collaboratorService) Profile(ctx context.Context, id uuid.UUID) (*dto.CollaboratorResponse, error) {
	collab, err := s.collaborators.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toCollaboratorResponse(collab)
	return &resp, nil
}

func (s *collaboratorService) History(ctx context.Context, id uuid.UUID) (*dto.HistoryResponse, error) {
	entries, err := s.entries.ListByCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.HistoryResponse{Entries: make([]dto.TimeEntryResponse, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = dto.TimeEntryResponse{
			ID:            e.ID.String(),
			Date:          e.Date.Format(dateLayout),
			HoursWorked:   e.HoursWorked,
			OvertimeHours: e.OvertimeHours,
			BalanceHours:  e.BalanceHours,
			EntryType:     e.EntryType,
			Description:   e.Description,
		}
	}
	return resp, nil
}

func (s *collaboratorService) SubmitLeave(ctx context.Context, id uuid.UUID, req dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	lr := &model.LeaveRequest{
		CollaboratorID: id,
		StartDate:      start,
		EndDate:        end,
		Reason:         req.Reason,
		Status:         model.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, lr); err != nil {
		return nil, err
	}

	s.notifyAdminsOfSubmission(ctx, lr)

	resp := toLeaveResponse(lr)
	return &resp, nil
}

// notifyAdminsOfSubmission fans a new-request notification out to every
// active admin so pending reviews don't sit unnoticed. Failures are logged,
// not propagated: the request row is already durable.
func (s *collaboratorService) notifyAdminsOfSubmission(ctx context.Context, lr *model.LeaveRequest) {
	who := "um colaborador"
	if collab, err := s.collaborators.FindByID(ctx, lr.CollaboratorID); err == nil {
		who = collab.FullName
	}
	msg := fmt.Sprintf("Nova solicitação de folga de %s (%s a %s).",
		who, lr.StartDate.Format("02/01/2006"), lr.EndDate.Format("02/01/2006"))

	admins, err := s.admins.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("leave_id", lr.ID.String()).Msg("leave submission: admin listing failed")
		return
	}
	var ns []model.Notification
	for i := range admins {
		if !admins[i].IsActive {
			continue
		}
		ns = append(ns, model.Notification{AdminID: &admins[i].ID, Message: msg})
	}
	if len(ns) == 0 {
		return
	}
	if err := s.notifications.CreateBatch(ctx, ns); err != nil {
		log.Error().Err(err).Str("leave_id", lr.ID.String()).Msg("leave submission: admin notification insert failed")
	}
}

func (s *collaboratorService) MyLeaveRequests(ctx context.Context, id uuid.UUID) ([]dto.LeaveRequestResponse, error) {
	lrs, err := s.leaves.ListByCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LeaveRequestResponse, len(lrs))
	for i := range lrs {
		resp[i] = toLeaveResponse(&lrs[i])
	}
	return resp, nil
}

func (s *collaboratorService) Notifications(ctx context.Context, id uuid.UUID) ([]dto.NotificationResponse, error) {
	ns, err := s.notifications.ListForCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(ns), nil
}

func parseNotificationIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		nid, err := uuid.Parse(r)
		if err != nil {
			continue // validator already rejected malformed ids; belt and braces
		}
		ids = append(ids, nid)
	}
	return ids
}

func toNotificationResponses(ns []model.Notification) []dto.NotificationResponse {
	resp := make([]dto.NotificationResponse, len(ns))
	for i, n := range ns {
		resp[i] = dto.NotificationResponse{
			ID:        n.ID.String(),
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func (s *collaboratorService) MarkNotificationsRead(ctx context.Context, id uuid.UUID, req dto.MarkNotificationsReadRequest) (int64, error) {
	ids := parseNotificationIDs(req.IDs)
	if len(ids) == 0 {
		return 0, nil
	}
	// Ownership is enforced inside the repository WHERE clause: ids that
	// belong to another principal simply do not match.
	return s.notifications.MarkReadForCollaborator(ctx, id, ids)
}

func toCollaboratorResponse(c *model.Collaborator) dto.CollaboratorResponse {
	return dto.CollaboratorResponse{
		ID:            c.ID.String(),
		BadgeNumber:   c.BadgeNumber,
		FullName:      c.FullName,
		DirectLeader:  c.DirectLeader,
		BalanceHours:  c.BalanceHours,
		HasAccessCode: c.AccessCodeHash != nil,
		IsActive:      c.IsActive,
	}
}

func toLeaveResponse(lr *model.LeaveRequest) dto.LeaveRequestResponse {
	return dto.LeaveRequestResponse{
		ID:             lr.ID.String(),
		CollaboratorID: lr.CollaboratorID.String(),
		StartDate:      lr.StartDate.Format(dateLayout),
		EndDate:        lr.EndDate.Format(dateLayout),
		Reason:         lr.Reason,
		Status:         lr.Status,
		ReviewNote:     lr.ReviewNote,
		CreatedAt:      lr.CreatedAt.Format(time.RFC3339),
	}
}
