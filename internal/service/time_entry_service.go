package service

import (
	"context"
	"errors"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/infra"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntryService records administrative hour adjustments and produces the
// balance statement export.
type TimeEntryService interface {
	EnterHours(ctx context.Context, adminID uuid.UUID, req dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error)
	ListByCollaborator(ctx context.Context, collaboratorID uuid.UUID) (*dto.HistoryResponse, error)
	// Statement renders a PDF and returns its path on disk.
	Statement(ctx context.Context, collaboratorID uuid.UUID) (string, error)
}

type timeEntryService struct {
	entries       repository.TimeEntryRepository
	collaborators repository.CollaboratorRepository
	pdfPath       string
}

func NewTimeEntryService(entries repository.TimeEntryRepository, collaborators repository.CollaboratorRepository, pdfPath string) TimeEntryService {
	return &timeEntryService{entries: entries, collaborators: collaborators, pdfPath: pdfPath}
}

func (s *timeEntryService) EnterHours(ctx context.Context, adminID uuid.UUID, req dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	collabID, err := uuid.Parse(req.CollaboratorID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.collaborators.FindByID(ctx, collabID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	entry := &model.TimeEntry{
		CollaboratorID: collabID,
		Date:           date,
		HoursWorked:    req.HoursWorked,
		OvertimeHours:  req.OvertimeHours,
		BalanceHours:   req.BalanceHours,
		EntryType:      req.EntryType,
		Description:    req.Description,
		CreatedBy:      adminID,
	}
	if err := s.entries.CreateWithBalance(ctx, entry); err != nil {
		return nil, err
	}

	return &dto.TimeEntryResponse{
		ID:            entry.ID.String(),
		Date:          entry.Date.Format(dateLayout),
		HoursWorked:   entry.HoursWorked,
		OvertimeHours: entry.OvertimeHours,
		BalanceHours:  entry.BalanceHours,
		EntryType:     entry.EntryType,
		Description:   entry.Description,
	}, nil
}

func (s *timeEntryService) ListByCollaborator(ctx context.Context, collaboratorID uuid.UUID) (*dto.HistoryResponse, error) {
	entries, err := s.entries.ListByCollaborator(ctx, collaboratorID)
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

func (s *timeEntryService) Statement(ctx context.Context, collaboratorID uuid.UUID) (string, error) {
	collab, err := s.collaborators.FindByID(ctx, collaboratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	entries, err := s.entries.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return "", err
	}
	return infra.GenerateStatementPDF(collab, entries, s.pdfPath)
}
