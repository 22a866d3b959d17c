package repository

import (
	"context"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntryRepository interface {
	// CreateWithBalance inserts the entry and applies its signed delta to the
	// collaborator's balance in one transaction.
	CreateWithBalance(ctx context.Context, e *model.TimeEntry) error
	ListByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]model.TimeEntry, error)
}

type timeEntryRepo struct{ db *gorm.DB }

func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepo{db: db}
}

func (r *timeEntryRepo) CreateWithBalance(ctx context.Context, e *model.TimeEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return tx.Model(&model.Collaborator{}).
			Where("id = ?", e.CollaboratorID).
			Update("balance_hours", gorm.Expr("balance_hours + ?", e.BalanceHours)).Error
	})
}

func (r *timeEntryRepo) ListByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := r.db.WithContext(ctx).
		Where("collaborator_id = ?", collaboratorID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}
