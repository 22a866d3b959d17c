package repository

import (
	"context"
	"errors"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAccessCodeAlreadySet is returned when a guarded first-setup write finds
// the access code already present — either a concurrent setup won the race
// or the collaborator finished setup earlier.
var ErrAccessCodeAlreadySet = errors.New("access code already set")

type CollaboratorRepository interface {
	Create(ctx context.Context, c *model.Collaborator) error
	FindByBadge(ctx context.Context, badgeNumber string) (*model.Collaborator, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Collaborator, error)
	List(ctx context.Context) ([]model.Collaborator, error)
	ListActive(ctx context.Context) ([]model.Collaborator, error)
	Update(ctx context.Context, c *model.Collaborator) error
	// SetAccessCode writes the hash only if none is stored yet. At most one
	// concurrent caller succeeds; losers get ErrAccessCodeAlreadySet.
	SetAccessCode(ctx context.Context, id uuid.UUID, hash string) error
	// ResetAccessCode clears the stored hash, returning the collaborator to
	// the first-setup flow on next login.
	ResetAccessCode(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type collaboratorRepo struct{ db *gorm.DB }

func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepo{db: db}
}

func (r *collaboratorRepo) Create(ctx context.Context, c *model.Collaborator) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *collaboratorRepo) FindByBadge(ctx context.Context, badgeNumber string) (*model.Collaborator, error) {
	var c model.Collaborator
	// Exact match, case-sensitive as stored
	err := r.db.WithContext(ctx).Where("badge_number = ?", badgeNumber).First(&c).Error
	return &c, err
}

func (r *collaboratorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Collaborator, error) {
	var c model.Collaborator
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *collaboratorRepo) List(ctx context.Context) ([]model.Collaborator, error) {
	var cs []model.Collaborator
	err := r.db.WithContext(ctx).Order("full_name ASC").Find(&cs).Error
	return cs, err
}

func (r *collaboratorRepo) ListActive(ctx context.Context) ([]model.Collaborator, error) {
	var cs []model.Collaborator
	err := r.db.WithContext(ctx).Where("is_active = true").Order("full_name ASC").Find(&cs).Error
	return cs, err
}

func (r *collaboratorRepo) Update(ctx context.Context, c *model.Collaborator) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *collaboratorRepo) SetAccessCode(ctx context.Context, id uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).Model(&model.Collaborator{}).
		Where("id = ? AND access_code_hash IS NULL", id).
		Update("access_code_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAccessCodeAlreadySet
	}
	return nil
}

func (r *collaboratorRepo) ResetAccessCode(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Collaborator{}).
		Where("id = ?", id).
		Update("access_code_hash", nil).Error
}

func (r *collaboratorRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Collaborator{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *collaboratorRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Collaborator{}).Where("id = ?", id).Update("is_active", true).Error
}
