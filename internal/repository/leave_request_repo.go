package repository

import (
	"context"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, lr *model.LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LeaveRequest, error)
	ListByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]model.LeaveRequest, error)
	ListPending(ctx context.Context) ([]model.LeaveRequest, error)
	List(ctx context.Context) ([]model.LeaveRequest, error)
	Update(ctx context.Context, lr *model.LeaveRequest) error
	CountPending(ctx context.Context) (int64, error)
}

type leaveRequestRepo struct{ db *gorm.DB }

func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepo{db: db}
}

func (r *leaveRequestRepo) Create(ctx context.Context, lr *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *leaveRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.LeaveRequest, error) {
	var lr model.LeaveRequest
	err := r.db.WithContext(ctx).First(&lr, id).Error
	return &lr, err
}

func (r *leaveRequestRepo) ListByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]model.LeaveRequest, error) {
	var lrs []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("collaborator_id = ?", collaboratorID).
		Order("created_at DESC").
		Find(&lrs).Error
	return lrs, err
}

func (r *leaveRequestRepo) ListPending(ctx context.Context) ([]model.LeaveRequest, error) {
	var lrs []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", model.LeaveStatusPending).
		Order("created_at ASC").
		Find(&lrs).Error
	return lrs, err
}

func (r *leaveRequestRepo) List(ctx context.Context) ([]model.LeaveRequest, error) {
	var lrs []model.LeaveRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&lrs).Error
	return lrs, err
}

func (r *leaveRequestRepo) Update(ctx context.Context, lr *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *leaveRequestRepo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.LeaveRequest{}).
		Where("status = ?", model.LeaveStatusPending).
		Count(&n).Error
	return n, err
}
