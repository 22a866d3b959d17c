package repository

import (
	"context"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, a *model.Administrator) error
	FindByUsername(ctx context.Context, username string) (*model.Administrator, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Administrator, error)
	List(ctx context.Context) ([]model.Administrator, error)
	Update(ctx context.Context, a *model.Administrator) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepo{db: db} }

func (r *adminRepo) Create(ctx context.Context, a *model.Administrator) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adminRepo) FindByUsername(ctx context.Context, username string) (*model.Administrator, error) {
	var a model.Administrator
	err := r.db.WithContext(ctx).Where("username = ? AND is_active = true", username).First(&a).Error
	return &a, err
}

func (r *adminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Administrator, error) {
	var a model.Administrator
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *adminRepo) List(ctx context.Context) ([]model.Administrator, error) {
	var as []model.Administrator
	err := r.db.WithContext(ctx).Order("full_name ASC").Find(&as).Error
	return as, err
}

func (r *adminRepo) Update(ctx context.Context, a *model.Administrator) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *adminRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Administrator{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *adminRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Administrator{}).Where("id = ?", id).Update("is_active", true).Error
}
