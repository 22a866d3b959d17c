package repository

import (
	"context"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(ctx context.Context, b *model.InfoBanner) error
	ListActive(ctx context.Context) ([]model.InfoBanner, error)
	List(ctx context.Context) ([]model.InfoBanner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.InfoBanner, error)
	Update(ctx context.Context, b *model.InfoBanner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepo struct{ db *gorm.DB }

func NewBannerRepository(db *gorm.DB) BannerRepository { return &bannerRepo{db: db} }

func (r *bannerRepo) Create(ctx context.Context, b *model.InfoBanner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bannerRepo) ListActive(ctx context.Context) ([]model.InfoBanner, error) {
	var bs []model.InfoBanner
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("order_index ASC").
		Find(&bs).Error
	return bs, err
}

func (r *bannerRepo) List(ctx context.Context) ([]model.InfoBanner, error) {
	var bs []model.InfoBanner
	err := r.db.WithContext(ctx).Order("order_index ASC").Find(&bs).Error
	return bs, err
}

func (r *bannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InfoBanner, error) {
	var b model.InfoBanner
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *bannerRepo) Update(ctx context.Context, b *model.InfoBanner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InfoBanner{}, id).Error
}
