package repository

import (
	"context"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	List(ctx context.Context) ([]model.Announcement, error)
}

type announcementRepo struct{ db *gorm.DB }

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	var as []model.Announcement
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&as).Error
	return as, err
}
