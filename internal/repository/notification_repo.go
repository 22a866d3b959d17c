package repository

import (
	"context"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// readTail bounds how far back already-read notifications are listed.
const readTail = 7 * 24 * time.Hour

type NotificationRepository interface {
	CreateBatch(ctx context.Context, ns []model.Notification) error
	// ListForCollaborator returns unread notifications plus read ones from
	// the recent tail, newest first.
	ListForCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]model.Notification, error)
	ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]model.Notification, error)
	// MarkReadForCollaborator flips is_read on the given ids, restricted to
	// the owner. Ids belonging to someone else are silently ignored by the
	// WHERE clause; the count of affected rows is returned.
	MarkReadForCollaborator(ctx context.Context, collaboratorID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkReadForAdmin(ctx context.Context, adminID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) CreateBatch(ctx context.Context, ns []model.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ns).Error
}

func (r *notificationRepo) ListForCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]model.Notification, error) {
	var ns []model.Notification
	cutoff := time.Now().Add(-readTail)
	err := r.db.WithContext(ctx).
		Where("collaborator_id = ? AND (is_read = false OR created_at >= ?)", collaboratorID, cutoff).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]model.Notification, error) {
	var ns []model.Notification
	cutoff := time.Now().Add(-readTail)
	err := r.db.WithContext(ctx).
		Where("admin_id = ? AND (is_read = false OR created_at >= ?)", adminID, cutoff).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) MarkReadForCollaborator(ctx context.Context, collaboratorID uuid.UUID, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("collaborator_id = ? AND id IN ?", collaboratorID, ids).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepo) MarkReadForAdmin(ctx context.Context, adminID uuid.UUID, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("admin_id = ? AND id IN ?", adminID, ids).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
