package infra

import (
	"fmt"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for all tables, then applies idempotent SQL patches that GORM cannot
// express (CHECK constraints, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Surfaces unique-constraint races as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Collaborator{},
		&model.Administrator{},
		&model.TimeEntry{},
		&model.LeaveRequest{},
		&model.Notification{},
		&model.InfoBanner{},
		&model.Announcement{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
// Each statement is guarded so re-running on a patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// A notification targets exactly one principal.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_notifications_single_recipient') THEN
		    ALTER TABLE notifications ADD CONSTRAINT chk_notifications_single_recipient
		      CHECK ((collaborator_id IS NULL) <> (admin_id IS NULL));
		  END IF;
		END $$`,
		// Partial index for the unread-notification listing.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_notifications_unread') THEN
		    CREATE INDEX idx_notifications_unread
		        ON notifications (collaborator_id, created_at)
		        WHERE is_read = false;
		  END IF;
		END $$`,
		// Pending leave requests are reviewed oldest-first.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_leave_requests_pending') THEN
		    CREATE INDEX idx_leave_requests_pending
		        ON leave_requests (created_at)
		        WHERE status = 'pending';
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
