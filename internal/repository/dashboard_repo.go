package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BalanceStats aggregates collaborator balances for the admin dashboard.
type BalanceStats struct {
	ActiveCollaborators int64
	TotalBalance        decimal.Decimal
	PositiveBalance     decimal.Decimal
	NegativeBalance     decimal.Decimal
}

type DashboardRepository interface {
	BalanceStats(ctx context.Context) (*BalanceStats, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) BalanceStats(ctx context.Context) (*BalanceStats, error) {
	var row struct {
		ActiveCollaborators int64
		TotalBalance        decimal.Decimal
		PositiveBalance     decimal.Decimal
		NegativeBalance     decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)                                                        AS active_collaborators,
		       COALESCE(SUM(balance_hours), 0)                                 AS total_balance,
		       COALESCE(SUM(balance_hours) FILTER (WHERE balance_hours > 0), 0) AS positive_balance,
		       COALESCE(SUM(balance_hours) FILTER (WHERE balance_hours < 0), 0) AS negative_balance
		FROM collaborators
		WHERE is_active = true
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &BalanceStats{
		ActiveCollaborators: row.ActiveCollaborators,
		TotalBalance:        row.TotalBalance,
		PositiveBalance:     row.PositiveBalance,
		NegativeBalance:     row.NegativeBalance,
	}, nil
}
